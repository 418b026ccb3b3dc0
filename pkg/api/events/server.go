package events

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/meower-media/notify/pkg/users"
)

type Server struct {
	httpMux *http.ServeMux

	sessionsMutex sync.Mutex
	nextSessionId int64
	sessions      map[int64][]*Session         // keyed by user ID
	listeners     map[int64]context.CancelFunc // per-user redis listeners
}

func NewServer() *Server {
	// Create WebSocket upgrader
	upgrader := websocket.Upgrader{
		ReadBufferSize:    1024,
		WriteBufferSize:   1024,
		CheckOrigin:       func(r *http.Request) bool { return true },
		EnableCompression: true,
	}

	// Create server
	s := Server{
		httpMux:   http.NewServeMux(),
		sessions:  make(map[int64][]*Session),
		listeners: make(map[int64]context.CancelFunc),
	}
	s.httpMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// Authenticate
		userSession, err := users.GetSessionByToken(r.URL.Query().Get("token"))
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid session token."))
			return
		}

		// Choose protocol format
		var format int8 // 0: json, 1: msgpack
		if r.URL.Query().Get("format") == "msgpack" {
			format = 1
		}

		// Upgrade connection
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		// Register session
		session := newSession(&s, userSession.UserId, conn, format)
		session.run()
	})

	return &s
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.httpMux)
}

func (s *Server) registerSession(session *Session) {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	s.nextSessionId++
	session.id = s.nextSessionId
	s.sessions[session.userId] = append(s.sessions[session.userId], session)

	// Start the user's event listener with the first session
	if _, ok := s.listeners[session.userId]; !ok {
		ctx, cancel := context.WithCancel(context.Background())
		s.listeners[session.userId] = cancel
		go s.listenUser(ctx, session.userId)
	}
}

func (s *Server) unregisterSession(session *Session) {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	sessions := s.sessions[session.userId]
	for i, other := range sessions {
		if other.id == session.id {
			sessions = append(sessions[:i], sessions[i+1:]...)
			break
		}
	}
	s.sessions[session.userId] = sessions

	// Stop the user's event listener with the last session
	if len(sessions) == 0 {
		delete(s.sessions, session.userId)
		if cancel, ok := s.listeners[session.userId]; ok {
			cancel()
			delete(s.listeners, session.userId)
		}
	}
}

func (s *Server) broadcast(userId int64, p *EncodedPacket) {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()
	for _, session := range s.sessions[userId] {
		select {
		case session.send <- p:
		default: // slow consumer; drop rather than block the listener
		}
	}
}
