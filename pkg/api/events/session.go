package events

import (
	"time"

	"github.com/gorilla/websocket"
)

const pingInterval = 45 * time.Second

type Session struct {
	id     int64
	server *Server
	userId int64

	send chan *EncodedPacket
	conn *websocket.Conn

	format int8 // 0: json, 1: msgpack
}

func newSession(server *Server, userId int64, conn *websocket.Conn, format int8) *Session {
	s := Session{
		server: server,
		userId: userId,
		send:   make(chan *EncodedPacket, 256),
		conn:   conn,
		format: format,
	}
	server.registerSession(&s)
	return &s
}

// run services the connection until it ends, then unregisters the session.
func (s *Session) run() {
	// Write thread
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case packet, ok := <-s.send:
				if !ok {
					return
				}
				s.writeToConn(packet)
			case <-ticker.C:
				s.conn.WriteMessage(websocket.PingMessage, []byte{})
			case <-done:
				return
			}
		}
	}()

	// Read incoming messages until the connection ends. Clients don't send
	// anything meaningful on this socket; reading just surfaces closes.
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			break
		}
	}

	close(done)
	s.server.unregisterSession(s)
	s.conn.Close()
}

func (s *Session) writeToConn(packet *EncodedPacket) error {
	if s.format == 1 {
		return s.conn.WriteMessage(websocket.BinaryMessage, packet.MsgpackEncoded)
	}
	return s.conn.WriteMessage(websocket.TextMessage, packet.JsonEncoded)
}
