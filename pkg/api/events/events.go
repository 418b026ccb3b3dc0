package events

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/meower-media/notify/pkg/peers"
	"github.com/meower-media/notify/pkg/rdb"
	"github.com/meower-media/notify/pkg/structs"
	"github.com/meower-media/notify/pkg/utils"
	"github.com/vmihailenco/msgpack/v5"
)

type V0UpdateNotifySettings struct {
	ChatId   string                       `json:"chat_id" msgpack:"chat_id"`
	Settings structs.V0PeerNotifySettings `json:"settings" msgpack:"settings"`
}

// listenUser forwards a user's event-bus packets to their sessions until the
// context ends.
func (s *Server) listenUser(ctx context.Context, userId int64) {
	pubsub := rdb.Subscribe(ctx, fmt.Sprint("u", userId))
	defer pubsub.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			if err := s.routeEvent(userId, []byte(msg.Payload)); err != nil {
				sentry.CaptureException(err)
			}
		}
	}
}

func (s *Server) routeEvent(userId int64, payload []byte) error {
	if len(payload) < 1 {
		return nil
	}

	// The op code rides as the final byte of the payload
	op := payload[len(payload)-1]
	payload = payload[:len(payload)-1]

	switch op {
	case utils.EvOpUpdateNotifySettings:
		var e peers.UpdateNotifySettingsEvent
		if err := msgpack.Unmarshal(payload, &e); err != nil {
			return err
		}
		return s.sendUpdateNotifySettings(userId, &e)
	case utils.EvOpRevokeSession:
		// Session revocation is handled by the account service; nothing to
		// forward here.
		return nil
	default:
		log.Println("unknown event op", op)
		return nil
	}
}

func (s *Server) sendUpdateNotifySettings(userId int64, e *peers.UpdateNotifySettingsEvent) error {
	p, err := createPacket("update_notify_settings", &V0UpdateNotifySettings{
		ChatId:   strconv.FormatInt(e.ChatId, 10),
		Settings: e.Settings,
	})
	if err != nil {
		return err
	}
	s.broadcast(userId, p)
	return nil
}
