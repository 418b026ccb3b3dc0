package peers

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/meower-media/notify/pkg/meowid"
	"github.com/meower-media/notify/pkg/protocol"
	"github.com/meower-media/notify/pkg/rdb"
	"github.com/vmihailenco/msgpack/v5"
)

const pushChannel = "notify_push"

// ServerPush is the envelope the upstream sync layer publishes when the
// remote service states a peer's notification settings. The settings bytes
// stay opaque here; they are decoded at the protocol boundary.
type ServerPush struct {
	UserId   meowid.MeowID      `msgpack:"user"`
	ChatId   meowid.MeowID      `msgpack:"chat"`
	PeerType int8               `msgpack:"peer_type"`
	Settings msgpack.RawMessage `msgpack:"settings"`
}

// ListenServerPushes consumes inbound settings snapshots until the context
// ends. Malformed messages are captured and skipped; they never take the
// listener down.
func ListenServerPushes(ctx context.Context) {
	pubsub := rdb.Subscribe(ctx, pushChannel)
	defer pubsub.Close()
	for msg := range pubsub.Channel() {
		if err := handleServerPush([]byte(msg.Payload)); err != nil {
			sentry.CaptureException(err)
		}
	}
}

func handleServerPush(payload []byte) error {
	var push ServerPush
	if err := msgpack.Unmarshal(payload, &push); err != nil {
		return err
	}

	// Decode at the protocol boundary so the settings core only ever sees
	// well-formed snapshots.
	data, err := protocol.DecodePeerNotifySettings(push.Settings)
	if err != nil {
		return err
	}

	peer, err := EnsurePeer(push.UserId, push.ChatId, push.PeerType)
	if err != nil {
		return err
	}
	_, err = peer.ApplyPush(data)
	return err
}
