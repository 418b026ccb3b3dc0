package peers

import (
	"fmt"

	"github.com/meower-media/notify/pkg/meowid"
	"github.com/meower-media/notify/pkg/rdb"
	"github.com/meower-media/notify/pkg/structs"
	"github.com/meower-media/notify/pkg/utils"
	"github.com/vmihailenco/msgpack/v5"
)

type UpdateNotifySettingsEvent struct {
	ChatId   meowid.MeowID                `msgpack:"chat"`
	Settings structs.V0PeerNotifySettings `msgpack:"settings"`
}

// EmitUpdateNotifySettingsEvent publishes the new effective settings on the
// owner's user channel so connected sessions can re-render and re-schedule.
func EmitUpdateNotifySettingsEvent(userId meowid.MeowID, chatId meowid.MeowID, settings structs.V0PeerNotifySettings) error {
	// Marshal packet
	marshaledPacket, err := msgpack.Marshal(&UpdateNotifySettingsEvent{
		ChatId:   chatId,
		Settings: settings,
	})
	if err != nil {
		return err
	}
	marshaledPacket = append(marshaledPacket, utils.EvOpUpdateNotifySettings)

	// Send packet
	return rdb.Publish(fmt.Sprint("u", userId), marshaledPacket)
}
