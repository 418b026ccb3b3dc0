package notify

import (
	"github.com/meower-media/notify/pkg/protocol"
)

// NotifySound is the locally effective notification sound for a peer. The
// zero value is the default case: inherit the ambient sound. Equality is
// structural.
type NotifySound struct {
	None       bool   `bson:"none,omitempty" msgpack:"none,omitempty"`
	Title      string `bson:"title,omitempty" msgpack:"title,omitempty"`
	Data       string `bson:"data,omitempty" msgpack:"data,omitempty"`
	RingtoneId int64  `bson:"ringtone_id,omitempty" msgpack:"ringtone_id,omitempty"`
}

// ParseSound maps a wire sound onto its local value. The mapping is total:
// an unset placeholder reads the same as an explicit default marker.
func ParseSound(sound protocol.NotificationSound) NotifySound {
	switch sound.Type {
	case protocol.SoundNone:
		return NotifySound{None: true}
	case protocol.SoundLocal:
		return NotifySound{
			Title: sound.Title,
			Data:  sound.Data,
		}
	case protocol.SoundRingtone:
		return NotifySound{RingtoneId: sound.RingtoneId}
	default: // SoundDefault, SoundUnset
		return NotifySound{}
	}
}

// SerializeSound encodes an optional sound for the wire. The precedence
// order is fixed: no value, none marker, ringtone id, local title, default
// marker. A value carrying both an id and a title encodes as the ringtone.
func SerializeSound(sound *NotifySound) protocol.NotificationSound {
	switch {
	case sound == nil:
		return protocol.NotificationSound{Type: protocol.SoundUnset}
	case sound.None:
		return protocol.NotificationSound{Type: protocol.SoundNone}
	case sound.RingtoneId != 0:
		return protocol.NotificationSound{
			Type:       protocol.SoundRingtone,
			RingtoneId: sound.RingtoneId,
		}
	case sound.Title != "":
		return protocol.NotificationSound{
			Type:  protocol.SoundLocal,
			Title: sound.Title,
			Data:  sound.Data,
		}
	default:
		return protocol.NotificationSound{Type: protocol.SoundDefault}
	}
}
