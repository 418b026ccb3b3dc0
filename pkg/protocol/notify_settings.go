package protocol

import (
	"errors"

	"github.com/vmihailenco/msgpack/v5"
)

// Structural tags for inbound peer notify settings messages.
const (
	TypePeerNotifySettingsEmpty int8 = 0
	TypePeerNotifySettings      int8 = 1
)

// Flag bits gating the fields of PeerNotifySettings and
// InputPeerNotifySettings. A set bit means the accompanying value is
// meaningful; the value itself is a placeholder otherwise.
const (
	FlagNotifyShowPreviews uint32 = 1 << 0
	FlagNotifySilent       uint32 = 1 << 1
	FlagNotifyMuteUntil    uint32 = 1 << 2
	FlagNotifySound        uint32 = 1 << 3
)

var ErrUnexpectedType = errors.New("unexpected peer notify settings type")

// PeerNotifySettings is a server-authoritative snapshot of one peer's
// notification configuration.
type PeerNotifySettings struct {
	Type         int8              `msgpack:"type"`
	Flags        uint32            `msgpack:"flags"`
	ShowPreviews bool              `msgpack:"show_previews,omitempty"`
	Silent       bool              `msgpack:"silent,omitempty"`
	MuteUntil    int64             `msgpack:"mute_until,omitempty"` // absolute unix timestamp, seconds
	Sound        NotificationSound `msgpack:"other_sound,omitempty"`

	// Legacy per-platform sounds. Kept on the wire for compatibility but
	// never consulted when merging.
	DesktopSound NotificationSound `msgpack:"desktop_sound,omitempty"`
	MobileSound  NotificationSound `msgpack:"mobile_sound,omitempty"`
}

// Empty reports whether the snapshot carries no fields at all, which the
// server uses to state that a peer has fully default settings.
func (d *PeerNotifySettings) Empty() bool {
	return d.Flags == 0
}

func (d *PeerNotifySettings) Encode() ([]byte, error) {
	return msgpack.Marshal(d)
}

// DecodePeerNotifySettings is the boundary where malformed inbound messages
// are rejected. Everything past this point may assume a well-formed snapshot.
func DecodePeerNotifySettings(b []byte) (*PeerNotifySettings, error) {
	var d PeerNotifySettings
	if err := msgpack.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	if d.Type != TypePeerNotifySettings {
		return nil, ErrUnexpectedType
	}
	return &d, nil
}

// InputPeerNotifySettings is the partial-update request sent back upstream.
// A flag bit is set for every field the client has an explicit value for;
// unflagged fields carry protocol-mandated placeholders.
type InputPeerNotifySettings struct {
	Flags        uint32            `msgpack:"flags"`
	ShowPreviews bool              `msgpack:"show_previews"`
	Silent       bool              `msgpack:"silent"`
	MuteUntil    int64             `msgpack:"mute_until"`
	Sound        NotificationSound `msgpack:"sound"`
}

func (d *InputPeerNotifySettings) Encode() ([]byte, error) {
	return msgpack.Marshal(d)
}

// DefaultInput is the canonical "no customization" request: all flags unset,
// every field at its placeholder value.
func DefaultInput() InputPeerNotifySettings {
	return InputPeerNotifySettings{
		ShowPreviews: true,
	}
}
