package notify

import (
	"time"

	"github.com/meower-media/notify/pkg/protocol"
)

// Clock supplies the current unix time (seconds) for converting relative
// mute durations into absolute expiries.
type Clock func() int64

// Settings is the per-peer notification settings container. It tracks two
// things the rest of the application cares about: whether the server has
// ever told us anything about this peer (known), and the customized value if
// one exists. known with no value means the server confirmed the peer has
// fully default settings, which is distinct from never having asked.
//
// Settings is a plain value type with no internal locking; the owning peer
// entity is responsible for serializing access.
type Settings struct {
	clock Clock
	known bool
	value *settingsValue
}

func NewSettings(clock Clock) Settings {
	return Settings{clock: clock}
}

func (s *Settings) now() int64 {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now().Unix()
}

// Change applies a server snapshot and reports whether anything changed. An
// empty snapshot (no flags) means the peer has default settings and drops
// the value wholesale. Callers must hand in a snapshot that passed the
// protocol boundary (DecodePeerNotifySettings).
func (s *Settings) Change(data *protocol.PeerNotifySettings) bool {
	if data.Empty() {
		if !s.known || s.value != nil {
			s.known = true
			s.value = nil
			return true
		}
		return false
	}
	if s.value != nil {
		return s.value.change(data)
	}
	s.known = true
	s.value = newSettingsValue(data)
	return true
}

// ChangeOverride applies a local user action (mute for a duration, toggle
// silent posts). Fields the caller leaves nil are preserved. When no value
// exists yet, an equivalent snapshot is synthesized and run through Change
// so construction happens in one place.
func (s *Settings) ChangeOverride(muteForSeconds *int64, silentPosts *bool) bool {
	if muteForSeconds == nil && silentPosts == nil {
		return false
	}
	if s.value != nil {
		return s.value.changeOverride(muteForSeconds, silentPosts, s.now())
	}
	data := protocol.PeerNotifySettings{Type: protocol.TypePeerNotifySettings}
	if muteForSeconds != nil {
		data.Flags |= protocol.FlagNotifyMuteUntil
		if *muteForSeconds > 0 {
			data.MuteUntil = s.now() + *muteForSeconds
		}
	}
	if silentPosts != nil {
		data.Flags |= protocol.FlagNotifySilent
		data.Silent = *silentPosts
	}
	return s.Change(&data)
}

// MuteUntil returns the absolute mute expiry, 0 for explicitly not muted,
// or nil when unknown. Whether the peer is currently muted is for the
// caller to derive against its own clock.
func (s *Settings) MuteUntil() *int64 {
	if s.value == nil {
		return nil
	}
	return s.value.muteUntil()
}

func (s *Settings) SilentPosts() *bool {
	if s.value == nil {
		return nil
	}
	return s.value.silentPosts()
}

// SettingsUnknown reports whether no snapshot has ever been received for
// this peer.
func (s *Settings) SettingsUnknown() bool {
	return !s.known
}

// Serialize builds the partial-update request for the current state, or the
// canonical default request when no value is held.
func (s *Settings) Serialize() protocol.InputPeerNotifySettings {
	if s.value == nil {
		return protocol.DefaultInput()
	}
	return s.value.serialize()
}
