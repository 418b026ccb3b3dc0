package notify

// State is the persisted form of a Settings container, embedded in the peer
// document.
type State struct {
	Known        bool         `bson:"known,omitempty" msgpack:"known,omitempty"`
	HasValue     bool         `bson:"has_value,omitempty" msgpack:"has_value,omitempty"`
	MuteUntil    *int64       `bson:"mute_until,omitempty" msgpack:"mute_until,omitempty"`
	Sound        *NotifySound `bson:"sound,omitempty" msgpack:"sound,omitempty"`
	ShowPreviews *bool        `bson:"show_previews,omitempty" msgpack:"show_previews,omitempty"`
	Silent       *bool        `bson:"silent,omitempty" msgpack:"silent,omitempty"`
}

// State snapshots the container for persistence. Field pointers are copied
// so the snapshot doesn't alias the live container.
func (s *Settings) State() State {
	st := State{Known: s.known}
	if s.value == nil {
		return st
	}
	st.HasValue = true
	if s.value.mute != nil {
		mute := *s.value.mute
		st.MuteUntil = &mute
	}
	if s.value.sound != nil {
		sound := *s.value.sound
		st.Sound = &sound
	}
	if s.value.showPreviews != nil {
		previews := *s.value.showPreviews
		st.ShowPreviews = &previews
	}
	if s.value.silent != nil {
		silent := *s.value.silent
		st.Silent = &silent
	}
	return st
}

// FromState rebuilds a container from a persisted snapshot. A stored value
// with every field absent is collapsed back to the known-default state, so
// the redundant representation never survives a reload.
func FromState(st State, clock Clock) Settings {
	s := Settings{clock: clock, known: st.Known}
	if !st.HasValue {
		return s
	}
	v := settingsValue{}
	if st.MuteUntil != nil {
		mute := *st.MuteUntil
		v.mute = &mute
	}
	if st.Sound != nil {
		sound := *st.Sound
		v.sound = &sound
	}
	if st.ShowPreviews != nil {
		previews := *st.ShowPreviews
		v.showPreviews = &previews
	}
	if st.Silent != nil {
		silent := *st.Silent
		v.silent = &silent
	}
	if v.mute == nil && v.sound == nil && v.showPreviews == nil && v.silent == nil {
		return s
	}
	s.known = true
	s.value = &v
	return s
}
