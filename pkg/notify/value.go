package notify

import (
	"github.com/meower-media/notify/pkg/protocol"
)

// settingsValue holds the four per-peer fields that have been explicitly
// learned. A nil field means the peer inherits the ambient policy for it. A
// value only exists while at least one field is (or was) known; the
// all-absent case is represented by the container holding no value at all.
type settingsValue struct {
	mute         *int64
	sound        *NotifySound
	showPreviews *bool
	silent       *bool
}

func newSettingsValue(data *protocol.PeerNotifySettings) *settingsValue {
	v := settingsValue{}
	v.change(data)
	return &v
}

// change applies a full server snapshot. The snapshot is authoritative:
// every field is replaced with exactly what the snapshot states, including
// dropping a previously known field whose flag is unset.
func (v *settingsValue) change(data *protocol.PeerNotifySettings) bool {
	var mute *int64
	var sound *NotifySound
	var showPreviews *bool
	var silent *bool
	if data.Flags&protocol.FlagNotifyMuteUntil != 0 {
		muteUntil := data.MuteUntil
		mute = &muteUntil
	}
	if data.Flags&protocol.FlagNotifySound != 0 {
		parsed := ParseSound(data.Sound)
		sound = &parsed
	}
	if data.Flags&protocol.FlagNotifyShowPreviews != 0 {
		previews := data.ShowPreviews
		showPreviews = &previews
	}
	if data.Flags&protocol.FlagNotifySilent != 0 {
		silentPosts := data.Silent
		silent = &silentPosts
	}
	return v.merge(mute, sound, showPreviews, silent)
}

// changeOverride applies a local user action. Unlike a server snapshot,
// fields the caller doesn't mention are preserved. Any non-positive duration
// clears the mute to the explicit "not muted" timestamp 0.
func (v *settingsValue) changeOverride(muteForSeconds *int64, silentPosts *bool, now int64) bool {
	newMute := v.mute
	if muteForSeconds != nil {
		muteUntil := int64(0)
		if *muteForSeconds > 0 {
			muteUntil = now + *muteForSeconds
		}
		newMute = &muteUntil
	}
	newSilent := v.silent
	if silentPosts != nil {
		silent := *silentPosts
		newSilent = &silent
	}
	return v.merge(newMute, v.sound, v.showPreviews, newSilent)
}

// merge compares all four fields by value and either applies all of them or
// none of them.
func (v *settingsValue) merge(mute *int64, sound *NotifySound, showPreviews *bool, silent *bool) bool {
	if eqInt64(v.mute, mute) &&
		eqSound(v.sound, sound) &&
		eqBool(v.showPreviews, showPreviews) &&
		eqBool(v.silent, silent) {
		return false
	}
	v.mute = mute
	v.sound = sound
	v.showPreviews = showPreviews
	v.silent = silent
	return true
}

func (v *settingsValue) muteUntil() *int64 {
	return v.mute
}

func (v *settingsValue) silentPosts() *bool {
	return v.silent
}

// serialize builds the partial-update request for this value. A flag bit is
// set per present field; absent fields carry protocol placeholders.
func (v *settingsValue) serialize() protocol.InputPeerNotifySettings {
	out := protocol.DefaultInput()
	if v.showPreviews != nil {
		out.Flags |= protocol.FlagNotifyShowPreviews
		out.ShowPreviews = *v.showPreviews
	}
	if v.silent != nil {
		out.Flags |= protocol.FlagNotifySilent
		out.Silent = *v.silent
	}
	if v.mute != nil {
		out.Flags |= protocol.FlagNotifyMuteUntil
		out.MuteUntil = *v.mute
	}
	if v.sound != nil {
		out.Flags |= protocol.FlagNotifySound
	}
	out.Sound = SerializeSound(v.sound)
	return out
}

func eqInt64(a *int64, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqBool(a *bool, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqSound(a *NotifySound, b *NotifySound) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
