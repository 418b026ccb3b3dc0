package notify_test

import (
	"testing"

	"github.com/meower-media/notify/pkg/notify"
	"github.com/meower-media/notify/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNow int64 = 1_700_000_000

func fixedClock() notify.Clock {
	return func() int64 { return testNow }
}

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func customPush() *protocol.PeerNotifySettings {
	return &protocol.PeerNotifySettings{
		Type:      protocol.TypePeerNotifySettings,
		Flags:     protocol.FlagNotifyMuteUntil | protocol.FlagNotifySilent,
		MuteUntil: testNow + 3600,
		Silent:    true,
	}
}

func emptyPush() *protocol.PeerNotifySettings {
	return &protocol.PeerNotifySettings{Type: protocol.TypePeerNotifySettings}
}

func TestUnknownVsDefaultDistinction(t *testing.T) {
	s := notify.NewSettings(fixedClock())

	// Fresh container: never heard from the server
	assert.True(t, s.SettingsUnknown())
	assert.Nil(t, s.MuteUntil())
	assert.Nil(t, s.SilentPosts())

	// Empty push: server confirmed fully default settings
	assert.True(t, s.Change(emptyPush()))
	assert.False(t, s.SettingsUnknown())
	assert.Nil(t, s.MuteUntil())
}

func TestChangeIdempotent(t *testing.T) {
	s := notify.NewSettings(fixedClock())

	assert.True(t, s.Change(customPush()))
	assert.False(t, s.Change(customPush()))

	require.NotNil(t, s.MuteUntil())
	assert.Equal(t, testNow+3600, *s.MuteUntil())
	require.NotNil(t, s.SilentPosts())
	assert.True(t, *s.SilentPosts())
}

func TestEmptyPushCollapse(t *testing.T) {
	s := notify.NewSettings(fixedClock())
	require.True(t, s.Change(customPush()))

	// Empty push revokes all customization regardless of prior state
	assert.True(t, s.Change(emptyPush()))
	assert.False(t, s.SettingsUnknown())
	assert.Nil(t, s.MuteUntil())
	assert.Nil(t, s.SilentPosts())
	assert.Equal(t, protocol.DefaultInput(), s.Serialize())

	// Already known-default: no change to report
	assert.False(t, s.Change(emptyPush()))
}

func TestPushReplacesOmittedFields(t *testing.T) {
	s := notify.NewSettings(fixedClock())
	require.True(t, s.Change(customPush()))

	// A later push is a full snapshot: the omitted mute field drops back to
	// unknown instead of being preserved
	assert.True(t, s.Change(&protocol.PeerNotifySettings{
		Type:   protocol.TypePeerNotifySettings,
		Flags:  protocol.FlagNotifySilent,
		Silent: true,
	}))
	assert.Nil(t, s.MuteUntil())
	require.NotNil(t, s.SilentPosts())
	assert.True(t, *s.SilentPosts())
	assert.Equal(t, protocol.FlagNotifySilent, s.Serialize().Flags)
}

func TestOverrideNoopPreservesState(t *testing.T) {
	s := notify.NewSettings(fixedClock())

	assert.False(t, s.ChangeOverride(nil, nil))
	assert.True(t, s.SettingsUnknown())

	require.True(t, s.Change(customPush()))
	before := s.Serialize()
	assert.False(t, s.ChangeOverride(nil, nil))
	assert.Equal(t, before, s.Serialize())
}

func TestOverrideMuteDurationConversion(t *testing.T) {
	cases := []struct {
		name     string
		duration int64
		want     int64
	}{
		{"positive", 600, testNow + 600},
		{"zero", 0, 0},
		{"negative", -5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Through the synthesized-push construction path
			s := notify.NewSettings(fixedClock())
			assert.True(t, s.ChangeOverride(int64Ptr(tc.duration), nil))
			require.NotNil(t, s.MuteUntil())
			assert.Equal(t, tc.want, *s.MuteUntil())

			// Through the existing-value override path
			s = notify.NewSettings(fixedClock())
			require.True(t, s.Change(customPush()))
			s.ChangeOverride(int64Ptr(tc.duration), nil)
			require.NotNil(t, s.MuteUntil())
			assert.Equal(t, tc.want, *s.MuteUntil())
		})
	}
}

func TestOverridePreservesUnmentionedFields(t *testing.T) {
	s := notify.NewSettings(fixedClock())
	require.True(t, s.Change(&protocol.PeerNotifySettings{
		Type:  protocol.TypePeerNotifySettings,
		Flags: protocol.FlagNotifySound | protocol.FlagNotifyShowPreviews,
		Sound: protocol.NotificationSound{
			Type:       protocol.SoundRingtone,
			RingtoneId: 7,
		},
		ShowPreviews: true,
	}))

	assert.True(t, s.ChangeOverride(int64Ptr(300), nil))

	out := s.Serialize()
	assert.Equal(t,
		protocol.FlagNotifySound|protocol.FlagNotifyShowPreviews|protocol.FlagNotifyMuteUntil,
		out.Flags)
	assert.Equal(t, protocol.SoundRingtone, out.Sound.Type)
	assert.Equal(t, int64(7), out.Sound.RingtoneId)
	assert.True(t, out.ShowPreviews)
	assert.Equal(t, testNow+300, out.MuteUntil)
}

func TestOverrideOnKnownDefault(t *testing.T) {
	s := notify.NewSettings(fixedClock())
	require.True(t, s.Change(emptyPush()))

	// A local override on a known-default peer constructs a fresh value
	assert.True(t, s.ChangeOverride(nil, boolPtr(true)))
	assert.False(t, s.SettingsUnknown())
	require.NotNil(t, s.SilentPosts())
	assert.True(t, *s.SilentPosts())

	// Same override again: no change
	assert.False(t, s.ChangeOverride(nil, boolPtr(true)))
}

func TestSerializeFlagCorrectness(t *testing.T) {
	// No value held: canonical default request, zero flags, placeholders
	s := notify.NewSettings(fixedClock())
	out := s.Serialize()
	assert.Zero(t, out.Flags)
	assert.True(t, out.ShowPreviews)
	assert.False(t, out.Silent)
	assert.Zero(t, out.MuteUntil)
	assert.Equal(t, protocol.SoundUnset, out.Sound.Type)

	// Exactly one bit per explicitly known field
	require.True(t, s.ChangeOverride(int64Ptr(600), nil))
	out = s.Serialize()
	assert.Equal(t, protocol.FlagNotifyMuteUntil, out.Flags)
	assert.Equal(t, testNow+600, out.MuteUntil)
	assert.True(t, out.ShowPreviews) // placeholder, flag unset

	require.True(t, s.ChangeOverride(nil, boolPtr(false)))
	out = s.Serialize()
	assert.Equal(t, protocol.FlagNotifyMuteUntil|protocol.FlagNotifySilent, out.Flags)
	assert.False(t, out.Silent)
}

func TestConstructionAlwaysReportsChanged(t *testing.T) {
	s := notify.NewSettings(fixedClock())

	// There was nothing before, so constructing a value is always a change
	assert.True(t, s.Change(&protocol.PeerNotifySettings{
		Type:      protocol.TypePeerNotifySettings,
		Flags:     protocol.FlagNotifyMuteUntil,
		MuteUntil: 0,
	}))
	require.NotNil(t, s.MuteUntil())
	assert.Zero(t, *s.MuteUntil())
}
