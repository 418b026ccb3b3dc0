package notify_test

import (
	"testing"

	"github.com/meower-media/notify/pkg/notify"
	"github.com/meower-media/notify/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTripUnknown(t *testing.T) {
	s := notify.NewSettings(fixedClock())
	restored := notify.FromState(s.State(), fixedClock())
	assert.True(t, restored.SettingsUnknown())
	assert.Equal(t, protocol.DefaultInput(), restored.Serialize())
}

func TestStateRoundTripKnownDefault(t *testing.T) {
	s := notify.NewSettings(fixedClock())
	require.True(t, s.Change(emptyPush()))

	restored := notify.FromState(s.State(), fixedClock())
	assert.False(t, restored.SettingsUnknown())
	assert.Nil(t, restored.MuteUntil())
	assert.Equal(t, protocol.DefaultInput(), restored.Serialize())
}

func TestStateRoundTripCustom(t *testing.T) {
	s := notify.NewSettings(fixedClock())
	require.True(t, s.Change(&protocol.PeerNotifySettings{
		Type: protocol.TypePeerNotifySettings,
		Flags: protocol.FlagNotifyMuteUntil | protocol.FlagNotifySilent |
			protocol.FlagNotifyShowPreviews | protocol.FlagNotifySound,
		MuteUntil:    testNow + 900,
		Silent:       true,
		ShowPreviews: false,
		Sound: protocol.NotificationSound{
			Type:       protocol.SoundRingtone,
			RingtoneId: 11,
		},
	}))

	restored := notify.FromState(s.State(), fixedClock())
	assert.Equal(t, s.Serialize(), restored.Serialize())
	require.NotNil(t, restored.MuteUntil())
	assert.Equal(t, testNow+900, *restored.MuteUntil())
}

func TestStateSnapshotDoesNotAlias(t *testing.T) {
	s := notify.NewSettings(fixedClock())
	require.True(t, s.ChangeOverride(int64Ptr(600), nil))

	st := s.State()
	require.True(t, s.ChangeOverride(int64Ptr(0), nil))

	// The earlier snapshot keeps the value it was taken with
	require.NotNil(t, st.MuteUntil)
	assert.Equal(t, testNow+600, *st.MuteUntil)
}

func TestStateCollapsesAllAbsentValue(t *testing.T) {
	// A stored value with every field absent is the redundant form of
	// known-default and must not survive a reload
	restored := notify.FromState(notify.State{
		Known:    true,
		HasValue: true,
	}, fixedClock())

	assert.False(t, restored.SettingsUnknown())
	assert.Nil(t, restored.MuteUntil())
	assert.Equal(t, protocol.DefaultInput(), restored.Serialize())

	st := restored.State()
	assert.False(t, st.HasValue)
}
