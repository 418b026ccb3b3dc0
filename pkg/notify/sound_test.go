package notify_test

import (
	"testing"

	"github.com/meower-media/notify/pkg/notify"
	"github.com/meower-media/notify/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoundRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		sound notify.NotifySound
		kind  int8
	}{
		{"default", notify.NotifySound{}, protocol.SoundDefault},
		{"none", notify.NotifySound{None: true}, protocol.SoundNone},
		{"local", notify.NotifySound{Title: "chime", Data: "chime.mp3"}, protocol.SoundLocal},
		{"ringtone", notify.NotifySound{RingtoneId: 7}, protocol.SoundRingtone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wire := notify.SerializeSound(&tc.sound)
			assert.Equal(t, tc.kind, wire.Type)
			assert.Equal(t, tc.sound, notify.ParseSound(wire))
		})
	}
}

func TestSoundSerializeNil(t *testing.T) {
	wire := notify.SerializeSound(nil)
	assert.Equal(t, protocol.SoundUnset, wire.Type)

	// The unset placeholder reads as the default case
	assert.Equal(t, notify.NotifySound{}, notify.ParseSound(wire))
}

func TestSoundSerializePrecedence(t *testing.T) {
	// A ringtone id wins over a local title
	wire := notify.SerializeSound(&notify.NotifySound{
		Title:      "chime",
		Data:       "chime.mp3",
		RingtoneId: 7,
	})
	require.Equal(t, protocol.SoundRingtone, wire.Type)
	assert.Equal(t, int64(7), wire.RingtoneId)
	assert.Empty(t, wire.Title)
	assert.Equal(t, notify.NotifySound{RingtoneId: 7}, notify.ParseSound(wire))

	// The none marker wins over everything
	wire = notify.SerializeSound(&notify.NotifySound{
		None:       true,
		Title:      "chime",
		RingtoneId: 7,
	})
	assert.Equal(t, protocol.SoundNone, wire.Type)
}

// Every wire sound kind must survive a decode/encode cycle. This fails when
// a new kind is added to the protocol without the codec learning about it.
func TestSoundKindsExhaustive(t *testing.T) {
	samples := map[int8]protocol.NotificationSound{
		protocol.SoundDefault:  {Type: protocol.SoundDefault},
		protocol.SoundNone:     {Type: protocol.SoundNone},
		protocol.SoundLocal:    {Type: protocol.SoundLocal, Title: "chime", Data: "chime.mp3"},
		protocol.SoundRingtone: {Type: protocol.SoundRingtone, RingtoneId: 42},
	}
	for _, kind := range protocol.SoundKinds {
		sample, ok := samples[kind]
		require.True(t, ok, "no sample for wire sound kind %d", kind)

		parsed := notify.ParseSound(sample)
		assert.Equal(t, sample, notify.SerializeSound(&parsed), "kind %d", kind)
	}
}
