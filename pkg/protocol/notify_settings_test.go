package protocol_test

import (
	"testing"

	"github.com/meower-media/notify/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePeerNotifySettings(t *testing.T) {
	in := protocol.PeerNotifySettings{
		Type:      protocol.TypePeerNotifySettings,
		Flags:     protocol.FlagNotifyMuteUntil | protocol.FlagNotifySound,
		MuteUntil: 1_700_000_600,
		Sound: protocol.NotificationSound{
			Type:  protocol.SoundLocal,
			Title: "chime",
			Data:  "chime.mp3",
		},
	}
	b, err := in.Encode()
	require.NoError(t, err)

	out, err := protocol.DecodePeerNotifySettings(b)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
	assert.False(t, out.Empty())
}

func TestDecodeRejectsWrongType(t *testing.T) {
	in := protocol.PeerNotifySettings{
		Type: protocol.TypePeerNotifySettingsEmpty,
	}
	b, err := in.Encode()
	require.NoError(t, err)

	_, err = protocol.DecodePeerNotifySettings(b)
	assert.ErrorIs(t, err, protocol.ErrUnexpectedType)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := protocol.DecodePeerNotifySettings([]byte{0xc1, 0xff, 0x00})
	assert.Error(t, err)
}

func TestEmpty(t *testing.T) {
	d := protocol.PeerNotifySettings{Type: protocol.TypePeerNotifySettings}
	assert.True(t, d.Empty())

	d.Flags = protocol.FlagNotifySilent
	assert.False(t, d.Empty())
}

func TestDefaultInput(t *testing.T) {
	in := protocol.DefaultInput()
	assert.Zero(t, in.Flags)
	assert.True(t, in.ShowPreviews)
	assert.False(t, in.Silent)
	assert.Zero(t, in.MuteUntil)
	assert.Equal(t, protocol.SoundUnset, in.Sound.Type)
}

func TestLegacySoundFieldsSurviveDecode(t *testing.T) {
	in := protocol.PeerNotifySettings{
		Type:  protocol.TypePeerNotifySettings,
		Flags: protocol.FlagNotifySilent,
		DesktopSound: protocol.NotificationSound{
			Type: protocol.SoundNone,
		},
	}
	b, err := in.Encode()
	require.NoError(t, err)

	out, err := protocol.DecodePeerNotifySettings(b)
	require.NoError(t, err)
	assert.Equal(t, protocol.SoundNone, out.DesktopSound.Type)
}
