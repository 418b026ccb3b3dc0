package protocol

// Wire notification sound kinds. SoundUnset is the placeholder used when the
// sound flag is not set; it is never a meaningful value on its own.
const (
	SoundUnset    int8 = 0
	SoundDefault  int8 = 1
	SoundNone     int8 = 2
	SoundLocal    int8 = 3
	SoundRingtone int8 = 4
)

// SoundKinds lists every meaningful wire sound kind. Tests range over this to
// catch a new kind being added without the codec learning about it.
var SoundKinds = []int8{SoundDefault, SoundNone, SoundLocal, SoundRingtone}

type NotificationSound struct {
	Type       int8   `msgpack:"type"`
	Title      string `msgpack:"title,omitempty"`
	Data       string `msgpack:"data,omitempty"`
	RingtoneId int64  `msgpack:"ringtone_id,omitempty"`
}
