package utils

// Op codes appended to msgpack payloads on the event bus so subscribers can
// route packets without unmarshaling them first.
const (
	EvOpUpdateNotifySettings uint8 = 0
	EvOpResetNotifySettings  uint8 = 1

	EvOpRevokeSession uint8 = 2
)
