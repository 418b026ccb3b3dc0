package structs

// V0PeerNotifySettings is the REST representation of one peer's effective
// notification settings. Nil fields mean the peer inherits the ambient
// policy; Unknown means the server has never stated anything for this peer.
type V0PeerNotifySettings struct {
	Unknown      bool           `json:"unknown" msgpack:"unknown"`
	MuteUntil    *int64         `json:"mute_until,omitempty" msgpack:"mute_until,omitempty"`
	Sound        *V0NotifySound `json:"sound,omitempty" msgpack:"sound,omitempty"`
	ShowPreviews *bool          `json:"show_previews,omitempty" msgpack:"show_previews,omitempty"`
	Silent       *bool          `json:"silent,omitempty" msgpack:"silent,omitempty"`
}

type V0NotifySound struct {
	None       bool   `json:"none,omitempty" msgpack:"none,omitempty"`
	Title      string `json:"title,omitempty" msgpack:"title,omitempty"`
	Data       string `json:"data,omitempty" msgpack:"data,omitempty"`
	RingtoneId int64  `json:"ringtone_id,omitempty" msgpack:"ringtone_id,omitempty"`
}
