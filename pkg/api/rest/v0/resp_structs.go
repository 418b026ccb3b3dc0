package v0_rest

import "github.com/meower-media/notify/pkg/structs"

type ErrResp struct {
	Error  bool              `json:"error"`
	Type   string            `json:"type"`
	Fields map[string]string `json:"fields,omitempty"`
}

type RootResp struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type ChangedResp struct {
	Changed bool `json:"changed"`
}

type NotifySettingsResp struct {
	structs.V0PeerNotifySettings
}

// NotifyInputResp mirrors the flag-gated partial-update request built for
// the upstream service.
type NotifyInputResp struct {
	Flags        uint32          `json:"flags"`
	ShowPreviews bool            `json:"show_previews"`
	Silent       bool            `json:"silent"`
	MuteUntil    int64           `json:"mute_until"`
	Sound        NotifySoundResp `json:"sound"`
}

type NotifySoundResp struct {
	Type       int8   `json:"type"`
	Title      string `json:"title,omitempty"`
	Data       string `json:"data,omitempty"`
	RingtoneId int64  `json:"ringtone_id,omitempty"`
}
