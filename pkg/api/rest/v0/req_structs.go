package v0_rest

type MuteChatReq struct {
	// Relative duration in seconds. Zero or negative explicitly unmutes.
	Duration *int64 `json:"duration" validate:"required"`
}

type SetSilentPostsReq struct {
	Silent *bool `json:"silent" validate:"required"`
}
