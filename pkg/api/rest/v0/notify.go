package v0_rest

import (
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/meower-media/notify/pkg/peers"
)

func getNotifySettings(w http.ResponseWriter, r *http.Request) {
	// Get authed session
	session := getAuthedSession(r)
	if session == nil {
		returnErr(w, http.StatusUnauthorized, ErrUnauthorized, nil)
		return
	}

	// Get peer
	peer, ok := getPeer(w, r, session.UserId)
	if !ok {
		return
	}

	returnData(w, http.StatusOK, NotifySettingsResp{
		V0PeerNotifySettings: peer.V0NotifySettings(),
	})
}

func getNotifySettingsInput(w http.ResponseWriter, r *http.Request) {
	// Get authed session
	session := getAuthedSession(r)
	if session == nil {
		returnErr(w, http.StatusUnauthorized, ErrUnauthorized, nil)
		return
	}

	// Get peer
	peer, ok := getPeer(w, r, session.UserId)
	if !ok {
		return
	}

	// Serialize partial-update request
	input := peer.SerializeInput()
	returnData(w, http.StatusOK, NotifyInputResp{
		Flags:        input.Flags,
		ShowPreviews: input.ShowPreviews,
		Silent:       input.Silent,
		MuteUntil:    input.MuteUntil,
		Sound: NotifySoundResp{
			Type:       input.Sound.Type,
			Title:      input.Sound.Title,
			Data:       input.Sound.Data,
			RingtoneId: input.Sound.RingtoneId,
		},
	})
}

func muteChat(w http.ResponseWriter, r *http.Request) {
	// Decode body
	var body MuteChatReq
	if !decodeBody(w, r, &body) {
		return
	}

	// Get authed session
	session := getAuthedSession(r)
	if session == nil {
		returnErr(w, http.StatusUnauthorized, ErrUnauthorized, nil)
		return
	}

	// Check ratelimit
	userIdStr := strconv.FormatInt(session.UserId, 10)
	if ratelimited("notify_update", "user", userIdStr) {
		returnErr(w, http.StatusTooManyRequests, ErrRatelimited, nil)
		return
	}
	if err := ratelimit(w, "notify_update", "user", userIdStr, 30, 60); err != nil {
		sentry.CaptureException(err)
		returnErr(w, http.StatusInternalServerError, ErrInternal, nil)
		return
	}

	// Get peer
	peer, ok := getPeer(w, r, session.UserId)
	if !ok {
		return
	}

	// Apply mute override
	changed, err := peer.SetMute(body.Duration)
	if err != nil {
		sentry.CaptureException(err)
		returnErr(w, http.StatusInternalServerError, ErrInternal, nil)
		return
	}

	returnData(w, http.StatusOK, ChangedResp{Changed: changed})
}

func unmuteChat(w http.ResponseWriter, r *http.Request) {
	// Get authed session
	session := getAuthedSession(r)
	if session == nil {
		returnErr(w, http.StatusUnauthorized, ErrUnauthorized, nil)
		return
	}

	// Get peer
	peer, ok := getPeer(w, r, session.UserId)
	if !ok {
		return
	}

	// Explicitly unmute
	duration := int64(0)
	changed, err := peer.SetMute(&duration)
	if err != nil {
		sentry.CaptureException(err)
		returnErr(w, http.StatusInternalServerError, ErrInternal, nil)
		return
	}

	returnData(w, http.StatusOK, ChangedResp{Changed: changed})
}

func setSilentPosts(w http.ResponseWriter, r *http.Request) {
	// Decode body
	var body SetSilentPostsReq
	if !decodeBody(w, r, &body) {
		return
	}

	// Get authed session
	session := getAuthedSession(r)
	if session == nil {
		returnErr(w, http.StatusUnauthorized, ErrUnauthorized, nil)
		return
	}

	// Get peer
	peer, ok := getPeer(w, r, session.UserId)
	if !ok {
		return
	}

	// Apply silent-posts override
	changed, err := peer.SetSilentPosts(body.Silent)
	if err != nil {
		sentry.CaptureException(err)
		returnErr(w, http.StatusInternalServerError, ErrInternal, nil)
		return
	}

	returnData(w, http.StatusOK, ChangedResp{Changed: changed})
}

// getPeer materializes the requested conversation peer for the user,
// handling the error response itself.
func getPeer(w http.ResponseWriter, r *http.Request, userId int64) (peers.Peer, bool) {
	chatId, err := strconv.ParseInt(chi.URLParam(r, "chatId"), 10, 64)
	if err != nil {
		returnErr(w, http.StatusNotFound, ErrNotFound, nil)
		return peers.Peer{}, false
	}

	peer, err := peers.EnsurePeer(userId, chatId, peers.PeerTypeGroup)
	if err != nil {
		sentry.CaptureException(err)
		returnErr(w, http.StatusInternalServerError, ErrInternal, nil)
		return peer, false
	}
	return peer, true
}
