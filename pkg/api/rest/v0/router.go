package v0_rest

import (
	"github.com/go-chi/chi/v5"
)

func Router() *chi.Mux {
	r := chi.NewRouter()

	r.Mount("/", RootRouter())
	r.Route("/chats/{chatId}/notify", func(r chi.Router) {
		r.Get("/", getNotifySettings)
		r.Get("/input", getNotifySettingsInput)
		r.Put("/mute", muteChat)
		r.Delete("/mute", unmuteChat)
		r.Put("/silent", setSilentPosts)
	})

	return r
}
