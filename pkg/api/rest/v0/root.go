package v0_rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RootRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		returnData(w, http.StatusOK, RootResp{
			Name:    "notify",
			Version: "0",
		})
	})

	return r
}
