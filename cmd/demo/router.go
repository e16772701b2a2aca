package main

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/secretcookie/pkg/segment"
)

const userInfo = "userInfo"

func newRouter(segments *segment.Manager) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(segments.Middleware(userInfo))

	r.Get("/", handleIndex)
	r.Get("/debug", handleDebug)

	return r
}

// handleIndex prints the stored username. The first visit prints "Undefined"
// and fills the segment, so the next visit prints the stored name.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	info := segment.MustFromContext(r.Context(), userInfo)
	username := segment.Value(info, "username", "Undefined")

	if !info.Has("mail") {
		info.Set("username", "muhammetsafak").
			Set("mail", "info@muhammetsafak.com.tr").
			Set("visitor", uuid.NewString())
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, username)
}

func handleDebug(w http.ResponseWriter, r *http.Request) {
	info := segment.MustFromContext(r.Context(), userInfo)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"segment":     info.Name(),
		"keys":        info.Keys(),
		"len":         info.Len(),
		"diagnostics": info.Debug(),
	})
}
