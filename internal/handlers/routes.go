package handlers

import (
	"net/http"

	"github.com/go-chi/cors"
)

// NewRouter registers the page, form and API routes. Static files are served
// from staticPath when it is set; the API accepts cross-origin calls from
// allowedOrigins.
func NewRouter(h *QuizHandler, mw *Middleware, staticPath string, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	// Static files
	if staticPath != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticPath))))
	}

	mux.HandleFunc("GET /healthz", Health)

	// Page and form fallbacks
	mux.HandleFunc("GET /{$}", mw.Player(h.ShowQuiz))
	mux.HandleFunc("POST /quiz/restart", mw.Player(mw.RequireCSRF(h.Restart)))
	mux.HandleFunc("POST /quiz/move", mw.Player(mw.RequireCSRF(h.MoveToken)))
	mux.HandleFunc("POST /quiz/check", mw.Player(mw.RequireCSRF(h.Check)))
	mux.HandleFunc("POST /quiz/next", mw.Player(mw.RequireCSRF(h.Next)))

	// JSON API
	api := http.NewServeMux()
	api.HandleFunc("GET /api/quiz", mw.Player(h.GetState))
	api.HandleFunc("POST /api/quiz/start", mw.Player(mw.RequireCSRF(h.StartAPI)))
	api.HandleFunc("POST /api/quiz/gestures", mw.Player(mw.RequireCSRF(h.Gestures)))
	api.HandleFunc("POST /api/quiz/check", mw.Player(mw.RequireCSRF(h.CheckAPI)))
	api.HandleFunc("POST /api/quiz/next", mw.Player(mw.RequireCSRF(h.NextAPI)))
	api.HandleFunc("GET /api/quiz/result", mw.Player(h.ResultAPI))

	if len(allowedOrigins) > 0 {
		mux.Handle("/api/", cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"X-CSRF-Token"},
			AllowCredentials: true,
			MaxAge:           300,
		})(api))
	} else {
		mux.Handle("/api/", api)
	}

	return mux
}
