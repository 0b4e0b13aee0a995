package http

import (
	"log/slog"
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	"afairytale/internal/delivery/http/controllers"
	"afairytale/internal/delivery/http/middleware"
	"afairytale/internal/domain"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Logger    *slog.Logger
	Verifier  domain.TokenVerifier
	Events    *controllers.EventController
	Residents *controllers.ResidentController
	Stats     *controllers.StatsController
	Upload    *controllers.UploadController
	Auth      *controllers.AuthController
	Contact   *controllers.ContactController
	// PublicDir is the directory holding uploaded assets, served under /team/.
	PublicDir string
}

// NewRouter initializes the HTTP router with all application routes.
// Reads are public; mutations and stats require an admin bearer token.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(deps.Verifier, deps.Logger)

	// Events
	mux.HandleFunc("GET /events", deps.Events.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", deps.Events.GetEvent)
	mux.HandleFunc("POST /events", admin(deps.Events.CreateEvent))
	mux.HandleFunc("PUT /events/{eventID}", admin(deps.Events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", admin(deps.Events.DeleteEvent))

	// Residents
	mux.HandleFunc("GET /residents", deps.Residents.ListResidents)
	mux.HandleFunc("GET /residents/{residentID}", deps.Residents.GetResident)
	mux.HandleFunc("POST /residents", admin(deps.Residents.CreateResident))
	mux.HandleFunc("PUT /residents/{residentID}", admin(deps.Residents.UpdateResident))
	mux.HandleFunc("DELETE /residents/{residentID}", admin(deps.Residents.DeleteResident))

	// Admin dashboard
	mux.HandleFunc("GET /stats", admin(deps.Stats.GetStats))
	mux.HandleFunc("POST /upload", admin(deps.Upload.Upload))

	// Auth + contact
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)
	mux.HandleFunc("GET /auth/me", admin(deps.Auth.Me))
	mux.HandleFunc("POST /contact", deps.Contact.SendMessage)

	// Uploaded assets for the public site. Directory requests are refused
	// so the upload folder cannot be enumerated.
	files := http.StripPrefix("/team/", http.FileServer(http.Dir(deps.PublicDir+"/team")))
	mux.Handle("GET /team/", noDirListing(files))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// noDirListing responds 404 to directory paths so FileServer never renders
// an index of the uploaded files.
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
