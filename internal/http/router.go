package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"wave/internal/config"
	"wave/internal/expense"
	"wave/internal/group"
	"wave/internal/http/handler"
	mw "wave/internal/http/middleware"
	"wave/internal/identity"
	"wave/internal/media"
	"wave/internal/message"
	"wave/internal/poll"
	"wave/internal/suggestion"
	"wave/internal/user"
)

func NewRouter(
	cfg config.Config,
	db *gorm.DB,
	verifier identity.Verifier,
	uploader media.Uploader,
	textGen suggestion.TextGenerator,
	geocoder suggestion.Geocoder,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.Metrics)
	r.Use(mw.Logger)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	groups := &group.Service{DB: db}
	users := &user.Service{DB: db}
	messages := &message.Service{DB: db, Groups: groups}
	polls := &poll.Service{DB: db, Groups: groups}
	expenses := &expense.Service{DB: db, Groups: groups}
	suggestions := &suggestion.Service{DB: db, Groups: groups, Text: textGen, Geo: geocoder}

	uh := &handler.UserHandler{Svc: users}
	gh := &handler.GroupHandler{Svc: groups}
	mh := &handler.MessageHandler{Svc: messages}
	ph := &handler.PollHandler{Svc: polls}
	eh := &handler.ExpenseHandler{Svc: expenses}
	sh := &handler.SuggestionHandler{Svc: suggestions}
	fh := &handler.UploadHandler{Uploader: uploader}

	r.Route("/api", func(r chi.Router) {
		r.Use(identity.RequireAuth(verifier))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", uh.Create)
			r.Get("/search", uh.Search)
			r.Get("/{email}", uh.GetByEmail)
			r.Put("/update", uh.Update)
			r.Put("/streak", uh.BumpStreak)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", gh.Create)
			r.Get("/", gh.ListMine)
			r.Post("/{id}/members", gh.AddMember)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", mh.Send)
			r.Get("/", mh.List)
			r.Get("/search", mh.Search)
			r.Put("/{id}/react", mh.React)
			r.Delete("/{id}", mh.Delete)

			r.Post("/memories", mh.CreateMemory)
			r.Get("/memories/{group_id}", mh.ListMemories)

			r.Post("/journal", mh.CreateJournal)
			r.Get("/journal", mh.ListJournals)
		})

		r.Route("/polls", func(r chi.Router) {
			r.Post("/", ph.Create)
			r.Get("/", ph.List)
			r.Put("/{id}/vote", ph.Vote)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", eh.Create)
			r.Get("/group/{group_id}", eh.ListForGroup)
		})

		r.Route("/suggestions", func(r chi.Router) {
			r.Post("/", sh.Create)
			r.Get("/group/{group_id}", sh.ListForGroup)
		})

		r.Post("/uploads/file", fh.UploadFile)
	})

	return r
}
