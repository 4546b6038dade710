package server

import (
	"database/sql"
	"net/http"
	"time"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"studymate/internal/handlers"
	authhandlers "studymate/internal/handlers/auth"
	"studymate/internal/handlers/progress"
	"studymate/internal/handlers/reminders"
	"studymate/internal/handlers/sessions"
	"studymate/internal/handlers/subjects"
	"studymate/internal/handlers/tasks"
	"studymate/internal/handlers/timetable"
	"studymate/internal/middleware"
	"studymate/internal/store"
	"studymate/internal/token"
	"studymate/internal/ws"
)

type Server struct {
	Addr   string
	Log    *logrus.Logger
	Tokens *token.Manager
	Hub    *ws.Hub

	users     *store.UserStore
	tasks     *store.TaskStore
	timetable *store.TimetableStore
	sessions  *store.SessionStore
	progress  *store.ProgressStore
	reminders *store.ReminderStore
	subjects  *store.SubjectStore
}

func NewServer(addr string, db *sql.DB, log *logrus.Logger, jwtSecret string, jwtTTL time.Duration) *Server {
	return &Server{
		Addr:      addr,
		Log:       log,
		Tokens:    token.NewManager(jwtSecret, jwtTTL),
		Hub:       ws.NewHub(log),
		users:     store.NewUserStore(db),
		tasks:     store.NewTaskStore(db),
		timetable: store.NewTimetableStore(db),
		sessions:  store.NewSessionStore(db),
		progress:  store.NewProgressStore(db),
		reminders: store.NewReminderStore(db),
		subjects:  store.NewSubjectStore(db),
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// Router mounts every route. Everything except register, login, health, and
// the websocket upgrade goes through the auth gate.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(logger.Logger("router", s.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	gate := middleware.AuthJWT(s.Tokens, s.users)

	r.Get("/health", handlers.HealthCheck)
	r.Get("/ws", HandlerFunc(&handlers.WSHandler{Tokens: s.Tokens, Users: s.users, Hub: s.Hub, Log: s.Log}))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", HandlerFunc(&authhandlers.RegisterHandler{Users: s.users, Tokens: s.Tokens, Log: s.Log}))
		r.Post("/login", HandlerFunc(&authhandlers.LoginHandler{Users: s.users, Tokens: s.Tokens, Log: s.Log}))

		r.Group(func(r chi.Router) {
			r.Use(gate)
			r.Get("/me", HandlerFunc(&authhandlers.MeHandler{}))
			r.Put("/profile", HandlerFunc(&authhandlers.ProfileHandler{Users: s.users, Log: s.Log}))
			r.Post("/change-password", HandlerFunc(&authhandlers.ChangePasswordHandler{Users: s.users, Log: s.Log}))
		})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Use(gate)
		r.Get("/", HandlerFunc(&tasks.ListHandler{Tasks: s.tasks, Log: s.Log}))
		r.Post("/", HandlerFunc(&tasks.CreateHandler{Tasks: s.tasks, Log: s.Log}))
		r.Get("/{id}", HandlerFunc(&tasks.GetHandler{Tasks: s.tasks, Log: s.Log}))
		r.Put("/{id}", HandlerFunc(&tasks.UpdateHandler{Tasks: s.tasks, Log: s.Log}))
		r.Patch("/{id}/complete", HandlerFunc(&tasks.CompleteHandler{Tasks: s.tasks, Hub: s.Hub, Log: s.Log}))
		r.Delete("/{id}", HandlerFunc(&tasks.DeleteHandler{Tasks: s.tasks, Log: s.Log}))
	})

	r.Route("/timetable", func(r chi.Router) {
		r.Use(gate)
		r.Get("/", HandlerFunc(&timetable.ListHandler{Entries: s.timetable, Log: s.Log}))
		r.Post("/", HandlerFunc(&timetable.CreateHandler{Entries: s.timetable, Log: s.Log}))
		r.Get("/{id}", HandlerFunc(&timetable.GetHandler{Entries: s.timetable, Log: s.Log}))
		r.Put("/{id}", HandlerFunc(&timetable.UpdateHandler{Entries: s.timetable, Log: s.Log}))
		r.Delete("/{id}", HandlerFunc(&timetable.DeleteHandler{Entries: s.timetable, Log: s.Log}))
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Use(gate)
		r.Get("/", HandlerFunc(&sessions.ListHandler{Sessions: s.sessions, Log: s.Log}))
		r.Post("/start", HandlerFunc(&sessions.StartHandler{Sessions: s.sessions, Log: s.Log}))
		r.Post("/{id}/end", HandlerFunc(&sessions.EndHandler{Sessions: s.sessions, Hub: s.Hub, Log: s.Log}))
		r.Delete("/{id}", HandlerFunc(&sessions.DeleteHandler{Sessions: s.sessions, Log: s.Log}))
	})

	r.Route("/progress", func(r chi.Router) {
		r.Use(gate)
		r.Get("/", HandlerFunc(&progress.ListHandler{Progress: s.progress, Log: s.Log}))
		r.Post("/", HandlerFunc(&progress.UpsertHandler{Progress: s.progress, Log: s.Log}))
		r.Get("/weekly", HandlerFunc(&progress.WeeklyHandler{Progress: s.progress, Log: s.Log}))
	})

	r.Route("/reminders", func(r chi.Router) {
		r.Use(gate)
		r.Get("/", HandlerFunc(&reminders.ListHandler{Reminders: s.reminders, Log: s.Log}))
		r.Post("/", HandlerFunc(&reminders.CreateHandler{Reminders: s.reminders, Hub: s.Hub, Log: s.Log}))
		r.Get("/{id}", HandlerFunc(&reminders.GetHandler{Reminders: s.reminders, Log: s.Log}))
		r.Put("/{id}", HandlerFunc(&reminders.UpdateHandler{Reminders: s.reminders, Log: s.Log}))
		r.Delete("/{id}", HandlerFunc(&reminders.DeleteHandler{Reminders: s.reminders, Log: s.Log}))
	})

	r.Route("/subjects", func(r chi.Router) {
		r.Use(gate)
		r.Get("/", HandlerFunc(&subjects.ListHandler{Subjects: s.subjects, Log: s.Log}))
		r.Post("/", HandlerFunc(&subjects.AddHandler{Subjects: s.subjects, Log: s.Log}))
		r.Put("/{id}", HandlerFunc(&subjects.UpdateHandler{Subjects: s.subjects, Log: s.Log}))
		r.Delete("/{id}", HandlerFunc(&subjects.DeleteHandler{Subjects: s.subjects, Log: s.Log}))
	})

	return r
}

func (s *Server) Run() error {
	s.Log.Infof("server running on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.Router())
}
