package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"vetocheck-api/internal/catalog"
	"vetocheck-api/internal/config"
	"vetocheck-api/internal/diagnostic"
	"vetocheck-api/internal/feedback"
	"vetocheck-api/internal/logger"
	"vetocheck-api/internal/platform/telegram"
	"vetocheck-api/internal/report"
)

func main() {
	logger.Setup()
	log := logger.New("server")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	// 1. Static data
	cat, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load question catalog")
	}
	log.Info().Int("questions", len(cat.Questions())).Msg("question catalog loaded")

	// 2. Infrastructure
	var db *sql.DB
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			break
		}
		log.Info().Int("attempt", i+1).Msg("waiting for database")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Warn().Err(err).Msg("could not connect to database, feedback endpoints will fail")
	} else {
		log.Info().Msg("connected to database")

		m, err := migrate.New(cfg.MigrationsPath, cfg.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("migration init failed")
		} else if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Warn().Err(err).Msg("migration up failed")
		} else {
			log.Info().Msg("migrations applied")
		}
	}

	// 3. Clients & services
	tgClient := telegram.NewClient(cfg.TelegramBotToken)
	if cfg.VetChatID == 0 {
		log.Warn().Msg("VET_CHAT_ID is not set, red-risk reports will not be delivered")
	}
	reportSvc := report.NewService(tgClient, cfg.VetChatID)

	diagnosticSvc := diagnostic.NewService(cat, reportSvc)
	diagnosticHandler := diagnostic.NewHandler(diagnosticSvc, cat)

	feedbackRepo := feedback.NewRepository(db)
	feedbackSvc := feedback.NewService(feedbackRepo)
	feedbackHandler := feedback.NewHandler(feedbackSvc)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for the frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		diagnostic.RegisterRoutes(r, diagnosticHandler)
		feedback.RegisterRoutes(r, feedbackHandler)
	})

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
