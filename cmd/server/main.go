package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/tedjkamau/BFI/internal/boxoffice"
	"github.com/tedjkamau/BFI/internal/config"
	"github.com/tedjkamau/BFI/internal/database"
	"github.com/tedjkamau/BFI/internal/handler"
	"github.com/tedjkamau/BFI/internal/pipeline"
	"github.com/tedjkamau/BFI/internal/queue"
	"github.com/tedjkamau/BFI/internal/repository"
	"github.com/tedjkamau/BFI/internal/router"
	"github.com/tedjkamau/BFI/internal/tmdb"
)

func main() {
	_ = godotenv.Load() // load .env when present; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	rdb := config.NewRedisClient() // nil disables caching and rate limiting
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	p := &pipeline.Pipeline{
		BoxOffice: boxoffice.NewClient(cfg.MojoBaseURL),
		Metadata:  tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey),
		Films:     repository.NewFilmRepo(db),
		Figures:   repository.NewFiguresRepo(db),
		Rate:      cfg.ExchangeRate,
		MaxFilms:  cfg.TopFilmsMax,
	}

	// Background consumer: processes queued weekend refreshes.  Runs a
	// reconnect loop of its own, so a broker outage never stops the API.
	go func() {
		if err := queue.StartRefreshConsumer(p); err != nil {
			log.Printf("refresh consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterPublic(e, &handler.FilmHandler{Pipeline: p, Films: p.Films, Figures: p.Figures}, rdb)
	router.RegisterAdmin(e,
		&handler.AuthHandler{JWTSecret: cfg.JWTSecret, AdminSecret: cfg.AdminSecret, AccessTTLMin: cfg.AccessTTLMin},
		&handler.AdminHandler{},
		cfg.JWTSecret,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
