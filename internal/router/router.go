package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/tedjkamau/BFI/internal/config"
	"github.com/tedjkamau/BFI/internal/handler"    // import the handlers that implement business logic
	"github.com/tedjkamau/BFI/internal/middleware" // import middleware for caching, rate limiting and JWT auth
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated browse endpoints.  The
// scrape-backed routes are wrapped in the Redis response cache and the
// token-bucket rate limiter: both exist to keep this service a polite
// client of the upstream sources.  The stored-film routes hit MySQL only
// and need neither.
func RegisterPublic(e *echo.Echo, f *handler.FilmHandler, rdb *redis.Client) {
	scraped := e.Group("/v1")
	scraped.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	scraped.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	// Weekend ranking: top-N films with their detail references.
	scraped.GET("/weekends/:year/:week/films", f.GetWeekendFilms)
	// Full combined record (history + metadata) for one ranked film.
	scraped.GET("/weekends/:year/:week/films/:title", f.GetCombined)
	// Weekly history behind a detail reference obtained from the ranking.
	scraped.GET("/films/history", f.GetFilmHistory)

	// Persisted catalogue, populated by the background refresh consumer.
	e.GET("/v1/films", f.GetStoredFilms)
	e.GET("/v1/films/:title", f.GetStoredFilm)
}

// RegisterAdmin registers the token exchange and the JWT-protected
// operator endpoints.
func RegisterAdmin(e *echo.Echo, a *handler.AuthHandler, adm *handler.AdminHandler, jwtSecret string) {
	// Exchange the admin secret for a short-lived access token.
	e.POST("/v1/auth/token", a.IssueToken)

	// Operator endpoints live under /v1/admin and require a valid token.
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	// Queue a weekend re-scrape for the background consumer.
	g.POST("/refresh", adm.Refresh)
}
