package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/tedjkamau/BFI/internal/config"
)

// keyFor builds a context the way Echo does for a parameterized route: the
// request carries the concrete URL while the registered route template is
// what c.Path() reports.
func keyFor(e *echo.Echo, route, target string) string {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(route)
	return cacheKey(config.CacheConfig{Prefix: "cache"}, c)
}

func TestCacheKeyDistinguishesPathParams(t *testing.T) {
	e := echo.New()
	const route = "/v1/weekends/:year/:week/films"

	week32 := keyFor(e, route, "/v1/weekends/2024/32/films")
	week33 := keyFor(e, route, "/v1/weekends/2024/33/films")
	assert.NotEqual(t, week32, week33, "each weekend must cache under its own key")

	// The same concrete request always lands on the same key.
	assert.Equal(t, week32, keyFor(e, route, "/v1/weekends/2024/32/films"))
}

func TestCacheKeyDistinguishesTitlesAndQueries(t *testing.T) {
	e := echo.New()
	const route = "/v1/weekends/:year/:week/films/:title"

	deadpool := keyFor(e, route, "/v1/weekends/2024/32/films/Deadpool")
	twisters := keyFor(e, route, "/v1/weekends/2024/32/films/Twisters")
	assert.NotEqual(t, deadpool, twisters)

	a := keyFor(e, "/v1/films/history", "/v1/films/history?ref=a")
	b := keyFor(e, "/v1/films/history", "/v1/films/history?ref=b")
	assert.NotEqual(t, a, b)
}
