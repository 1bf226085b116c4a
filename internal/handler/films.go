// This file defines handlers for the public browse API: the weekend
// ranking, a film's weekly history, the combined record and the persisted
// catalogue.  Scrape-backed routes sit behind the response cache and rate
// limiter; the stored-film routes read straight from MySQL.

package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tedjkamau/BFI/internal/boxoffice"
	"github.com/tedjkamau/BFI/internal/model"
	"github.com/tedjkamau/BFI/internal/pipeline"
	"github.com/tedjkamau/BFI/internal/repository"
	"github.com/tedjkamau/BFI/internal/tmdb"
)

// FilmHandler aggregates the pipeline and repositories needed for browsing.
type FilmHandler struct {
	Pipeline *pipeline.Pipeline
	Films    *repository.FilmRepo
	Figures  *repository.FiguresRepo
}

// StoredFilm is a persisted film exposed via the public API.  Internal
// columns (ids, the join key, row timestamps) are filtered out.
type StoredFilm struct {
	Title       string               `json:"title"`
	Distributor string               `json:"distributor,omitempty"`
	PosterPath  string               `json:"poster_path,omitempty"`
	Overview    string               `json:"overview,omitempty"`
	TrailerURL  string               `json:"trailer_url,omitempty"`
	Rating      *float64             `json:"rating,omitempty"`
	ReleaseDate string               `json:"release_date,omitempty"`
	Figures     []model.WeeklyFigure `json:"figures,omitempty"`
}

// GetWeekendFilms returns the top-N ranking for a weekend:
// GET /v1/weekends/:year/:week/films
func (h *FilmHandler) GetWeekendFilms(c echo.Context) error {
	year, week, err := weekendParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	listings, err := h.Pipeline.TopFilms(c.Request().Context(), year, week)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": listings})
}

// GetFilmHistory returns the parsed weekly table behind a detail
// reference: GET /v1/films/history?ref=<detail url>
func (h *FilmHandler) GetFilmHistory(c echo.Context) error {
	ref := c.QueryParam("ref")
	if ref == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ref query parameter required"})
	}
	if !h.allowedRef(ref) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ref must point at the box-office source"})
	}
	figures, distributor, err := h.Pipeline.FilmHistory(c.Request().Context(), ref)
	if err != nil {
		if errors.Is(err, boxoffice.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no weekly table found"})
		}
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": figures, "distributor": distributor})
}

// GetCombined returns the full combined record for one ranked film:
// GET /v1/weekends/:year/:week/films/:title
func (h *FilmHandler) GetCombined(c echo.Context) error {
	year, week, err := weekendParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	title := c.Param("title")
	record, err := h.Pipeline.Combined(c.Request().Context(), year, week, title)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrFilmNotListed):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "film not in this weekend's ranking"})
		case errors.Is(err, boxoffice.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no weekly table found"})
		default:
			return upstreamError(c, err)
		}
	}
	return c.JSON(http.StatusOK, record)
}

// GetStoredFilms lists the persisted catalogue: GET /v1/films
func (h *FilmHandler) GetStoredFilms(c echo.Context) error {
	films, err := h.Films.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]StoredFilm, 0, len(films))
	for _, f := range films {
		out = append(out, storedFilm(f, nil))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetStoredFilm returns one persisted film with its stored history:
// GET /v1/films/:title
func (h *FilmHandler) GetStoredFilm(c echo.Context) error {
	ctx := c.Request().Context()
	film, err := h.Films.GetByTitleKey(ctx, model.TitleKey(c.Param("title")))
	if err != nil {
		if errors.Is(err, repository.ErrFilmNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "film not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	figures, err := h.Figures.ListByFilm(ctx, film.ID, film.Distributor)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, storedFilm(*film, figures))
}

// allowedRef accepts only detail references on the configured box-office
// source host.  ref is client input; without this check the endpoint
// would fetch any URL it is handed, internal addresses included.
func (h *FilmHandler) allowedRef(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	base, err := url.Parse(h.Pipeline.BoxOffice.Base())
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// weekendParams validates the :year/:week route parameters.
func weekendParams(c echo.Context) (int, int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2002 {
		return 0, 0, errors.New("invalid year: must be 2002 or later")
	}
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 1 || week > 53 {
		return 0, 0, errors.New("invalid week: must be 1-53")
	}
	return year, week, nil
}

// upstreamError maps source failures onto HTTP responses: an unreachable
// or failing source is a 502, never an empty 200.
func upstreamError(c echo.Context, err error) error {
	if errors.Is(err, boxoffice.ErrUpstream) || errors.Is(err, tmdb.ErrUpstream) {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "upstream source failure"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// storedFilm converts a repository row to its public shape.
func storedFilm(f repository.Film, figures []model.WeeklyFigure) StoredFilm {
	out := StoredFilm{
		Title:       f.Title,
		Distributor: f.Distributor,
		Figures:     figures,
	}
	if f.PosterPath.Valid {
		out.PosterPath = f.PosterPath.String
	}
	if f.Overview.Valid {
		out.Overview = f.Overview.String
	}
	if f.TrailerURL.Valid {
		out.TrailerURL = f.TrailerURL.String
	}
	if f.Rating.Valid {
		r := f.Rating.Float64
		out.Rating = &r
	}
	if f.ReleaseDate.Valid {
		out.ReleaseDate = f.ReleaseDate.String
	}
	return out
}
