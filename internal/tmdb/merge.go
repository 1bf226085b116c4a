package tmdb

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/tedjkamau/BFI/internal/model"
)

// maxReviews caps the review list regardless of how many entries the API
// returns.
const maxReviews = 10

// genreUnknown stands in for a genre id missing from the id→name table so
// the genre list keeps the same length as the source's id list.
const genreUnknown = "Unknown"

// Metadata looks up title and merges the genre table, search, details,
// videos, reviews and recommendations calls into one FilmMetadata.
//
// The top-ranked search candidate is accepted only when its normalized
// title key matches the requested title; otherwise the lookup fails closed
// with ErrNotFound rather than attach another film's metadata.  A failure
// in any dependent fetch aborts the whole lookup — there is no
// partial-record mode.
func (c *Client) Metadata(ctx context.Context, title string) (*model.FilmMetadata, error) {
	genres, err := c.GenreTable(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := c.Search(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	best := candidates[0]
	if model.TitleKey(best.Title) != model.TitleKey(title) {
		return nil, fmt.Errorf("%w: best match %q does not match %q", ErrNotFound, best.Title, title)
	}

	details, err := c.Details(ctx, best.ID)
	if err != nil {
		return nil, err
	}
	videos, err := c.Videos(ctx, best.ID)
	if err != nil {
		return nil, err
	}
	reviews, err := c.Reviews(ctx, best.ID)
	if err != nil {
		return nil, err
	}
	recs, err := c.Recommendations(ctx, best.ID)
	if err != nil {
		return nil, err
	}

	meta := &model.FilmMetadata{
		Title:           best.Title,
		ContentID:       best.ID,
		PosterPath:      best.PosterPath,
		BackdropPath:    best.BackdropPath,
		Overview:        best.Overview,
		TrailerURL:      trailerURL(videos),
		Genres:          mapGenres(best.GenreIDs, genres),
		Rating:          math.Round(best.VoteAverage*100) / 100,
		ReleaseDate:     best.ReleaseDate,
		Reviews:         reviewBodies(reviews),
		Recommendations: reduceRecommendations(recs),
	}
	if details.Runtime > 0 {
		runtime := details.Runtime
		meta.RuntimeMinutes = &runtime
	}
	if len(details.ProductionCompanies) > 0 {
		meta.OriginCountry = details.ProductionCompanies[0].OriginCountry
	}
	return meta, nil
}

// mapGenres resolves genre ids through the id→name table, substituting a
// placeholder for unknown ids instead of dropping them.
func mapGenres(ids []int, table map[int]string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := table[id]
		if !ok {
			name = genreUnknown
		}
		names = append(names, name)
	}
	return names
}

// trailerURL picks the first video whose type is "Trailer" and whose name
// contains "official" (case-insensitive).  There is deliberately no
// fallback to an unofficial trailer.
func trailerURL(videos []Video) string {
	for _, v := range videos {
		if v.Type == "Trailer" && strings.Contains(strings.ToLower(v.Name), "official") {
			return "https://www.youtube.com/watch?v=" + v.Key
		}
	}
	return model.TrailerNotAvailable
}

// reviewBodies keeps the first maxReviews review bodies in source order.
func reviewBodies(reviews []Review) []string {
	if len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}
	bodies := make([]string, 0, len(reviews))
	for _, r := range reviews {
		bodies = append(bodies, r.Content)
	}
	return bodies
}

// reduceRecommendations keeps the full recommendation sequence, each entry
// trimmed to what the presentation layer shows.
func reduceRecommendations(recs []SearchResult) []model.Recommendation {
	out := make([]model.Recommendation, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.Recommendation{
			Title:      r.Title,
			PosterPath: r.PosterPath,
			ContentID:  r.ID,
		})
	}
	return out
}
