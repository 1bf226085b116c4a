package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tedjkamau/BFI/internal/model"
)

// fakeAPI is a configurable stand-in for the metadata API.  Endpoints not
// overridden serve an empty-but-valid response.
type fakeAPI struct {
	genres  []Genre
	search  []SearchResult
	details MovieDetails
	videos  []Video
	reviews []Review
	recs    []SearchResult
	fail    map[string]int // path suffix -> status to force
}

func (f *fakeAPI) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	serve := func(pattern string, payload func() interface{}) {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("api_key") == "" {
				http.Error(w, "missing api key", http.StatusUnauthorized)
				return
			}
			for suffix, status := range f.fail {
				if strings.HasSuffix(r.URL.Path, suffix) {
					http.Error(w, "forced failure", status)
					return
				}
			}
			_ = json.NewEncoder(w).Encode(payload())
		})
	}
	serve("/genre/movie/list", func() interface{} { return genreListResponse{Genres: f.genres} })
	serve("/search/movie", func() interface{} { return searchResponse{Results: f.search} })
	serve("/movie/42", func() interface{} { return f.details })
	serve("/movie/42/videos", func() interface{} { return videosResponse{Results: f.videos} })
	serve("/movie/42/reviews", func() interface{} { return reviewsResponse{Results: f.reviews} })
	serve("/movie/42/recommendations", func() interface{} { return recommendationsResponse{Results: f.recs} })
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func matchingCandidate() SearchResult {
	return SearchResult{
		ID:           42,
		Title:        "Deadpool & Wolverine",
		PosterPath:   "/poster.jpg",
		BackdropPath: "/backdrop.jpg",
		Overview:     "A reluctant team-up.",
		GenreIDs:     []int{28, 999},
		VoteAverage:  7.714,
		ReleaseDate:  "2024-07-24",
	}
}

func TestMetadataMergesAllFetches(t *testing.T) {
	api := &fakeAPI{
		genres: []Genre{{ID: 28, Name: "Action"}},
		search: []SearchResult{matchingCandidate()},
		details: MovieDetails{
			Runtime: 128,
			ProductionCompanies: []struct {
				OriginCountry string `json:"origin_country"`
			}{{OriginCountry: "US"}},
		},
		videos: []Video{
			{Key: "teaser1", Name: "Official Teaser", Type: "Teaser"},
			{Key: "fan1", Name: "Fan Trailer", Type: "Trailer"},
			{Key: "tr1", Name: "Official Trailer", Type: "Trailer"},
		},
		reviews: manyReviews(25),
		recs:    []SearchResult{{ID: 7, Title: "Logan", PosterPath: "/logan.jpg"}},
	}
	c := NewClient(api.server(t).URL, "test-key")

	meta, err := c.Metadata(context.Background(), "Deadpool & Wolverine")
	require.NoError(t, err)

	assert.Equal(t, 42, meta.ContentID)
	assert.Equal(t, []string{"Action", "Unknown"}, meta.Genres, "unknown genre ids keep their slot")
	assert.Equal(t, "https://www.youtube.com/watch?v=tr1", meta.TrailerURL,
		"an official teaser or a fan trailer must not be selected")
	assert.Len(t, meta.Reviews, 10)
	assert.Equal(t, "review 1", meta.Reviews[0])
	require.NotNil(t, meta.RuntimeMinutes)
	assert.Equal(t, 128, *meta.RuntimeMinutes)
	assert.Equal(t, 7.71, meta.Rating)
	assert.Equal(t, "US", meta.OriginCountry)
	require.Len(t, meta.Recommendations, 1)
	assert.Equal(t, model.Recommendation{Title: "Logan", PosterPath: "/logan.jpg", ContentID: 7}, meta.Recommendations[0])
}

func TestMetadataNoCandidatesIsNotFound(t *testing.T) {
	api := &fakeAPI{genres: []Genre{{ID: 28, Name: "Action"}}}
	c := NewClient(api.server(t).URL, "test-key")

	_, err := c.Metadata(context.Background(), "Completely Unknown Film")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMetadataFailsClosedOnTitleMismatch(t *testing.T) {
	wrong := matchingCandidate()
	wrong.Title = "Deadpool 2"
	api := &fakeAPI{
		genres: []Genre{{ID: 28, Name: "Action"}},
		search: []SearchResult{wrong},
	}
	c := NewClient(api.server(t).URL, "test-key")

	_, err := c.Metadata(context.Background(), "Deadpool & Wolverine")
	assert.ErrorIs(t, err, ErrNotFound, "a wrong film's metadata must never be attached")
}

func TestMetadataTitleMatchIgnoresCaseAndPunctuation(t *testing.T) {
	api := &fakeAPI{
		genres: []Genre{{ID: 28, Name: "Action"}},
		search: []SearchResult{matchingCandidate()},
	}
	c := NewClient(api.server(t).URL, "test-key")

	meta, err := c.Metadata(context.Background(), "DEADPOOL AND... nope")
	assert.Error(t, err)
	assert.Nil(t, meta)

	meta, err = c.Metadata(context.Background(), "deadpool & wolverine")
	require.NoError(t, err)
	assert.Equal(t, "Deadpool & Wolverine", meta.Title)
}

func TestMetadataNoOfficialTrailer(t *testing.T) {
	api := &fakeAPI{
		genres: []Genre{{ID: 28, Name: "Action"}},
		search: []SearchResult{matchingCandidate()},
		videos: []Video{
			{Key: "t1", Name: "Final Trailer", Type: "Trailer"},
			{Key: "t2", Name: "Official Clip", Type: "Clip"},
		},
	}
	c := NewClient(api.server(t).URL, "test-key")

	meta, err := c.Metadata(context.Background(), "Deadpool & Wolverine")
	require.NoError(t, err)
	assert.Equal(t, model.TrailerNotAvailable, meta.TrailerURL)
}

func TestMetadataAbortsOnAnyFailedFetch(t *testing.T) {
	api := &fakeAPI{
		genres: []Genre{{ID: 28, Name: "Action"}},
		search: []SearchResult{matchingCandidate()},
		fail:   map[string]int{"/reviews": http.StatusInternalServerError},
	}
	c := NewClient(api.server(t).URL, "test-key")

	meta, err := c.Metadata(context.Background(), "Deadpool & Wolverine")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Nil(t, meta, "no partially populated record")
}

func TestMetadataZeroRuntimeIsAbsent(t *testing.T) {
	api := &fakeAPI{
		genres: []Genre{{ID: 28, Name: "Action"}},
		search: []SearchResult{matchingCandidate()},
	}
	c := NewClient(api.server(t).URL, "test-key")

	meta, err := c.Metadata(context.Background(), "Deadpool & Wolverine")
	require.NoError(t, err)
	assert.Nil(t, meta.RuntimeMinutes)
	assert.Empty(t, meta.OriginCountry)
}

func manyReviews(n int) []Review {
	reviews := make([]Review, 0, n)
	for i := 1; i <= n; i++ {
		reviews = append(reviews, Review{Author: fmt.Sprintf("author %d", i), Content: fmt.Sprintf("review %d", i)})
	}
	return reviews
}
