package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned when a search yields zero acceptable candidates.
// It is an explicit "no metadata available" result, not a failure.
var ErrNotFound = errors.New("no matching film")

// ErrUpstream wraps a non-success status from the metadata API.  Any one
// failed call aborts the whole metadata fetch for that film.
var ErrUpstream = errors.New("metadata upstream failure")

// Client performs key-authenticated read-only calls against the TMDb API.
type Client struct {
	base   string
	apiKey string
	http   *http.Client
}

// NewClient builds a Client for the given API base URL and key.  The key
// is required configuration; config.Load refuses to start without it.
func NewClient(base, apiKey string) *Client {
	return &Client{
		base:   base,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

// get performs one API request and unmarshals the JSON body into result.
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	u := c.base + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", ErrUpstream, path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response for %s: %w", path, err)
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUpstream, path, err)
	}
	return nil
}

// GenreTable fetches the movie genre list as an id→name map.
func (c *Client) GenreTable(ctx context.Context) (map[int]string, error) {
	var resp genreListResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch genre table: %w", err)
	}
	table := make(map[int]string, len(resp.Genres))
	for _, g := range resp.Genres {
		table[g.ID] = g.Name
	}
	return table, nil
}

// Search returns candidate films for a title query in the API's relevance
// order.
func (c *Client) Search(ctx context.Context, title string) ([]SearchResult, error) {
	q := url.Values{}
	q.Set("query", title)
	var resp searchResponse
	if err := c.get(ctx, "/search/movie", q, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", title, err)
	}
	return resp.Results, nil
}

// Details fetches the detail record for one film.
func (c *Client) Details(ctx context.Context, id int) (*MovieDetails, error) {
	var d MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), nil, &d); err != nil {
		return nil, fmt.Errorf("fetch details for %d: %w", id, err)
	}
	return &d, nil
}

// Videos fetches the attached video entries for one film.
func (c *Client) Videos(ctx context.Context, id int) ([]Video, error) {
	var resp videosResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", id), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch videos for %d: %w", id, err)
	}
	return resp.Results, nil
}

// Reviews fetches the attached review entries for one film.
func (c *Client) Reviews(ctx context.Context, id int) ([]Review, error) {
	var resp reviewsResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/reviews", id), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch reviews for %d: %w", id, err)
	}
	return resp.Results, nil
}

// Recommendations fetches the related-film entries for one film.
func (c *Client) Recommendations(ctx context.Context, id int) ([]SearchResult, error) {
	var resp recommendationsResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/recommendations", id), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch recommendations for %d: %w", id, err)
	}
	return resp.Results, nil
}
