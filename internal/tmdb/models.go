// Package tmdb talks to the TMDb REST API and merges its responses into a
// single FilmMetadata record per film.
package tmdb

// Genre is one entry of the id→name genre table.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

// SearchResult is one candidate returned by the title search, ranked by
// the API's own relevance ordering.  The same shape is reused by the
// recommendations endpoint.
type SearchResult struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// MovieDetails carries the handful of detail fields not present on the
// search result.
type MovieDetails struct {
	Runtime             int `json:"runtime"`
	ProductionCompanies []struct {
		OriginCountry string `json:"origin_country"`
	} `json:"production_companies"`
}

// Video is one attached video entry (trailers, teasers, clips).
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type videosResponse struct {
	Results []Video `json:"results"`
}

// Review is one attached review entry; only the body is consumed.
type Review struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type reviewsResponse struct {
	Results []Review `json:"results"`
}

type recommendationsResponse struct {
	Results []SearchResult `json:"results"`
}
