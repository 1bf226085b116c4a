package model

// TrailerNotAvailable is the explicit marker used when no official trailer
// exists among a film's video entries.  Callers should render it as-is
// instead of treating it as a URL.
const TrailerNotAvailable = "not available"

// Recommendation is one related-film suggestion attached to a metadata
// record, reduced to the fields the presentation layer needs.
type Recommendation struct {
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
	ContentID  int    `json:"content_id"`
}

// FilmMetadata holds the descriptive and editorial data fetched from the
// metadata API for a single film.  It is assembled in one shot from the
// genre table, search, details, videos, reviews and recommendations calls;
// a partially populated record is never produced.
//
// Fields:
//  Title           – title as known to the metadata source.
//  ContentID       – the source's identifier for the film.
//  PosterPath      – relative poster image path, may be empty.
//  BackdropPath    – relative backdrop image path, may be empty.
//  Overview        – synopsis text.
//  TrailerURL      – YouTube link to the first official trailer, or
//                    TrailerNotAvailable.
//  Genres          – genre names in source order; unrecognised genre ids
//                    appear as "Unknown" so list length stays stable.
//  RuntimeMinutes  – runtime, nil when the source reports none.
//  Rating          – average vote on a 0-10 scale, two decimal places.
//  ReleaseDate     – release date string ("2006-01-02"), may be empty.
//  OriginCountry   – first production company's origin country, may be empty.
//  Reviews         – up to 10 review bodies in source order.
//  Recommendations – related films in source order.
type FilmMetadata struct {
	Title           string           `json:"title"`
	ContentID       int              `json:"content_id"`
	PosterPath      string           `json:"poster_path,omitempty"`
	BackdropPath    string           `json:"backdrop_path,omitempty"`
	Overview        string           `json:"overview,omitempty"`
	TrailerURL      string           `json:"trailer_url"`
	Genres          []string         `json:"genres"`
	RuntimeMinutes  *int             `json:"runtime_minutes,omitempty"`
	Rating          float64          `json:"rating"`
	ReleaseDate     string           `json:"release_date,omitempty"`
	OriginCountry   string           `json:"origin_country,omitempty"`
	Reviews         []string         `json:"reviews"`
	Recommendations []Recommendation `json:"recommendations"`
}
