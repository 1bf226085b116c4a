package model

// FilmListing is one entry in a weekend's top-N ranking.  Listings are
// built once per weekend query and are immutable; the DetailRef is the
// absolute URL used to fetch that film's full weekly history.
type FilmListing struct {
	Title     string `json:"title"`      // display title as printed in the ranking
	DetailRef string `json:"detail_ref"` // locator for the film's weekly table
}
