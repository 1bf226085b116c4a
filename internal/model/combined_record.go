package model

// CombinedRecord is the unit handed to the presentation layer: a ranked
// film's display title, its full weekly history and its metadata, joined
// by normalized title key.  Metadata is nil when the metadata source had
// no acceptable match; consumers must render a "no metadata available"
// state rather than treat that as a failure.
type CombinedRecord struct {
	Title    string         `json:"title"`
	Figures  []WeeklyFigure `json:"figures"`
	Metadata *FilmMetadata  `json:"metadata,omitempty"`
}
