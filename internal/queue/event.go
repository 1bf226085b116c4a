package queue

// WeekendRefreshEvent is published when an operator requests that a
// weekend's figures be re-scraped.  The consumer fetches the ranking,
// every ranked film's history and metadata, and replaces the persisted
// records.
type WeekendRefreshEvent struct {
	Year        int    `json:"year"`
	Week        int    `json:"week"` // ISO week number, 1-53
	RequestedBy string `json:"requested_by"`
	RequestedAt string `json:"requested_at"`
}
