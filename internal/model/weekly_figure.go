package model

import "github.com/shopspring/decimal"

// WeeklyFigure represents one film's reported performance for a single
// Friday-Sunday weekend, with all monetary amounts already converted into
// the target currency.  Optional columns that the source leaves blank or
// fills with a placeholder dash are carried as nil pointers rather than
// zero values so that "unknown" never reads as "made no money".
//
// Fields:
//  Date              – week label as printed by the source (e.g. "Aug 9-11").
//  Rank              – chart position that weekend, always >= 1.
//  WeekendGross      – weekend gross in the target currency, nil if the
//                      source cell could not be parsed.
//  GrossChange       – signed fraction vs. the prior weekend (0.12 = +12%),
//                      nil for the first week or a placeholder cell.
//  Theaters          – number of theaters showing the film, nil if blank.
//  TheaterChange     – signed delta in theater count, nil if blank.
//  AveragePerTheater – per-theater average gross, nil if unparseable.
//  CumulativeGross   – running total gross to date, nil if unparseable.
//  WeeksSinceRelease – weekends since release, nil if blank.
//  Distributor       – distributing company, identical across one film's
//                      whole sequence; may be empty.
type WeeklyFigure struct {
	Date              string           `json:"date"`
	Rank              int              `json:"rank"`
	WeekendGross      *decimal.Decimal `json:"weekend_gross,omitempty"`
	GrossChange       *float64         `json:"gross_change,omitempty"`
	Theaters          *int             `json:"theaters,omitempty"`
	TheaterChange     *int             `json:"theater_change,omitempty"`
	AveragePerTheater *decimal.Decimal `json:"average_per_theater,omitempty"`
	CumulativeGross   *decimal.Decimal `json:"cumulative_gross,omitempty"`
	WeeksSinceRelease *int             `json:"weekends_since_release,omitempty"`
	Distributor       string           `json:"distributor,omitempty"`
}
