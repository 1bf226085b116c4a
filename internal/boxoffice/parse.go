package boxoffice

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tedjkamau/BFI/internal/currency"
	"github.com/tedjkamau/BFI/internal/model"
)

// distributorBoilerplate is the suffix the detail page glues onto the
// distributor name.  Removal is a literal substring replace, no regex;
// applying it twice is a no-op.
const distributorBoilerplate = ".See full company information"

// Column order of the weekly table.  The trailing marker column after
// colWeeks carries no information and is dropped.
const (
	colDate = iota
	colRank
	colGross
	colGrossChange
	colTheaters
	colTheaterChange
	colAverage
	colToDate
	colWeeks

	weeklyColumns = 9
)

// StripDistributorBoilerplate removes the source's "See full company
// information" suffix from a distributor label.
func StripDistributorBoilerplate(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, distributorBoilerplate, ""))
}

// ParseWeeklyFigures converts the raw cell rows of one film's weekly table
// into WeeklyFigure records, preserving input order (earliest weekend
// first).  The caller strips the header row.  A malformed row (missing
// cells, non-numeric rank, empty date) is logged and dropped without
// failing the rest of the sequence; the second return value is the number
// of dropped rows.  An empty input yields an empty output and zero drops.
//
// The distributor label is attached uniformly to every record after
// boilerplate stripping — one distributor per film, not per week.
func ParseWeeklyFigures(rows [][]string, distributor string, rate decimal.Decimal) ([]model.WeeklyFigure, int) {
	distributor = StripDistributorBoilerplate(distributor)
	figures := make([]model.WeeklyFigure, 0, len(rows))
	dropped := 0
	for i, cells := range rows {
		fig, err := parseWeeklyRow(cells, rate)
		if err != nil {
			log.Printf("boxoffice: dropping weekly row %d: %v", i, err)
			dropped++
			continue
		}
		fig.Distributor = distributor
		figures = append(figures, fig)
	}
	return figures, dropped
}

// parseWeeklyRow parses a single row of the weekly table.  Date and rank
// are required; every other column degrades to "absent" on bad input.
func parseWeeklyRow(cells []string, rate decimal.Decimal) (model.WeeklyFigure, error) {
	if len(cells) < weeklyColumns {
		return model.WeeklyFigure{}, fmt.Errorf("%w: got %d cells, want %d", ErrMalformedRow, len(cells), weeklyColumns)
	}
	date := strings.TrimSpace(cells[colDate])
	if date == "" {
		return model.WeeklyFigure{}, fmt.Errorf("%w: empty date", ErrMalformedRow)
	}
	rank, err := strconv.Atoi(strings.TrimSpace(cells[colRank]))
	if err != nil {
		return model.WeeklyFigure{}, fmt.Errorf("%w: rank %q", ErrMalformedRow, cells[colRank])
	}
	return model.WeeklyFigure{
		Date:              date,
		Rank:              rank,
		WeekendGross:      parseMoney(cells[colGross], rate),
		GrossChange:       parseChangeFraction(cells[colGrossChange]),
		Theaters:          parseOptionalInt(cells[colTheaters]),
		TheaterChange:     parseOptionalInt(cells[colTheaterChange]),
		AveragePerTheater: parseMoney(cells[colAverage], rate),
		CumulativeGross:   parseMoney(cells[colToDate], rate),
		WeeksSinceRelease: parseOptionalInt(cells[colWeeks]),
	}, nil
}

// parseMoney runs a cell through the currency normalizer; an unparseable
// cell becomes nil, never zero.
func parseMoney(raw string, rate decimal.Decimal) *decimal.Decimal {
	amount, err := currency.Normalize(raw, rate)
	if err != nil {
		return nil
	}
	return &amount
}

// parseChangeFraction parses a signed percentage cell such as "+52.3%" or
// "-18%" into a fraction (0.523, -0.18).  Blank cells and placeholder text
// (the source prints a dash for the first week) map to absent.
func parseChangeFraction(raw string) *float64 {
	s := strings.TrimSuffix(strings.TrimSpace(raw), "%")
	if s == "" || s == "-" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(s, "+"), 64)
	if err != nil {
		return nil
	}
	frac := v / 100
	return &frac
}

// parseOptionalInt parses an integer cell, tolerating thousands separators
// and an explicit sign.  Blank and placeholder cells map to absent.
func parseOptionalInt(raw string) *int {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" || s == "-" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
