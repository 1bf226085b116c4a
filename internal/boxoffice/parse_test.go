package boxoffice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRate = decimal.RequireFromString("0.78")

// weeklyRow builds a well-formed raw row with the trailing marker column
// the source always appends.
func weeklyRow(date, rank, gross, grossChange, theaters, theaterChange, average, toDate, weeks string) []string {
	return []string{date, rank, gross, grossChange, theaters, theaterChange, average, toDate, weeks, "false"}
}

func TestParseWeeklyFiguresFullTable(t *testing.T) {
	rows := [][]string{
		weeklyRow("Jul 26-28", "1", "$38,500,000", "-", "601", "-", "$64,059", "$38,500,000", "1"),
		weeklyRow("Aug 2-4", "1", "$21,300,000", "-44.7%", "612", "+11", "$34,803", "$59,800,000", "2"),
		weeklyRow("Aug 9-11", "2", "$10,900,000", "-48.8%", "598", "-14", "$18,227", "$70,700,000", "3"),
	}

	figures, dropped := ParseWeeklyFigures(rows, "Walt Disney Studios Motion Pictures.See full company information", testRate)
	require.Len(t, figures, 3)
	assert.Zero(t, dropped)

	first := figures[0]
	assert.Equal(t, "Jul 26-28", first.Date)
	assert.Equal(t, 1, first.Rank)
	require.NotNil(t, first.WeekendGross)
	assert.True(t, first.WeekendGross.Equal(decimal.RequireFromString("30030000")), "got %s", first.WeekendGross)
	assert.Nil(t, first.GrossChange, "placeholder dash must map to absent, not zero")
	assert.Nil(t, first.TheaterChange)
	require.NotNil(t, first.Theaters)
	assert.Equal(t, 601, *first.Theaters)

	second := figures[1]
	require.NotNil(t, second.GrossChange)
	assert.InDelta(t, -0.447, *second.GrossChange, 1e-9)
	require.NotNil(t, second.TheaterChange)
	assert.Equal(t, 11, *second.TheaterChange)

	// One distributor per film, boilerplate stripped, repeated on every row.
	for _, fig := range figures {
		assert.Equal(t, "Walt Disney Studios Motion Pictures", fig.Distributor)
	}

	// Chronological order preserved, weekends since release increasing.
	for i, fig := range figures {
		require.NotNil(t, fig.WeeksSinceRelease)
		assert.Equal(t, i+1, *fig.WeeksSinceRelease)
	}
}

func TestParseWeeklyFiguresDropsMalformedRows(t *testing.T) {
	rows := [][]string{
		weeklyRow("Aug 2-4", "1", "$21,300,000", "-44.7%", "612", "+11", "$34,803", "$59,800,000", "2"),
		weeklyRow("Aug 9-11", "not-a-rank", "$10,900,000", "-48.8%", "598", "-14", "$18,227", "$70,700,000", "3"),
		{"too", "short"},
		weeklyRow("", "3", "$5,000,000", "-54.1%", "540", "-58", "$9,259", "$75,700,000", "4"),
		weeklyRow("Aug 23-25", "4", "$2,700,000", "-46.0%", "489", "-51", "$5,521", "$78,400,000", "5"),
	}

	figures, dropped := ParseWeeklyFigures(rows, "StudioCanal", testRate)
	assert.Len(t, figures, 2)
	assert.Equal(t, 3, dropped)
	assert.Equal(t, "Aug 2-4", figures[0].Date)
	assert.Equal(t, "Aug 23-25", figures[1].Date)
}

func TestParseWeeklyFiguresOptionalFieldsDegradeToAbsent(t *testing.T) {
	rows := [][]string{
		weeklyRow("Aug 2-4", "7", "n/a", "<0.1%", "", "-", "n/a", "n/a", ""),
	}

	figures, dropped := ParseWeeklyFigures(rows, "", testRate)
	require.Len(t, figures, 1)
	assert.Zero(t, dropped)

	fig := figures[0]
	assert.Nil(t, fig.WeekendGross, "unparseable money must be unknown, not zero")
	assert.Nil(t, fig.GrossChange)
	assert.Nil(t, fig.Theaters)
	assert.Nil(t, fig.TheaterChange)
	assert.Nil(t, fig.AveragePerTheater)
	assert.Nil(t, fig.CumulativeGross)
	assert.Nil(t, fig.WeeksSinceRelease)
	assert.Empty(t, fig.Distributor)
}

func TestParseWeeklyFiguresEmptyInput(t *testing.T) {
	figures, dropped := ParseWeeklyFigures(nil, "Lionsgate", testRate)
	assert.Empty(t, figures)
	assert.Zero(t, dropped)
}

func TestStripDistributorBoilerplateIdempotent(t *testing.T) {
	raw := "Universal Pictures International.See full company information"
	once := StripDistributorBoilerplate(raw)
	assert.Equal(t, "Universal Pictures International", once)
	assert.Equal(t, once, StripDistributorBoilerplate(once))

	// Exact literal only: other suffixes are left untouched.
	assert.Equal(t, "Universal.see full company information",
		StripDistributorBoilerplate("Universal.see full company information"))
}
