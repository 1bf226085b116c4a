package boxoffice

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rankingBase = "https://boxoffice.example"

// rankingDoc builds a ranking page with one header row followed by the
// given data rows.
func rankingDoc(t *testing.T, dataRows ...string) *goquery.Document {
	t.Helper()
	html := "<html><body><table><tr><th>Rank</th><th>Release</th></tr>" +
		strings.Join(dataRows, "") + "</table></body></html>"
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func filmRow(title, href string) string {
	return fmt.Sprintf(`<tr><td>1</td><td><a href=%q>%s</a></td><td>$1,000</td></tr>`, href, title)
}

func TestExtractTopFilmsOrderAndResolution(t *testing.T) {
	doc := rankingDoc(t,
		filmRow("Deadpool & Wolverine", "/release/rl1/?ref_=bo_we_table_1"),
		filmRow("Despicable Me 4", "/release/rl2/"),
		filmRow("Twisters", "https://other.example/release/rl3/"),
	)

	listings := ExtractTopFilms(doc, rankingBase, 15)
	require.Len(t, listings, 3)
	assert.Equal(t, "Deadpool & Wolverine", listings[0].Title)
	assert.Equal(t, rankingBase+"/release/rl1/?ref_=bo_we_table_1", listings[0].DetailRef)
	assert.Equal(t, "Despicable Me 4", listings[1].Title)
	// Absolute hrefs pass through untouched.
	assert.Equal(t, "https://other.example/release/rl3/", listings[2].DetailRef)
}

func TestExtractTopFilmsHonorsMaxCount(t *testing.T) {
	rows := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		rows = append(rows, filmRow(fmt.Sprintf("Film %d", i), fmt.Sprintf("/release/rl%d/", i)))
	}
	listings := ExtractTopFilms(rankingDoc(t, rows...), rankingBase, 15)
	assert.Len(t, listings, 15)
	assert.Equal(t, "Film 1", listings[0].Title)
	assert.Equal(t, "Film 15", listings[14].Title)
}

func TestExtractTopFilmsFirstSeenTitleWins(t *testing.T) {
	doc := rankingDoc(t,
		filmRow("Alien: Romulus", "/release/rl1/"),
		filmRow("Alien: Romulus", "/release/rl-rerelease/"),
		filmRow("Longlegs", "/release/rl2/"),
	)
	listings := ExtractTopFilms(doc, rankingBase, 15)
	require.Len(t, listings, 2)
	assert.Equal(t, rankingBase+"/release/rl1/", listings[0].DetailRef)
	assert.Equal(t, "Longlegs", listings[1].Title)
}

func TestExtractTopFilmsSkipsRowsWithoutTitleOrLink(t *testing.T) {
	doc := rankingDoc(t,
		filmRow("It Ends With Us", "/release/rl1/"),
		`<tr><td>2</td><td>No link here</td><td>$500</td></tr>`,
		`<tr><td>3</td><td><a href="/release/rl3/"></a></td><td>$400</td></tr>`,
	)
	listings := ExtractTopFilms(doc, rankingBase, 15)
	require.Len(t, listings, 1)
	assert.Equal(t, "It Ends With Us", listings[0].Title)
}

func TestExtractTopFilmsEmptyTable(t *testing.T) {
	assert.Empty(t, ExtractTopFilms(rankingDoc(t), rankingBase, 15))
}
