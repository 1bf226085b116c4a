package boxoffice

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tedjkamau/BFI/internal/model"
)

// ExtractTopFilms reads the first table of a weekend ranking page and
// returns at most maxCount listings in ranking order (rank 1 first).  Each
// data row contributes its first anchor's text as the title and its href,
// resolved against base when relative, as the detail reference.  Rows
// missing either are skipped.  Re-releases sometimes appear twice under
// one title; the first occurrence wins and later duplicates are discarded.
func ExtractTopFilms(doc *goquery.Document, base string, maxCount int) []model.FilmListing {
	listings := make([]model.FilmListing, 0, maxCount)
	seen := make(map[string]bool, maxCount)

	rows := doc.Find("table").First().Find("tr")
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 { // header row
			return true
		}
		if i > maxCount {
			return false
		}
		link := row.Find("a").First()
		title := strings.TrimSpace(link.Text())
		href, ok := link.Attr("href")
		if title == "" || !ok || href == "" {
			return true
		}
		if seen[title] {
			return true
		}
		seen[title] = true
		listings = append(listings, model.FilmListing{
			Title:     title,
			DetailRef: resolveRef(base, href),
		})
		return true
	})
	return listings
}

// resolveRef turns a relative href into an absolute detail reference.
func resolveRef(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(href, "/")
}
