package boxoffice

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Client fetches ranking and detail pages from the box-office source.
// Responses are parsed into goquery documents; all selector work lives in
// this package so callers only ever see typed records.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a Client for the given source base URL (no trailing
// slash required).
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Base returns the source base URL, used to resolve relative detail links.
func (c *Client) Base() string {
	return c.base
}

// WeekendRanking fetches the ranking page for the given year and ISO week.
// The source zero-pads week numbers below 10 in its URLs; %02d covers that.
// Only UK ("GB" area) figures are published in this table.
func (c *Client) WeekendRanking(ctx context.Context, year, week int) (*goquery.Document, error) {
	url := fmt.Sprintf("%s/weekend/%dW%02d/?area=GB", c.base, year, week)
	return c.fetchDocument(ctx, url)
}

// FilmDetail fetches a film's detail page and returns the raw cell rows of
// its weekly table (header stripped) together with the distributor label
// as printed, boilerplate included.  ErrNotFound is returned when the page
// has no weekly table.
func (c *Client) FilmDetail(ctx context.Context, ref string) ([][]string, string, error) {
	doc, err := c.fetchDocument(ctx, ref)
	if err != nil {
		return nil, "", err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, "", fmt.Errorf("%w: no weekly table at %s", ErrNotFound, ref)
	}
	var rows [][]string
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 { // header row
			return
		}
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})

	// The distributor sits in a labeled span pair elsewhere on the page:
	// a span reading "Distributor" followed by a span with the value.
	var distributor string
	doc.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) == "Distributor" {
			distributor = strings.TrimSpace(s.Next().Text())
			return false
		}
		return true
	})

	return rows, distributor, nil
}

// fetchDocument performs a GET and parses the body as HTML.  Any
// non-success status wraps ErrUpstream so callers surface the outage
// instead of reporting empty figures.
func (c *Client) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrUpstream, url, resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}
