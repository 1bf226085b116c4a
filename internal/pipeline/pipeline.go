// Package pipeline combines the scraping and metadata clients into the
// fetch list → fetch detail → fetch metadata → merge flow, producing the
// CombinedRecord consumed by the presentation layer and by the background
// refresh consumer.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/tedjkamau/BFI/internal/boxoffice"
	"github.com/tedjkamau/BFI/internal/model"
	"github.com/tedjkamau/BFI/internal/repository"
	"github.com/tedjkamau/BFI/internal/tmdb"
)

// ErrFilmNotListed is returned when a requested title does not appear in
// the weekend's ranking.
var ErrFilmNotListed = errors.New("film not in weekend ranking")

// Pipeline wires the two upstream clients and, when persistence is
// configured, the MySQL repositories.  Films and Figures may be nil for a
// browse-only pipeline; RefreshWeekend requires both.
type Pipeline struct {
	BoxOffice *boxoffice.Client
	Metadata  *tmdb.Client
	Films     *repository.FilmRepo
	Figures   *repository.FiguresRepo
	Rate      decimal.Decimal // exchange rate into the target currency
	MaxFilms  int             // ranking rows considered per weekend
}

// TopFilms returns the weekend's ranking as an ordered listing, at most
// MaxFilms entries, first-seen title winning on duplicates.
func (p *Pipeline) TopFilms(ctx context.Context, year, week int) ([]model.FilmListing, error) {
	doc, err := p.BoxOffice.WeekendRanking(ctx, year, week)
	if err != nil {
		return nil, err
	}
	return boxoffice.ExtractTopFilms(doc, p.BoxOffice.Base(), p.MaxFilms), nil
}

// FilmHistory fetches and parses one film's full weekly table.  It returns
// the figures in chronological order plus the cleaned distributor label.
func (p *Pipeline) FilmHistory(ctx context.Context, ref string) ([]model.WeeklyFigure, string, error) {
	rows, distributor, err := p.BoxOffice.FilmDetail(ctx, ref)
	if err != nil {
		return nil, "", err
	}
	figures, dropped := boxoffice.ParseWeeklyFigures(rows, distributor, p.Rate)
	if dropped > 0 {
		log.Printf("pipeline: dropped %d malformed weekly rows for %s", dropped, ref)
	}
	distributor = boxoffice.StripDistributorBoilerplate(distributor)
	return figures, distributor, nil
}

// Combined assembles the full record for one ranked film: its weekly
// history joined with its metadata under fetch-then-join semantics.  A
// metadata miss (no acceptable candidate) leaves Metadata nil; a metadata
// upstream failure aborts the whole call so the caller never sees a
// partially populated record presented as complete.
func (p *Pipeline) Combined(ctx context.Context, year, week int, title string) (*model.CombinedRecord, error) {
	listings, err := p.TopFilms(ctx, year, week)
	if err != nil {
		return nil, err
	}
	listing, ok := findListing(listings, title)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %dW%02d", ErrFilmNotListed, title, year, week)
	}

	figures, _, err := p.FilmHistory(ctx, listing.DetailRef)
	if err != nil {
		return nil, err
	}

	record := &model.CombinedRecord{Title: listing.Title, Figures: figures}
	meta, err := p.Metadata.Metadata(ctx, listing.Title)
	switch {
	case err == nil:
		record.Metadata = meta
	case errors.Is(err, tmdb.ErrNotFound):
		log.Printf("pipeline: no metadata for %q: %v", listing.Title, err)
	default:
		return nil, err
	}
	return record, nil
}

// RefreshWeekend scrapes every ranked film of the given weekend, merges
// metadata where available and replaces the persisted history for each.
// One film failing does not abort the rest; the number of films stored is
// returned together with the first error encountered, if any.
func (p *Pipeline) RefreshWeekend(ctx context.Context, year, week int) (int, error) {
	if p.Films == nil || p.Figures == nil {
		return 0, errors.New("refresh requires persistence repositories")
	}
	listings, err := p.TopFilms(ctx, year, week)
	if err != nil {
		return 0, err
	}

	stored := 0
	var firstErr error
	for _, listing := range listings {
		if err := p.refreshFilm(ctx, listing); err != nil {
			log.Printf("pipeline: refresh %q failed: %v", listing.Title, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		stored++
	}
	return stored, firstErr
}

// refreshFilm persists one listing's history and whatever metadata could
// be attached.
func (p *Pipeline) refreshFilm(ctx context.Context, listing model.FilmListing) error {
	figures, distributor, err := p.FilmHistory(ctx, listing.DetailRef)
	if err != nil {
		return err
	}

	film := &repository.Film{
		Title:       listing.Title,
		TitleKey:    model.TitleKey(listing.Title),
		Distributor: distributor,
	}
	meta, err := p.Metadata.Metadata(ctx, listing.Title)
	switch {
	case err == nil:
		film.SetMetadata(meta)
	case errors.Is(err, tmdb.ErrNotFound):
		// persisted without metadata; a later refresh may fill it in
	default:
		return err
	}

	if err := p.Films.Upsert(ctx, film); err != nil {
		return err
	}
	return p.Figures.ReplaceHistory(ctx, film.ID, figures)
}

// findListing matches a requested title against the ranking by normalized
// key so casing and punctuation differences do not miss.
func findListing(listings []model.FilmListing, title string) (model.FilmListing, bool) {
	want := model.TitleKey(title)
	for _, l := range listings {
		if model.TitleKey(l.Title) == want {
			return l, true
		}
	}
	return model.FilmListing{}, false
}
