// Package repository contains data access logic for persisted films.  A
// Film row keeps the scraped identity (title, distributor) together with
// the metadata fields worth caching between sessions; the full weekly
// history lives in the weekly_figures table keyed by film id.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tedjkamau/BFI/internal/model"
)

// Film represents one persisted film.  TitleKey is the normalized join
// key (unique in the DB); Title keeps the display form.  Metadata columns
// are nullable because a film can be stored before the metadata source
// had an acceptable match for it.
type Film struct {
	ID          uint64          // films.id
	Title       string          // films.title
	TitleKey    string          // films.title_key (unique)
	Distributor string          // films.distributor
	ContentID   sql.NullInt64   // films.tmdb_id
	PosterPath  sql.NullString  // films.poster_path
	Overview    sql.NullString  // films.overview
	TrailerURL  sql.NullString  // films.trailer_url
	Rating      sql.NullFloat64 // films.rating
	ReleaseDate sql.NullString  // films.release_date
	CreatedAt   time.Time       // films.created_at
	UpdatedAt   time.Time       // films.updated_at
}

// SetMetadata copies the cacheable metadata fields onto the row.
func (f *Film) SetMetadata(m *model.FilmMetadata) {
	f.ContentID = sql.NullInt64{Int64: int64(m.ContentID), Valid: true}
	f.PosterPath = sql.NullString{String: m.PosterPath, Valid: m.PosterPath != ""}
	f.Overview = sql.NullString{String: m.Overview, Valid: m.Overview != ""}
	f.TrailerURL = sql.NullString{String: m.TrailerURL, Valid: true}
	f.Rating = sql.NullFloat64{Float64: m.Rating, Valid: true}
	f.ReleaseDate = sql.NullString{String: m.ReleaseDate, Valid: m.ReleaseDate != ""}
}

// FilmRepo manages persistence for films.
type FilmRepo struct {
	db *sql.DB
}

// NewFilmRepo constructs a FilmRepo with the given DB handle.
func NewFilmRepo(db *sql.DB) *FilmRepo {
	return &FilmRepo{db: db}
}

// DB exposes the underlying sql.DB so callers can begin transactions
// spanning films and their weekly figures.
func (r *FilmRepo) DB() *sql.DB {
	return r.db
}

// Upsert inserts the film or, when its title_key already exists, updates
// the mutable columns in place.  The row's ID is populated either way so
// the caller can attach weekly figures.
func (r *FilmRepo) Upsert(ctx context.Context, f *Film) error {
	const q = `INSERT INTO films (title, title_key, distributor, tmdb_id, poster_path, overview, trailer_url, rating, release_date)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
               ON DUPLICATE KEY UPDATE
                 title = VALUES(title), distributor = VALUES(distributor),
                 tmdb_id = VALUES(tmdb_id), poster_path = VALUES(poster_path),
                 overview = VALUES(overview), trailer_url = VALUES(trailer_url),
                 rating = VALUES(rating), release_date = VALUES(release_date),
                 updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, q,
		f.Title, f.TitleKey, f.Distributor,
		f.ContentID, f.PosterPath, f.Overview, f.TrailerURL, f.Rating, f.ReleaseDate,
	); err != nil {
		return err
	}
	// LastInsertId is unreliable across the duplicate-key path, so read the
	// id back by the unique key.
	const sel = `SELECT id, created_at, updated_at FROM films WHERE title_key = ?`
	return r.db.QueryRowContext(ctx, sel, f.TitleKey).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

// GetByTitleKey retrieves a film by its normalized title key.  It returns
// ErrFilmNotFound when no matching row exists.
func (r *FilmRepo) GetByTitleKey(ctx context.Context, key string) (*Film, error) {
	const q = `SELECT id, title, title_key, distributor, tmdb_id, poster_path, overview, trailer_url, rating, release_date, created_at, updated_at
               FROM films WHERE title_key = ?`
	var f Film
	err := r.db.QueryRowContext(ctx, q, key).Scan(
		&f.ID, &f.Title, &f.TitleKey, &f.Distributor,
		&f.ContentID, &f.PosterPath, &f.Overview, &f.TrailerURL, &f.Rating, &f.ReleaseDate,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListAll returns every persisted film ordered by title.  Used by the
// browse endpoint that lists what has been scraped so far.
func (r *FilmRepo) ListAll(ctx context.Context) ([]Film, error) {
	const q = `SELECT id, title, title_key, distributor, tmdb_id, poster_path, overview, trailer_url, rating, release_date, created_at, updated_at
               FROM films ORDER BY title ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Film
	for rows.Next() {
		var f Film
		if err := rows.Scan(
			&f.ID, &f.Title, &f.TitleKey, &f.Distributor,
			&f.ContentID, &f.PosterPath, &f.Overview, &f.TrailerURL, &f.Rating, &f.ReleaseDate,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
