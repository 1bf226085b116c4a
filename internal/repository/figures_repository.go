package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/tedjkamau/BFI/internal/model"
)

// FiguresRepo manages the weekly_figures table.  A film's history is
// replaced wholesale on every refresh: the source republishes the full
// table each week, so row-level reconciliation would only invite drift.
type FiguresRepo struct {
	db *sql.DB
}

// NewFiguresRepo constructs a FiguresRepo with the given DB handle.
func NewFiguresRepo(db *sql.DB) *FiguresRepo {
	return &FiguresRepo{db: db}
}

// ReplaceHistory deletes a film's stored weekly rows and inserts the given
// sequence in order inside one transaction, preserving the chronological
// position of each row via the position column.
func (r *FiguresRepo) ReplaceHistory(ctx context.Context, filmID uint64, figures []model.WeeklyFigure) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM weekly_figures WHERE film_id = ?`, filmID); err != nil {
		return err
	}
	const q = `INSERT INTO weekly_figures
               (film_id, position, week_label, rank_position, weekend_gross, gross_change, theaters, theater_change, average_gross, cumulative_gross, weeks_since_release)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, fig := range figures {
		if _, err = tx.ExecContext(ctx, q,
			filmID, i, fig.Date, fig.Rank,
			nullMoney(fig.WeekendGross), nullFloat(fig.GrossChange),
			nullInt(fig.Theaters), nullInt(fig.TheaterChange),
			nullMoney(fig.AveragePerTheater), nullMoney(fig.CumulativeGross),
			nullInt(fig.WeeksSinceRelease),
		); err != nil {
			return err
		}
	}
	return nil
}

// ListByFilm returns a film's stored history in chronological order, with
// the film's distributor label attached to every row the same way the
// parser does for freshly scraped data.
func (r *FiguresRepo) ListByFilm(ctx context.Context, filmID uint64, distributor string) ([]model.WeeklyFigure, error) {
	const q = `SELECT week_label, rank_position, weekend_gross, gross_change, theaters, theater_change, average_gross, cumulative_gross, weeks_since_release
               FROM weekly_figures WHERE film_id = ? ORDER BY position ASC`
	rows, err := r.db.QueryContext(ctx, q, filmID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.WeeklyFigure
	for rows.Next() {
		var (
			fig                   model.WeeklyFigure
			gross, average, total sql.NullString
			change                sql.NullFloat64
			theaters, delta, wks  sql.NullInt64
		)
		if err := rows.Scan(&fig.Date, &fig.Rank, &gross, &change, &theaters, &delta, &average, &total, &wks); err != nil {
			return nil, err
		}
		fig.WeekendGross = moneyPtr(gross)
		fig.AveragePerTheater = moneyPtr(average)
		fig.CumulativeGross = moneyPtr(total)
		if change.Valid {
			v := change.Float64
			fig.GrossChange = &v
		}
		fig.Theaters = intPtr(theaters)
		fig.TheaterChange = intPtr(delta)
		fig.WeeksSinceRelease = intPtr(wks)
		fig.Distributor = distributor
		result = append(result, fig)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Conversion helpers between the optional model fields and their nullable
// DB representations.  Money travels as strings so the DECIMAL columns
// never pass through binary floating point.

func nullMoney(d *decimal.Decimal) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

func moneyPtr(s sql.NullString) *decimal.Decimal {
	if !s.Valid {
		return nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return nil
	}
	return &d
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
