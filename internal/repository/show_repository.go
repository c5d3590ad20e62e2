// Package repository contains data access logic for Show domain operations.
// A show links exactly one venue and one artist at a start time through
// direct foreign keys.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/model"
)

// ErrShowNotFound indicates that a show was not located in the DB.
var ErrShowNotFound = errors.New("show not found")

// ShowListRow is a show joined with its venue and artist names, used by the
// show listing page.
type ShowListRow struct {
	ID              uint64
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

const showColumns = `id, venue_id, artist_id, start_time, created_at`

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

func scanShow(s rowScanner, sh *model.Show) error {
	return s.Scan(&sh.ID, &sh.VenueID, &sh.ArtistID, &sh.StartTime, &sh.CreatedAt)
}

// Create inserts a new show and assigns the generated ID back to the show.
// A venue or artist that does not exist yields ErrInvalidReference.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime.UTC())
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrInvalidReference
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return r.db.QueryRowContext(ctx, `SELECT created_at FROM shows WHERE id = ?`, s.ID).Scan(&s.CreatedAt)
}

// ListByVenue returns every show of a venue ordered by start time.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.Show, error) {
	q := `SELECT ` + showColumns + ` FROM shows WHERE venue_id = ? ORDER BY start_time ASC, id ASC`
	return r.queryShows(ctx, q, venueID)
}

// ListByArtist returns every show of an artist ordered by start time.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.Show, error) {
	q := `SELECT ` + showColumns + ` FROM shows WHERE artist_id = ? ORDER BY start_time ASC, id ASC`
	return r.queryShows(ctx, q, artistID)
}

func (r *ShowRepo) queryShows(ctx context.Context, q string, args ...any) ([]model.Show, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Show
	for rows.Next() {
		var s model.Show
		if err := scanShow(rows, &s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListAll returns every show joined with its venue and artist, ordered by
// start time.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListRow, error) {
	const q = `SELECT s.id, s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v  ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.start_time ASC, s.id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ShowListRow
	for rows.Next() {
		var row ShowListRow
		if err := rows.Scan(&row.ID, &row.VenueID, &row.VenueName, &row.ArtistID, &row.ArtistName,
			&row.ArtistImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a show.  It returns ErrShowNotFound when no row matches.
func (r *ShowRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shows WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrShowNotFound
	}
	return nil
}
