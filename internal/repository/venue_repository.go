// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for venues: CRUD, area listing with
// upcoming show counts, name search and batch lookup by id.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// VenueListRow is a lightweight venue summary used by the area listing and
// by search results.  NumUpcomingShows counts shows starting after the
// reference time passed to the query.
type VenueListRow struct {
	ID               uint64
	Name             string
	City             string
	State            string
	NumUpcomingShows int
}

const venueColumns = `id, name, city, state, address, phone, image_link, website, facebook_link,
	seeking_talent, seeking_description, genres, created_at, updated_at`

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

func scanVenue(s rowScanner, v *model.Venue) error {
	return s.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink, &v.Website,
		&v.FacebookLink, &v.SeekingTalent, &v.SeekingDescription, &v.Genres, &v.CreatedAt, &v.UpdatedAt)
}

// Create inserts a new venue.  On success the venue's ID and timestamps are
// populated from the stored row.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const qInsert = `INSERT INTO venues (name, city, state, address, phone, image_link, website, facebook_link,
		seeking_talent, seeking_description, genres) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.Website, v.FacebookLink, v.SeekingTalent, v.SeekingDescription, v.Genres)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	// Follow-up SELECT populates DB defaults (created_at, updated_at).
	const qSelect = `SELECT created_at, updated_at FROM venues WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, v.ID).Scan(&v.CreatedAt, &v.UpdatedAt)
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no row
// is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	q := `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	var v model.Venue
	if err := scanVenue(r.db.QueryRowContext(ctx, q, id), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// GetByIDs loads the venues with the given ids in one query.  Missing ids are
// silently skipped; the result is ordered by id.
func (r *VenueRepo) GetByIDs(ctx context.Context, ids []uint64) ([]*model.Venue, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	q := `SELECT ` + venueColumns + ` FROM venues WHERE id IN (` + placeholders(len(ids)) + `) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Venue
	for rows.Next() {
		v := new(model.Venue)
		if err := scanVenue(rows, v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByArea returns every venue ordered by city, then state, then id, with
// the number of shows starting after now.
func (r *VenueRepo) ListByArea(ctx context.Context, now time.Time) ([]VenueListRow, error) {
	const q = `SELECT v.id, v.name, v.city, v.state, COUNT(s.id)
	           FROM venues v
	           LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > ?
	           GROUP BY v.id, v.name, v.city, v.state
	           ORDER BY v.city, v.state, v.id`
	return r.listRows(ctx, q, now)
}

// Search returns venues whose name contains term, case-insensitively, ordered
// by id.  Accents are significant.  An empty term matches every venue.
func (r *VenueRepo) Search(ctx context.Context, term string, now time.Time) ([]VenueListRow, error) {
	const q = `SELECT v.id, v.name, v.city, v.state, COUNT(s.id)
	           FROM venues v
	           LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > ?
	           WHERE LOWER(v.name) COLLATE utf8mb4_bin LIKE ?
	           GROUP BY v.id, v.name, v.city, v.state
	           ORDER BY v.id`
	return r.listRows(ctx, q, now, likePattern(term))
}

func (r *VenueRepo) listRows(ctx context.Context, q string, args ...any) ([]VenueListRow, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VenueListRow
	for rows.Next() {
		var row VenueListRow
		if err := rows.Scan(&row.ID, &row.Name, &row.City, &row.State, &row.NumUpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecent returns the most recently created venues, newest first.
func (r *VenueRepo) ListRecent(ctx context.Context, limit int) ([]*model.Venue, error) {
	q := `SELECT ` + venueColumns + ` FROM venues ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Venue
	for rows.Next() {
		v := new(model.Venue)
		if err := scanVenue(rows, v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every editable attribute of the venue identified by v.ID.
// It returns ErrVenueNotFound when no row matches.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues
	           SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?, website = ?,
	               facebook_link = ?, seeking_talent = ?, seeking_description = ?, genres = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.Website,
		v.FacebookLink, v.SeekingTalent, v.SeekingDescription, v.Genres, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVenueNotFound
	}
	return nil
}

// Delete removes a venue and all of its shows inside one transaction.  If
// the venue does not exist ErrVenueNotFound is returned and nothing is
// deleted.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (err error) {
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

	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrVenueNotFound
		return err
	}
	return nil
}
