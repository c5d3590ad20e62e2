// This file defines repository methods for artists.  Artists mirror venues:
// CRUD, listing with upcoming show counts, name search and batch lookup.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ArtistListRow is the summary used by the artist listing and search.
type ArtistListRow struct {
	ID               uint64
	Name             string
	NumUpcomingShows int
}

const artistColumns = `id, name, genres, city, state, phone, image_link, facebook_link, website,
	seeking_venue, seeking_description, created_at, updated_at`

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

func scanArtist(s rowScanner, a *model.Artist) error {
	return s.Scan(&a.ID, &a.Name, &a.Genres, &a.City, &a.State, &a.Phone, &a.ImageLink, &a.FacebookLink,
		&a.Website, &a.SeekingVenue, &a.SeekingDescription, &a.CreatedAt, &a.UpdatedAt)
}

func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const qInsert = `INSERT INTO artists (name, genres, city, state, phone, image_link, facebook_link, website,
		seeking_venue, seeking_description) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, a.Name, a.Genres, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	const qSelect = `SELECT created_at, updated_at FROM artists WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// GetByID retrieves an artist by its ID.  It returns ErrArtistNotFound if
// there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	q := `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	var a model.Artist
	if err := scanArtist(r.db.QueryRowContext(ctx, q, id), &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetByIDs loads the artists with the given ids in one query, ordered by id.
func (r *ArtistRepo) GetByIDs(ctx context.Context, ids []uint64) ([]*model.Artist, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	q := `SELECT ` + artistColumns + ` FROM artists WHERE id IN (` + placeholders(len(ids)) + `) ORDER BY id`
	return r.queryArtists(ctx, q, args...)
}

// ListRecent returns the most recently created artists, newest first.
func (r *ArtistRepo) ListRecent(ctx context.Context, limit int) ([]*model.Artist, error) {
	q := `SELECT ` + artistColumns + ` FROM artists ORDER BY created_at DESC, id DESC LIMIT ?`
	return r.queryArtists(ctx, q, limit)
}

func (r *ArtistRepo) queryArtists(ctx context.Context, q string, args ...any) ([]*model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Artist
	for rows.Next() {
		a := new(model.Artist)
		if err := scanArtist(rows, a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns every artist ordered by id with its upcoming show count.
func (r *ArtistRepo) ListAll(ctx context.Context, now time.Time) ([]ArtistListRow, error) {
	const q = `SELECT a.id, a.name, COUNT(s.id)
	           FROM artists a
	           LEFT JOIN shows s ON s.artist_id = a.id AND s.start_time > ?
	           GROUP BY a.id, a.name
	           ORDER BY a.id`
	return r.listRows(ctx, q, now)
}

// Search returns artists whose name contains term, case-insensitively.
func (r *ArtistRepo) Search(ctx context.Context, term string, now time.Time) ([]ArtistListRow, error) {
	const q = `SELECT a.id, a.name, COUNT(s.id)
	           FROM artists a
	           LEFT JOIN shows s ON s.artist_id = a.id AND s.start_time > ?
	           WHERE LOWER(a.name) COLLATE utf8mb4_bin LIKE ?
	           GROUP BY a.id, a.name
	           ORDER BY a.id`
	return r.listRows(ctx, q, now, likePattern(term))
}

func (r *ArtistRepo) listRows(ctx context.Context, q string, args ...any) ([]ArtistListRow, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ArtistListRow
	for rows.Next() {
		var row ArtistListRow
		if err := rows.Scan(&row.ID, &row.Name, &row.NumUpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every editable attribute of the artist identified by
// a.ID and returns ErrArtistNotFound when no row matches.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists
	           SET name = ?, genres = ?, city = ?, state = ?, phone = ?, image_link = ?, facebook_link = ?,
	               website = ?, seeking_venue = ?, seeking_description = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.Genres, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrArtistNotFound
	}
	return nil
}

// Delete removes an artist and its shows in one transaction.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) (err error) {
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

	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrArtistNotFound
		return err
	}
	return nil
}
