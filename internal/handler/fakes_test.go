package handler

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/repository"
)

// memStore keeps venues, artists and shows in memory and satisfies the
// three store interfaces through thin views.
type memStore struct {
	mu      sync.Mutex
	venues  map[uint64]*model.Venue
	artists map[uint64]*model.Artist
	shows   map[uint64]*model.Show
	nextID  uint64
	// failWith makes every mutation return this error.
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		venues:  map[uint64]*model.Venue{},
		artists: map[uint64]*model.Artist{},
		shows:   map[uint64]*model.Show{},
	}
}

func (m *memStore) id() uint64 { m.nextID++; return m.nextID }

func (m *memStore) upcoming(now time.Time, match func(*model.Show) bool) int {
	n := 0
	for _, s := range m.shows {
		if match(s) && s.IsUpcoming(now) {
			n++
		}
	}
	return n
}

func sortedIDs[T any](in map[uint64]T) []uint64 {
	ids := make([]uint64, 0, len(in))
	for id := range in {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type venueStore struct{ *memStore }

func (s venueStore) Create(_ context.Context, v *model.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	v.ID = s.id()
	cp := *v
	s.venues[v.ID] = &cp
	return nil
}

func (s venueStore) GetByID(_ context.Context, id uint64) (*model.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.venues[id]
	if !ok {
		return nil, repository.ErrVenueNotFound
	}
	cp := *v
	return &cp, nil
}

func (s venueStore) GetByIDs(_ context.Context, ids []uint64) ([]*model.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Venue
	for _, id := range ids {
		if v, ok := s.venues[id]; ok {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s venueStore) rows(now time.Time, keep func(*model.Venue) bool) []repository.VenueListRow {
	var out []repository.VenueListRow
	for _, id := range sortedIDs(s.venues) {
		v := s.venues[id]
		if !keep(v) {
			continue
		}
		out = append(out, repository.VenueListRow{
			ID: v.ID, Name: v.Name, City: v.City, State: v.State,
			NumUpcomingShows: s.upcoming(now, func(sh *model.Show) bool { return sh.VenueID == v.ID }),
		})
	}
	return out
}

func (s venueStore) ListByArea(_ context.Context, now time.Time) ([]repository.VenueListRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.rows(now, func(*model.Venue) bool { return true })
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].City != rows[j].City {
			return rows[i].City < rows[j].City
		}
		return rows[i].State < rows[j].State
	})
	return rows, nil
}

func (s venueStore) Search(_ context.Context, term string, now time.Time) ([]repository.VenueListRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	term = strings.ToLower(term)
	return s.rows(now, func(v *model.Venue) bool { return strings.Contains(strings.ToLower(v.Name), term) }), nil
}

func (s venueStore) ListRecent(_ context.Context, limit int) ([]*model.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := sortedIDs(s.venues)
	var out []*model.Venue
	for i := len(ids) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.venues[ids[i]])
	}
	return out, nil
}

func (s venueStore) Update(_ context.Context, v *model.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.venues[v.ID]; !ok {
		return repository.ErrVenueNotFound
	}
	cp := *v
	s.venues[v.ID] = &cp
	return nil
}

func (s venueStore) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[id]; !ok {
		return repository.ErrVenueNotFound
	}
	delete(s.venues, id)
	for sid, sh := range s.shows {
		if sh.VenueID == id {
			delete(s.shows, sid)
		}
	}
	return nil
}

type artistStore struct{ *memStore }

func (s artistStore) Create(_ context.Context, a *model.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	a.ID = s.id()
	cp := *a
	s.artists[a.ID] = &cp
	return nil
}

func (s artistStore) GetByID(_ context.Context, id uint64) (*model.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.artists[id]
	if !ok {
		return nil, repository.ErrArtistNotFound
	}
	cp := *a
	return &cp, nil
}

func (s artistStore) GetByIDs(_ context.Context, ids []uint64) ([]*model.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Artist
	for _, id := range ids {
		if a, ok := s.artists[id]; ok {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s artistStore) rows(now time.Time, keep func(*model.Artist) bool) []repository.ArtistListRow {
	var out []repository.ArtistListRow
	for _, id := range sortedIDs(s.artists) {
		a := s.artists[id]
		if keep(a) {
			out = append(out, repository.ArtistListRow{
				ID: a.ID, Name: a.Name,
				NumUpcomingShows: s.upcoming(now, func(sh *model.Show) bool { return sh.ArtistID == a.ID }),
			})
		}
	}
	return out
}

func (s artistStore) ListAll(_ context.Context, now time.Time) ([]repository.ArtistListRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows(now, func(*model.Artist) bool { return true }), nil
}

func (s artistStore) Search(_ context.Context, term string, now time.Time) ([]repository.ArtistListRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	term = strings.ToLower(term)
	return s.rows(now, func(a *model.Artist) bool { return strings.Contains(strings.ToLower(a.Name), term) }), nil
}

func (s artistStore) ListRecent(_ context.Context, limit int) ([]*model.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := sortedIDs(s.artists)
	var out []*model.Artist
	for i := len(ids) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.artists[ids[i]])
	}
	return out, nil
}

func (s artistStore) Update(_ context.Context, a *model.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.artists[a.ID]; !ok {
		return repository.ErrArtistNotFound
	}
	cp := *a
	s.artists[a.ID] = &cp
	return nil
}

func (s artistStore) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.artists[id]; !ok {
		return repository.ErrArtistNotFound
	}
	delete(s.artists, id)
	for sid, sh := range s.shows {
		if sh.ArtistID == id {
			delete(s.shows, sid)
		}
	}
	return nil
}

type showStore struct{ *memStore }

func (s showStore) Create(_ context.Context, sh *model.Show) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.venues[sh.VenueID]; !ok {
		return repository.ErrInvalidReference
	}
	if _, ok := s.artists[sh.ArtistID]; !ok {
		return repository.ErrInvalidReference
	}
	sh.ID = s.id()
	cp := *sh
	s.shows[sh.ID] = &cp
	return nil
}

func (s showStore) list(match func(*model.Show) bool) []model.Show {
	var out []model.Show
	for _, id := range sortedIDs(s.shows) {
		if sh := s.shows[id]; match(sh) {
			out = append(out, *sh)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func (s showStore) ListByVenue(_ context.Context, venueID uint64) ([]model.Show, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(func(sh *model.Show) bool { return sh.VenueID == venueID }), nil
}

func (s showStore) ListByArtist(_ context.Context, artistID uint64) ([]model.Show, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(func(sh *model.Show) bool { return sh.ArtistID == artistID }), nil
}

func (s showStore) ListAll(_ context.Context) ([]repository.ShowListRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []repository.ShowListRow
	for _, sh := range s.list(func(*model.Show) bool { return true }) {
		v, a := s.venues[sh.VenueID], s.artists[sh.ArtistID]
		out = append(out, repository.ShowListRow{
			ID: sh.ID, VenueID: v.ID, VenueName: v.Name,
			ArtistID: a.ID, ArtistName: a.Name, ArtistImageLink: a.ImageLink,
			StartTime: sh.StartTime,
		})
	}
	return out, nil
}

func (s showStore) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shows[id]; !ok {
		return repository.ErrShowNotFound
	}
	delete(s.shows, id)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.ListingChangedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, ev queue.ListingChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

type countingPurger struct{ n int }

func (p *countingPurger) Purge(context.Context) error { p.n++; return nil }
