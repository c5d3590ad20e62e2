// Package view maps repository results into the view models handed to the
// HTML templates.  It holds the only derived logic of the site: grouping
// venues by area and splitting shows into past and upcoming relative to a
// single reference time.
package view

import (
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/repository"
)

// VenueSummary is one venue line in the area listing or search results.
type VenueSummary struct {
	ID               uint64
	Name             string
	NumUpcomingShows int
}

// Area groups the venues sharing a (city, state) pair.
type Area struct {
	City   string
	State  string
	Venues []VenueSummary
}

// SearchResults is the payload of the venue and artist search pages.
type SearchResults struct {
	Count int
	Data  []VenueSummary
}

// ShowEntry is a show as displayed on a venue or artist page, with the
// counterpart's name and image denormalized into it.
type ShowEntry struct {
	ShowID          uint64
	VenueID         uint64
	VenueName       string
	VenueImageLink  string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// VenueDetail is the venue page.
type VenueDetail struct {
	model.Venue
	PastShows          []ShowEntry
	UpcomingShows      []ShowEntry
	PastShowsCount     int
	UpcomingShowsCount int
}

// ArtistDetail is the artist page.
type ArtistDetail struct {
	model.Artist
	PastShows          []ShowEntry
	UpcomingShows      []ShowEntry
	PastShowsCount     int
	UpcomingShowsCount int
}

// GroupByArea groups venues by (city, state) preserving the first-seen order
// of pairs and, within a pair, the order of rows.
func GroupByArea(rows []repository.VenueListRow) []Area {
	areas := []Area{}
	index := map[[2]string]int{}
	for _, r := range rows {
		key := [2]string{r.City, r.State}
		i, ok := index[key]
		if !ok {
			areas = append(areas, Area{City: r.City, State: r.State})
			i = len(areas) - 1
			index[key] = i
		}
		areas[i].Venues = append(areas[i].Venues, VenueSummary{
			ID:               r.ID,
			Name:             r.Name,
			NumUpcomingShows: r.NumUpcomingShows,
		})
	}
	return areas
}

// VenueSearch builds search results from venue rows.
func VenueSearch(rows []repository.VenueListRow) SearchResults {
	out := SearchResults{Count: len(rows), Data: make([]VenueSummary, 0, len(rows))}
	for _, r := range rows {
		out.Data = append(out.Data, VenueSummary{ID: r.ID, Name: r.Name, NumUpcomingShows: r.NumUpcomingShows})
	}
	return out
}

// ArtistSearch builds search results from artist rows.
func ArtistSearch(rows []repository.ArtistListRow) SearchResults {
	out := SearchResults{Count: len(rows), Data: make([]VenueSummary, 0, len(rows))}
	for _, r := range rows {
		out.Data = append(out.Data, VenueSummary{ID: r.ID, Name: r.Name, NumUpcomingShows: r.NumUpcomingShows})
	}
	return out
}

// ArtistIDs returns the distinct artist ids referenced by shows in
// first-seen order.
func ArtistIDs(shows []model.Show) []uint64 {
	return distinct(shows, func(s model.Show) uint64 { return s.ArtistID })
}

// VenueIDs returns the distinct venue ids referenced by shows in first-seen
// order.
func VenueIDs(shows []model.Show) []uint64 {
	return distinct(shows, func(s model.Show) uint64 { return s.VenueID })
}

func distinct(shows []model.Show, key func(model.Show) uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(shows))
	var out []uint64
	for _, s := range shows {
		id := key(s)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// NewVenueDetail partitions a venue's shows around now and fills in the
// performing artist of each show from artists.
func NewVenueDetail(v model.Venue, shows []model.Show, artists []*model.Artist, now time.Time) VenueDetail {
	byID := make(map[uint64]*model.Artist, len(artists))
	for _, a := range artists {
		byID[a.ID] = a
	}
	d := VenueDetail{Venue: v, PastShows: []ShowEntry{}, UpcomingShows: []ShowEntry{}}
	for _, s := range shows {
		e := ShowEntry{ShowID: s.ID, VenueID: v.ID, VenueName: v.Name, VenueImageLink: v.ImageLink, ArtistID: s.ArtistID, StartTime: s.StartTime}
		if a, ok := byID[s.ArtistID]; ok {
			e.ArtistName = a.Name
			e.ArtistImageLink = a.ImageLink
		}
		if s.IsUpcoming(now) {
			d.UpcomingShows = append(d.UpcomingShows, e)
		} else {
			d.PastShows = append(d.PastShows, e)
		}
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

// NewArtistDetail partitions an artist's shows around now and fills in the
// hosting venue of each show from venues.
func NewArtistDetail(a model.Artist, shows []model.Show, venues []*model.Venue, now time.Time) ArtistDetail {
	byID := make(map[uint64]*model.Venue, len(venues))
	for _, v := range venues {
		byID[v.ID] = v
	}
	d := ArtistDetail{Artist: a, PastShows: []ShowEntry{}, UpcomingShows: []ShowEntry{}}
	for _, s := range shows {
		e := ShowEntry{ShowID: s.ID, ArtistID: a.ID, ArtistName: a.Name, ArtistImageLink: a.ImageLink, VenueID: s.VenueID, StartTime: s.StartTime}
		if v, ok := byID[s.VenueID]; ok {
			e.VenueName = v.Name
			e.VenueImageLink = v.ImageLink
		}
		if s.IsUpcoming(now) {
			d.UpcomingShows = append(d.UpcomingShows, e)
		} else {
			d.PastShows = append(d.PastShows, e)
		}
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

// ShowListing converts joined show rows into entries for the shows page.
func ShowListing(rows []repository.ShowListRow) []ShowEntry {
	out := make([]ShowEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, ShowEntry{
			ShowID:          r.ID,
			VenueID:         r.VenueID,
			VenueName:       r.VenueName,
			ArtistID:        r.ArtistID,
			ArtistName:      r.ArtistName,
			ArtistImageLink: r.ArtistImageLink,
			StartTime:       r.StartTime,
		})
	}
	return out
}
