package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/repository"
)

func TestGroupByArea(t *testing.T) {
	rows := []repository.VenueListRow{
		{ID: 2, Name: "Dueling Pianos", City: "New York", State: "NY"},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", NumUpcomingShows: 1},
		{ID: 3, Name: "Park Square", City: "San Francisco", State: "CA", NumUpcomingShows: 3},
		{ID: 5, Name: "Fake SF", City: "San Francisco", State: "NM"},
	}

	areas := GroupByArea(rows)

	require.Len(t, areas, 3)
	assert.Equal(t, "New York", areas[0].City)
	assert.Equal(t, "CA", areas[1].State)
	assert.Equal(t, []VenueSummary{
		{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1},
		{ID: 3, Name: "Park Square", NumUpcomingShows: 3},
	}, areas[1].Venues)
	assert.Equal(t, "NM", areas[2].State, "same city in another state is another area")

	seen := map[uint64]int{}
	for _, a := range areas {
		for _, v := range a.Venues {
			seen[v.ID]++
		}
	}
	for _, r := range rows {
		assert.Equal(t, 1, seen[r.ID], "venue %d must land in exactly one area", r.ID)
	}
}

func TestGroupByAreaEmpty(t *testing.T) {
	assert.Empty(t, GroupByArea(nil))
	assert.NotNil(t, GroupByArea(nil))
}

func TestDistinctIDs(t *testing.T) {
	shows := []model.Show{
		{ID: 1, VenueID: 3, ArtistID: 6},
		{ID: 2, VenueID: 1, ArtistID: 4},
		{ID: 3, VenueID: 3, ArtistID: 6},
		{ID: 4, VenueID: 3, ArtistID: 5},
	}
	assert.Equal(t, []uint64{6, 4, 5}, ArtistIDs(shows))
	assert.Equal(t, []uint64{3, 1}, VenueIDs(shows))
	assert.Nil(t, ArtistIDs(nil))
}

func TestNewVenueDetailSplitsAroundNow(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	venue := model.Venue{ID: 3, Name: "Park Square", ImageLink: "https://img/v3.jpg"}
	shows := []model.Show{
		{ID: 1, VenueID: 3, ArtistID: 5, StartTime: now.Add(-24 * time.Hour)},
		{ID: 2, VenueID: 3, ArtistID: 6, StartTime: now},
		{ID: 3, VenueID: 3, ArtistID: 6, StartTime: now.Add(time.Nanosecond)},
		{ID: 4, VenueID: 3, ArtistID: 9, StartTime: now.Add(48 * time.Hour)},
	}
	artists := []*model.Artist{
		{ID: 5, Name: "Matt Quevedo", ImageLink: "https://img/5.jpg"},
		{ID: 6, Name: "The Wild Sax Band", ImageLink: "https://img/6.jpg"},
	}

	d := NewVenueDetail(venue, shows, artists, now)

	assert.Equal(t, 2, d.PastShowsCount)
	assert.Equal(t, 2, d.UpcomingShowsCount)
	assert.Equal(t, uint64(1), d.PastShows[0].ShowID)
	assert.Equal(t, uint64(2), d.PastShows[1].ShowID, "starting exactly now counts as past")
	assert.Equal(t, "The Wild Sax Band", d.UpcomingShows[0].ArtistName)
	assert.Equal(t, "https://img/6.jpg", d.UpcomingShows[0].ArtistImageLink)
	assert.Equal(t, "Park Square", d.UpcomingShows[0].VenueName)
	assert.Empty(t, d.UpcomingShows[1].ArtistName, "unknown counterpart keeps empty name")
}

func TestNewArtistDetail(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	artist := model.Artist{ID: 6, Name: "The Wild Sax Band"}
	shows := []model.Show{
		{ID: 7, VenueID: 3, ArtistID: 6, StartTime: now.Add(time.Hour)},
	}
	venues := []*model.Venue{{ID: 3, Name: "Park Square", ImageLink: "https://img/v3.jpg"}}

	d := NewArtistDetail(artist, shows, venues, now)

	assert.Equal(t, 0, d.PastShowsCount)
	assert.NotNil(t, d.PastShows)
	require.Len(t, d.UpcomingShows, 1)
	assert.Equal(t, "Park Square", d.UpcomingShows[0].VenueName)
	assert.Equal(t, "https://img/v3.jpg", d.UpcomingShows[0].VenueImageLink)
	assert.Equal(t, "The Wild Sax Band", d.Name)
}

func TestSearchResults(t *testing.T) {
	res := VenueSearch([]repository.VenueListRow{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2}})
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "The Musical Hop", res.Data[0].Name)

	empty := ArtistSearch(nil)
	assert.Equal(t, 0, empty.Count)
	assert.NotNil(t, empty.Data)
}
