package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/flash"
	"github.com/iliyamo/venue-booking/internal/form"
	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/view"
)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", FormatDateTime(ts, "full"))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDateTime(ts))
	assert.Equal(t, "2019-05-21 21:30:00", FormatDateTime(ts, "iso"))
}

func TestAllTemplatesParse(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	for _, name := range []string{
		"pages/home", "pages/venues", "pages/artists", "pages/shows",
		"pages/search_venues", "pages/search_artists", "pages/show_venue", "pages/show_artist",
		"forms/new_venue", "forms/edit_venue", "forms/new_artist", "forms/edit_artist", "forms/new_show",
		"errors/404", "errors/500", "errors/429",
	} {
		assert.Contains(t, r.pages, name)
	}
}

func TestRenderUnknown(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "pages/nope", Page{}, nil))
}

func TestRenderVenueDetail(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	detail := view.VenueDetail{
		Venue: model.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: model.Genres{"Jazz"}},
		UpcomingShows: []view.ShowEntry{{
			ArtistID: 4, ArtistName: "Guns N Petals",
			StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
		}},
		PastShows:          []view.ShowEntry{},
		UpcomingShowsCount: 1,
	}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "pages/show_venue", Page{
		Title:   detail.Name,
		Flashes: []flash.Message{{Category: flash.Success, Text: "Venue The Musical Hop was successfully listed!"}},
		Data:    detail,
	}, nil))

	out := buf.String()
	assert.Contains(t, out, "Venue The Musical Hop was successfully listed!")
	assert.Contains(t, out, "1 Upcoming Show<")
	assert.Contains(t, out, "0 Past Shows")
	assert.Contains(t, out, `href="/artists/4"`)
	assert.Contains(t, out, "Sunday April, 1, 2035 at 8:00PM")
}

func TestRenderFormWithErrors(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "forms/edit_venue", Page{
		Data:   uint64(7),
		Form:   form.Venue{Name: "Park Square", State: "NY", Genres: []string{"Jazz"}},
		Errors: form.Errors{"city": "This field is required."},
	}, nil))

	out := buf.String()
	assert.Contains(t, out, `action="/venues/7/edit"`)
	assert.Contains(t, out, `<option value="NY" selected>`)
	assert.Contains(t, out, `<option value="Jazz" selected>`)
	assert.Contains(t, out, "This field is required.")
}

func TestRenderNewFormWithoutErrors(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "forms/new_artist", Page{Form: form.Artist{}}, nil))
	assert.NotContains(t, buf.String(), `class="error"`)
}
