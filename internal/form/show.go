package form

import (
	"net/url"
	"strconv"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// startTimeLayouts are accepted for show start times, tried in order.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Show is the create show form.
type Show struct {
	ArtistID  string `form:"artist_id" validate:"required,numeric"`
	VenueID   string `form:"venue_id" validate:"required,numeric"`
	StartTime string `form:"start_time" validate:"required"`
}

// ShowFromValues reads a show form from submitted values.
func ShowFromValues(v url.Values) Show {
	return Show{
		ArtistID:  v.Get("artist_id"),
		VenueID:   v.Get("venue_id"),
		StartTime: v.Get("start_time"),
	}
}

// Model validates the form and converts it into a show.
func (f Show) Model() (model.Show, Errors) {
	if errs := check(f); errs != nil {
		return model.Show{}, errs
	}
	errs := Errors{}
	artistID, err := strconv.ParseUint(f.ArtistID, 10, 64)
	if err != nil {
		errs["artist_id"] = "Must be a number."
	}
	venueID, err := strconv.ParseUint(f.VenueID, 10, 64)
	if err != nil {
		errs["venue_id"] = "Must be a number."
	}
	start, ok := ParseStartTime(f.StartTime)
	if !ok {
		errs["start_time"] = "Not a valid date and time."
	}
	if len(errs) > 0 {
		return model.Show{}, errs
	}
	return model.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}, nil
}

// ParseStartTime parses s with the accepted layouts.  Values without a zone
// are taken as UTC; the result is always in UTC.
func ParseStartTime(s string) (time.Time, bool) {
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
