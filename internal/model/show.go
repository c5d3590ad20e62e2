package model

import "time"

// Show represents a scheduled performance of one artist at one venue.
// A show references exactly one venue and one artist via foreign
// keys; there are no association tables.
//
// Fields:
//  ID        – primary key identifier.
//  VenueID   – venue hosting the show.
//  ArtistID  – artist performing.
//  StartTime – when the show begins (UTC).
//  CreatedAt – creation timestamp.
type Show struct {
	ID        uint64    // shows.id
	VenueID   uint64    // shows.venue_id
	ArtistID  uint64    // shows.artist_id
	StartTime time.Time // shows.start_time
	CreatedAt time.Time // shows.created_at
}

// IsUpcoming reports whether the show starts strictly after now.
// Upcoming/past is never stored; it is derived at query time.
func (s Show) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}
