package model

import "time"

// Artist represents a performer who can be booked for shows.  An
// artist owns many shows through shows.artist_id.  This struct
// corresponds to a row in the `artists` table.
type Artist struct {
	ID                 uint64    // artists.id
	Name               string    // artists.name
	Genres             Genres    // artists.genres (JSON array)
	City               string    // artists.city
	State              string    // artists.state
	Phone              string    // artists.phone
	ImageLink          string    // artists.image_link
	FacebookLink       string    // artists.facebook_link
	Website            string    // artists.website
	SeekingVenue       bool      // artists.seeking_venue
	SeekingDescription string    // artists.seeking_description
	CreatedAt          time.Time // artists.created_at
	UpdatedAt          time.Time // artists.updated_at
}
