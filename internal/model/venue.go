package model

import "time"

// Venue represents a location that can host shows.  Venues are
// listed grouped by their city and state pair and own many shows
// through shows.venue_id.  This struct corresponds to a row in the
// `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the venue.
//  City, State        – location used for area grouping.
//  Address, Phone     – contact details.
//  ImageLink          – optional picture URL.
//  Website            – optional website URL.
//  FacebookLink       – facebook page URL.
//  SeekingTalent      – whether the venue is looking for artists.
//  SeekingDescription – free text shown when seeking talent.
//  Genres             – music genres the venue hosts.
type Venue struct {
	ID                 uint64    // venues.id
	Name               string    // venues.name
	City               string    // venues.city
	State              string    // venues.state
	Address            string    // venues.address
	Phone              string    // venues.phone
	ImageLink          string    // venues.image_link
	Website            string    // venues.website
	FacebookLink       string    // venues.facebook_link
	SeekingTalent      bool      // venues.seeking_talent
	SeekingDescription string    // venues.seeking_description
	Genres             Genres    // venues.genres (JSON array)
	CreatedAt          time.Time // venues.created_at
	UpdatedAt          time.Time // venues.updated_at
}
