package form

import (
	"net/url"

	"github.com/iliyamo/venue-booking/internal/model"
)

// Artist is the create/edit artist form.
type Artist struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,usstate"`
	Phone              string   `form:"phone" validate:"required,max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Website            string   `form:"website" validate:"omitempty,url,max=150"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Genres             []string `form:"genres" validate:"dive,genre"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

// ArtistFromValues reads an artist form from submitted values.
func ArtistFromValues(v url.Values) Artist {
	return Artist{
		Name:               v.Get("name"),
		City:               v.Get("city"),
		State:              v.Get("state"),
		Phone:              v.Get("phone"),
		ImageLink:          v.Get("image_link"),
		Website:            v.Get("website"),
		FacebookLink:       v.Get("facebook_link"),
		Genres:             genres(v),
		SeekingVenue:       checked(v.Get("seeking_venue")),
		SeekingDescription: v.Get("seeking_description"),
	}
}

// ArtistFromModel pre-fills the edit form from a stored artist.
func ArtistFromModel(m model.Artist) Artist {
	return Artist{
		Name:               m.Name,
		City:               m.City,
		State:              m.State,
		Phone:              m.Phone,
		ImageLink:          m.ImageLink,
		Website:            m.Website,
		FacebookLink:       m.FacebookLink,
		Genres:             append([]string{}, m.Genres...),
		SeekingVenue:       m.SeekingVenue,
		SeekingDescription: m.SeekingDescription,
	}
}

// Validate reports field errors, or nil when the form is valid.
func (f Artist) Validate() Errors { return check(f) }

// Model converts the form into an artist with the given id.
func (f Artist) Model(id uint64) model.Artist {
	return model.Artist{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
		Genres:             model.Genres(append([]string{}, f.Genres...)),
	}
}

// HasGenre is used by the templates to pre-select genre options.
func (f Artist) HasGenre(g string) bool { return contains(f.Genres, g) }
