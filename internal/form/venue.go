package form

import (
	"net/url"

	"github.com/iliyamo/venue-booking/internal/model"
)

// Venue is the create/edit venue form.
type Venue struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,usstate"`
	Address            string   `form:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"required,max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Website            string   `form:"website" validate:"omitempty,url,max=150"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Genres             []string `form:"genres" validate:"dive,genre"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

// VenueFromValues reads a venue form from submitted values.
func VenueFromValues(v url.Values) Venue {
	return Venue{
		Name:               v.Get("name"),
		City:               v.Get("city"),
		State:              v.Get("state"),
		Address:            v.Get("address"),
		Phone:              v.Get("phone"),
		ImageLink:          v.Get("image_link"),
		Website:            v.Get("website"),
		FacebookLink:       v.Get("facebook_link"),
		Genres:             genres(v),
		SeekingTalent:      checked(v.Get("seeking_talent")),
		SeekingDescription: v.Get("seeking_description"),
	}
}

// VenueFromModel pre-fills the edit form from a stored venue.
func VenueFromModel(m model.Venue) Venue {
	return Venue{
		Name:               m.Name,
		City:               m.City,
		State:              m.State,
		Address:            m.Address,
		Phone:              m.Phone,
		ImageLink:          m.ImageLink,
		Website:            m.Website,
		FacebookLink:       m.FacebookLink,
		Genres:             append([]string{}, m.Genres...),
		SeekingTalent:      m.SeekingTalent,
		SeekingDescription: m.SeekingDescription,
	}
}

// Validate reports field errors, or nil when the form is valid.
func (f Venue) Validate() Errors { return check(f) }

// Model converts the form into a venue with the given id.
func (f Venue) Model(id uint64) model.Venue {
	return model.Venue{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
		Genres:             model.Genres(append([]string{}, f.Genres...)),
	}
}

// HasGenre is used by the templates to pre-select genre options.
func (f Venue) HasGenre(g string) bool { return contains(f.Genres, g) }

func genres(v url.Values) []string {
	out := []string{}
	for _, g := range v["genres"] {
		if g != "" {
			out = append(out, g)
		}
	}
	return out
}

func checked(s string) bool {
	switch s {
	case "y", "on", "true", "1":
		return true
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
