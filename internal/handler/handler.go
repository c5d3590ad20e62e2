// Package handler implements the HTML pages of the booking site.  Every
// persistence failure is collapsed into one flash message and a redirect to
// the home page; the underlying error is logged.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iliyamo/venue-booking/internal/flash"
	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/render"
	"github.com/iliyamo/venue-booking/internal/repository"
)

// recentLimit is how many venues and artists the home page lists.
const recentLimit = 10

// VenueStore is the venue persistence used by the handlers.
type VenueStore interface {
	Create(ctx context.Context, v *model.Venue) error
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]*model.Venue, error)
	ListByArea(ctx context.Context, now time.Time) ([]repository.VenueListRow, error)
	Search(ctx context.Context, term string, now time.Time) ([]repository.VenueListRow, error)
	ListRecent(ctx context.Context, limit int) ([]*model.Venue, error)
	Update(ctx context.Context, v *model.Venue) error
	Delete(ctx context.Context, id uint64) error
}

// ArtistStore is the artist persistence used by the handlers.
type ArtistStore interface {
	Create(ctx context.Context, a *model.Artist) error
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]*model.Artist, error)
	ListAll(ctx context.Context, now time.Time) ([]repository.ArtistListRow, error)
	Search(ctx context.Context, term string, now time.Time) ([]repository.ArtistListRow, error)
	ListRecent(ctx context.Context, limit int) ([]*model.Artist, error)
	Update(ctx context.Context, a *model.Artist) error
	Delete(ctx context.Context, id uint64) error
}

// ShowStore is the show persistence used by the handlers.
type ShowStore interface {
	Create(ctx context.Context, s *model.Show) error
	ListByVenue(ctx context.Context, venueID uint64) ([]model.Show, error)
	ListByArtist(ctx context.Context, artistID uint64) ([]model.Show, error)
	ListAll(ctx context.Context) ([]repository.ShowListRow, error)
	Delete(ctx context.Context, id uint64) error
}

// CachePurger drops cached pages after a listing changed.
type CachePurger interface {
	Purge(ctx context.Context) error
}

// SiteHandler aggregates the stores and collaborators of the site.
type SiteHandler struct {
	Venues  VenueStore
	Artists ArtistStore
	Shows   ShowStore
	Flash   *flash.Store
	Events  queue.Publisher
	Cache   CachePurger
	Log     zerolog.Logger
	// Now is the wall clock; tests pin it.  Nil means time.Now.
	Now func() time.Time
}

func (h *SiteHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

// render pops pending flash messages into p and renders the named template.
func (h *SiteHandler) render(c echo.Context, status int, name string, p render.Page) error {
	p.Flashes = h.Flash.Pop(c)
	return c.Render(status, name, p)
}

// fail logs err, flashes msg and sends the client home.
func (h *SiteHandler) fail(c echo.Context, err error, msg string) error {
	if err != nil {
		h.Log.Error().Err(err).Str("route", c.Path()).Msg(msg)
	}
	h.Flash.Error(c, msg)
	return c.Redirect(http.StatusSeeOther, "/")
}

// changed runs the side effects of a committed mutation.  Failures are
// logged and never reach the client.
func (h *SiteHandler) changed(c echo.Context, entity, action string, id uint64, name string) {
	ctx := c.Request().Context()
	if h.Cache != nil {
		if err := h.Cache.Purge(ctx); err != nil {
			h.Log.Warn().Err(err).Msg("purge page cache")
		}
	}
	if h.Events != nil {
		ev := queue.NewEvent(entity, action, id, name, h.now())
		if err := h.Events.Publish(ctx, ev); err != nil {
			h.Log.Warn().Err(err).Str("entity", entity).Str("action", action).Uint64("id", id).Msg("publish listing event")
		}
	}
}

// paramID parses the :id route parameter.  Malformed ids are treated as
// unknown routes.
func paramID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.ErrNotFound
	}
	return id, nil
}
