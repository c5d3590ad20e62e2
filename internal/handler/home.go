package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/render"
)

// HomeData lists the most recently created venues and artists.
type HomeData struct {
	Venues  []*model.Venue
	Artists []*model.Artist
}

// Home handles GET /.
func (h *SiteHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Venues.ListRecent(ctx, recentLimit)
	if err != nil {
		return fmt.Errorf("list recent venues: %w", err)
	}
	artists, err := h.Artists.ListRecent(ctx, recentLimit)
	if err != nil {
		return fmt.Errorf("list recent artists: %w", err)
	}
	return h.render(c, http.StatusOK, "pages/home", render.Page{
		Data: HomeData{Venues: venues, Artists: artists},
	})
}
