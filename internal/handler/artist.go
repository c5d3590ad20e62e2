package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/form"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/render"
	"github.com/iliyamo/venue-booking/internal/repository"
	"github.com/iliyamo/venue-booking/internal/view"
)

// ListArtists handles GET /artists.
func (h *SiteHandler) ListArtists(c echo.Context) error {
	rows, err := h.Artists.ListAll(c.Request().Context(), h.now())
	if err != nil {
		return fmt.Errorf("list artists: %w", err)
	}
	return h.render(c, http.StatusOK, "pages/artists", render.Page{
		Title: "Artists",
		Data:  rows,
	})
}

// SearchArtists handles POST /artists/search.
func (h *SiteHandler) SearchArtists(c echo.Context) error {
	term := c.FormValue("search_term")
	rows, err := h.Artists.Search(c.Request().Context(), term, h.now())
	if err != nil {
		return fmt.Errorf("search artists: %w", err)
	}
	return h.render(c, http.StatusOK, "pages/search_artists", render.Page{
		Title:      "Artist search",
		Data:       view.ArtistSearch(rows),
		SearchTerm: term,
	})
}

// ShowArtist handles GET /artists/:id with past and upcoming shows.
func (h *SiteHandler) ShowArtist(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	now := h.now()

	a, err := h.Artists.GetByID(ctx, id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return h.fail(c, nil, fmt.Sprintf("An error occurred. Artist with ID= %d does not exist.", id))
	}
	if err != nil {
		return fmt.Errorf("get artist %d: %w", id, err)
	}
	shows, err := h.Shows.ListByArtist(ctx, id)
	if err != nil {
		return fmt.Errorf("list shows of artist %d: %w", id, err)
	}
	venues, err := h.Venues.GetByIDs(ctx, view.VenueIDs(shows))
	if err != nil {
		return fmt.Errorf("load venues of artist %d: %w", id, err)
	}
	return h.render(c, http.StatusOK, "pages/show_artist", render.Page{
		Title: a.Name,
		Data:  view.NewArtistDetail(*a, shows, venues, now),
	})
}

// CreateArtistForm handles GET /artists/create.
func (h *SiteHandler) CreateArtistForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "forms/new_artist", render.Page{
		Title: "New artist",
		Form:  form.Artist{},
	})
}

// CreateArtist handles POST /artists/create.
func (h *SiteHandler) CreateArtist(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	f := form.ArtistFromValues(values)
	if errs := f.Validate(); len(errs) > 0 {
		return h.render(c, http.StatusBadRequest, "forms/new_artist", render.Page{
			Title:  "New artist",
			Form:   f,
			Errors: errs,
		})
	}

	a := f.Model(0)
	if err := h.Artists.Create(c.Request().Context(), &a); err != nil {
		return h.fail(c, err, "An error occurred. Artist "+f.Name+" could not be listed.")
	}
	h.changed(c, queue.EntityArtist, queue.ActionCreated, a.ID, a.Name)
	h.Flash.Success(c, "Artist "+f.Name+" was successfully listed!")
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", a.ID))
}

// EditArtistForm handles GET /artists/:id/edit.
func (h *SiteHandler) EditArtistForm(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	a, err := h.Artists.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return h.fail(c, nil, fmt.Sprintf("An error occurred. Artist with ID= %d does not exist.", id))
	}
	if err != nil {
		return fmt.Errorf("get artist %d: %w", id, err)
	}
	return h.render(c, http.StatusOK, "forms/edit_artist", render.Page{
		Title: "Edit " + a.Name,
		Data:  id,
		Form:  form.ArtistFromModel(*a),
	})
}

// EditArtist handles POST /artists/:id/edit.
func (h *SiteHandler) EditArtist(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	f := form.ArtistFromValues(values)
	if errs := f.Validate(); len(errs) > 0 {
		return h.render(c, http.StatusBadRequest, "forms/edit_artist", render.Page{
			Title:  "Edit artist",
			Data:   id,
			Form:   f,
			Errors: errs,
		})
	}

	a := f.Model(id)
	if err := h.Artists.Update(c.Request().Context(), &a); err != nil {
		return h.fail(c, err, fmt.Sprintf("An error occurred. Artist with ID = %d could not be updated.", id))
	}
	h.changed(c, queue.EntityArtist, queue.ActionUpdated, id, a.Name)
	h.Flash.Success(c, fmt.Sprintf("Artist with ID = %d was successfully updated!", id))
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", id))
}

// DeleteArtist handles DELETE /artists/:id.  The artist's shows go with it.
func (h *SiteHandler) DeleteArtist(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.Artists.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err, fmt.Sprintf("An error occurred. Artist with ID = %d could not be deleted.", id))
	}
	h.changed(c, queue.EntityArtist, queue.ActionDeleted, id, "")
	h.Flash.Success(c, fmt.Sprintf("Artist with ID = %d was successfully deleted!", id))
	return c.Redirect(http.StatusSeeOther, "/")
}
