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

// ListVenues handles GET /venues: venues grouped by city and state.
func (h *SiteHandler) ListVenues(c echo.Context) error {
	rows, err := h.Venues.ListByArea(c.Request().Context(), h.now())
	if err != nil {
		return fmt.Errorf("list venues: %w", err)
	}
	return h.render(c, http.StatusOK, "pages/venues", render.Page{
		Title: "Venues",
		Data:  view.GroupByArea(rows),
	})
}

// SearchVenues handles POST /venues/search.
func (h *SiteHandler) SearchVenues(c echo.Context) error {
	term := c.FormValue("search_term")
	rows, err := h.Venues.Search(c.Request().Context(), term, h.now())
	if err != nil {
		return fmt.Errorf("search venues: %w", err)
	}
	return h.render(c, http.StatusOK, "pages/search_venues", render.Page{
		Title:      "Venue search",
		Data:       view.VenueSearch(rows),
		SearchTerm: term,
	})
}

// ShowVenue handles GET /venues/:id with past and upcoming shows.
func (h *SiteHandler) ShowVenue(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	now := h.now()

	v, err := h.Venues.GetByID(ctx, id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return h.fail(c, nil, fmt.Sprintf("An error occurred. Venue with ID= %d does not exist.", id))
	}
	if err != nil {
		return fmt.Errorf("get venue %d: %w", id, err)
	}
	shows, err := h.Shows.ListByVenue(ctx, id)
	if err != nil {
		return fmt.Errorf("list shows of venue %d: %w", id, err)
	}
	artists, err := h.Artists.GetByIDs(ctx, view.ArtistIDs(shows))
	if err != nil {
		return fmt.Errorf("load artists of venue %d: %w", id, err)
	}
	return h.render(c, http.StatusOK, "pages/show_venue", render.Page{
		Title: v.Name,
		Data:  view.NewVenueDetail(*v, shows, artists, now),
	})
}

// CreateVenueForm handles GET /venues/create.
func (h *SiteHandler) CreateVenueForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "forms/new_venue", render.Page{
		Title: "New venue",
		Form:  form.Venue{},
	})
}

// CreateVenue handles POST /venues/create.
func (h *SiteHandler) CreateVenue(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	f := form.VenueFromValues(values)
	if errs := f.Validate(); len(errs) > 0 {
		return h.render(c, http.StatusBadRequest, "forms/new_venue", render.Page{
			Title:  "New venue",
			Form:   f,
			Errors: errs,
		})
	}

	v := f.Model(0)
	if err := h.Venues.Create(c.Request().Context(), &v); err != nil {
		return h.fail(c, err, "An error occurred. Venue "+f.Name+" could not be listed.")
	}
	h.changed(c, queue.EntityVenue, queue.ActionCreated, v.ID, v.Name)
	h.Flash.Success(c, "Venue "+f.Name+" was successfully listed!")
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", v.ID))
}

// EditVenueForm handles GET /venues/:id/edit.
func (h *SiteHandler) EditVenueForm(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	v, err := h.Venues.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return h.fail(c, nil, fmt.Sprintf("An error occurred. Venue with ID= %d does not exist.", id))
	}
	if err != nil {
		return fmt.Errorf("get venue %d: %w", id, err)
	}
	return h.render(c, http.StatusOK, "forms/edit_venue", render.Page{
		Title: "Edit " + v.Name,
		Data:  id,
		Form:  form.VenueFromModel(*v),
	})
}

// EditVenue handles POST /venues/:id/edit.
func (h *SiteHandler) EditVenue(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	f := form.VenueFromValues(values)
	if errs := f.Validate(); len(errs) > 0 {
		return h.render(c, http.StatusBadRequest, "forms/edit_venue", render.Page{
			Title:  "Edit venue",
			Data:   id,
			Form:   f,
			Errors: errs,
		})
	}

	v := f.Model(id)
	if err := h.Venues.Update(c.Request().Context(), &v); err != nil {
		return h.fail(c, err, fmt.Sprintf("An error occurred. Venue with ID = %d could not be updated.", id))
	}
	h.changed(c, queue.EntityVenue, queue.ActionUpdated, id, v.Name)
	h.Flash.Success(c, fmt.Sprintf("Venue with ID = %d was successfully updated!", id))
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", id))
}

// DeleteVenue handles DELETE /venues/:id.  The venue's shows go with it.
func (h *SiteHandler) DeleteVenue(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.Venues.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err, fmt.Sprintf("An error occurred. Venue with ID = %d could not be deleted.", id))
	}
	h.changed(c, queue.EntityVenue, queue.ActionDeleted, id, "")
	h.Flash.Success(c, fmt.Sprintf("Venue with ID = %d was successfully deleted!", id))
	return c.Redirect(http.StatusSeeOther, "/")
}
