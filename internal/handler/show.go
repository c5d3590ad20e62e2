package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/form"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/render"
	"github.com/iliyamo/venue-booking/internal/view"
)

// ListShows handles GET /shows.
func (h *SiteHandler) ListShows(c echo.Context) error {
	rows, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		return fmt.Errorf("list shows: %w", err)
	}
	return h.render(c, http.StatusOK, "pages/shows", render.Page{
		Title: "Shows",
		Data:  view.ShowListing(rows),
	})
}

// CreateShowForm handles GET /shows/create.
func (h *SiteHandler) CreateShowForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "forms/new_show", render.Page{
		Title: "New show",
		Form:  form.Show{StartTime: h.now().Format("2006-01-02 15:04:05")},
	})
}

// CreateShow handles POST /shows/create.  A show references one venue and
// one artist; unknown ids fail like any other persistence error.
func (h *SiteHandler) CreateShow(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	f := form.ShowFromValues(values)
	s, errs := f.Model()
	if len(errs) > 0 {
		return h.render(c, http.StatusBadRequest, "forms/new_show", render.Page{
			Title:  "New show",
			Form:   f,
			Errors: errs,
		})
	}

	if err := h.Shows.Create(c.Request().Context(), &s); err != nil {
		return h.fail(c, err, "An error occurred. Show could not be listed.")
	}
	h.changed(c, queue.EntityShow, queue.ActionCreated, s.ID, "")
	h.Flash.Success(c, "Show was successfully listed!")
	return c.Redirect(http.StatusSeeOther, "/shows")
}

// DeleteShow handles DELETE /shows/:id.
func (h *SiteHandler) DeleteShow(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.Shows.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err, fmt.Sprintf("An error occurred. Show with ID = %d could not be deleted.", id))
	}
	h.changed(c, queue.EntityShow, queue.ActionDeleted, id, "")
	h.Flash.Success(c, fmt.Sprintf("Show with ID = %d was successfully deleted!", id))
	return c.Redirect(http.StatusSeeOther, "/shows")
}
