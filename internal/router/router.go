// Package router wires the site's routes and middleware onto echo.
package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/iliyamo/venue-booking/internal/handler"
	"github.com/iliyamo/venue-booking/internal/middleware"
)

// Options carries the middleware shared across route groups.
type Options struct {
	Log     zerolog.Logger
	Metrics *middleware.Metrics
	// Cache wraps the read-only pages whose content does not depend on the
	// current time.
	Cache echo.MiddlewareFunc
	// RateLimit and Admin wrap every mutation route.
	RateLimit echo.MiddlewareFunc
	Admin     echo.MiddlewareFunc
}

// Setup installs the global middleware and error handler.
func Setup(e *echo.Echo, opts Options) {
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(opts.Log)
	e.Pre(echomw.MethodOverrideWithConfig(echomw.MethodOverrideConfig{
		Getter: echomw.MethodFromForm("_method"),
	}))
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.RequestLogger(opts.Log))
	e.Use(echomw.Recover())
	if opts.Metrics != nil {
		e.Use(opts.Metrics.Middleware())
	}
}

// RegisterRoutes registers health and metrics endpoints.
func RegisterRoutes(e *echo.Echo, opts Options) {
	e.GET("/healthz", handler.Health)
	if opts.Metrics != nil {
		e.GET("/metrics", opts.Metrics.Handler())
	}
}

// RegisterSite registers the HTML pages.  Writes go through the rate limiter
// and the admin guard.  Only the home page and the show listing are cached:
// the venue and artist pages split shows into upcoming and past against the
// request time, so a cached copy goes stale as soon as a show starts.
func RegisterSite(e *echo.Echo, h *handler.SiteHandler, opts Options) {
	read := middlewares(opts.Cache)
	write := middlewares(opts.RateLimit, opts.Admin)

	e.GET("/", h.Home, read...)

	e.GET("/venues", h.ListVenues)
	e.POST("/venues/search", h.SearchVenues)
	e.GET("/venues/create", h.CreateVenueForm, write...)
	e.POST("/venues/create", h.CreateVenue, write...)
	e.GET("/venues/:id", h.ShowVenue)
	e.GET("/venues/:id/edit", h.EditVenueForm, write...)
	e.POST("/venues/:id/edit", h.EditVenue, write...)
	e.DELETE("/venues/:id", h.DeleteVenue, write...)

	e.GET("/artists", h.ListArtists)
	e.POST("/artists/search", h.SearchArtists)
	e.GET("/artists/create", h.CreateArtistForm, write...)
	e.POST("/artists/create", h.CreateArtist, write...)
	e.GET("/artists/:id", h.ShowArtist)
	e.GET("/artists/:id/edit", h.EditArtistForm, write...)
	e.POST("/artists/:id/edit", h.EditArtist, write...)
	e.DELETE("/artists/:id", h.DeleteArtist, write...)

	e.GET("/shows", h.ListShows, read...)
	e.GET("/shows/create", h.CreateShowForm, write...)
	e.POST("/shows/create", h.CreateShow, write...)
	e.DELETE("/shows/:id", h.DeleteShow, write...)
}

// middlewares drops the disabled (nil) entries.
func middlewares(ms ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(ms))
	for _, m := range ms {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}
