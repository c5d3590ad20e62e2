package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iliyamo/venue-booking/internal/render"
)

// NewHTTPErrorHandler renders the error pages.  Server errors are logged.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}
		if code >= 500 {
			log.Error().Err(err).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Msg("unhandled error")
		}

		var page string
		switch {
		case code == http.StatusNotFound || code == http.StatusMethodNotAllowed:
			code, page = http.StatusNotFound, "errors/404"
		case code == http.StatusTooManyRequests:
			page = "errors/429"
		case code >= 500:
			code, page = http.StatusInternalServerError, "errors/500"
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		if page != "" {
			rerr := c.Render(code, page, render.Page{Title: http.StatusText(code)})
			if rerr == nil {
				return
			}
			log.Error().Err(rerr).Str("page", page).Msg("render error page")
		}
		_ = c.String(code, http.StatusText(code))
	}
}
