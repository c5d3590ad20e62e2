package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger writes one structured line per request.  Server errors are
// logged at error level, client errors at warn.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := statusOf(c, err)

			ev := log.Info()
			switch {
			case status >= 500:
				ev = log.Error().Err(err)
			case status >= 400:
				ev = log.Warn()
			}
			ev.Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("method", c.Request().Method).
				Str("route", c.Path()).
				Str("uri", c.Request().RequestURI).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request")
			return err
		}
	}
}
