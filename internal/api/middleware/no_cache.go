package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

var (
	epoch = time.Unix(0, 0).Format(time.RFC1123)

	noCacheHeaders = map[string]string{
		"Expires":         epoch,
		"Cache-Control":   "no-cache, no-store, no-transform, must-revalidate, private, max-age=0",
		"Pragma":          "no-cache",
		"X-Accel-Expires": "0",
	}
)

// NoCache sets response headers preventing clients and proxies from caching the response.
func NoCache() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for k, v := range noCacheHeaders {
				c.Response().Header().Set(k, v)
			}

			return next(c)
		}
	}
}
