package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/chapool/sign-oracle/internal/util"
)

// RequestBodyLogSkipper defines a function to skip logging certain request bodies.
// Returning true skips logging the payload of the request.
type RequestBodyLogSkipper func(req *http.Request) bool

// DefaultRequestBodyLogSkipper returns true for all requests with Content-Type
// application/x-www-form-urlencoded or multipart/form-data as those might contain
// binary or URL-encoded file uploads unfit for logging purposes.
func DefaultRequestBodyLogSkipper(req *http.Request) bool {
	contentType := req.Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(contentType, echo.MIMEApplicationForm),
		strings.HasPrefix(contentType, echo.MIMEMultipartForm):
		return true
	default:
		return false
	}
}

type LoggerConfig struct {
	Skipper               middleware.Skipper
	Level                 zerolog.Level
	LogRequestBody        bool
	LogRequestHeader      bool
	LogRequestQuery       bool
	RequestBodyLogSkipper RequestBodyLogSkipper
}

var DefaultLoggerConfig = LoggerConfig{
	Skipper:               middleware.DefaultSkipper,
	Level:                 zerolog.DebugLevel,
	RequestBodyLogSkipper: DefaultRequestBodyLogSkipper,
}

func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(DefaultLoggerConfig)
}

// LoggerWithConfig attaches a request scoped zerolog logger (carrying the request id) to the
// request context and logs every request once it completed.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultLoggerConfig.Skipper
	}
	if config.RequestBodyLogSkipper == nil {
		config.RequestBodyLogSkipper = DefaultRequestBodyLogSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if len(id) == 0 {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			in := zerolog.Dict()

			if config.LogRequestBody && !config.RequestBodyLogSkipper(req) {
				reqBody, err := io.ReadAll(req.Body)
				if err != nil {
					log.Error().Err(err).Msg("Failed to read body while logging request")
					return err
				}

				req.Body = io.NopCloser(bytes.NewBuffer(reqBody))
				in.Bytes("body", reqBody)
			}

			if config.LogRequestHeader {
				header := zerolog.Dict()
				for k, v := range req.Header {
					header.Strs(k, v)
				}
				in.Dict("header", header)
			}

			if config.LogRequestQuery {
				query := zerolog.Dict()
				for k, v := range req.URL.Query() {
					query.Strs(k, v)
				}
				in.Dict("query", query)
			}

			le := log.With().
				Str("id", id).
				Str("host", req.Host).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Str("bytes_in", req.Header.Get(echo.HeaderContentLength)).
				Logger()

			ctx := le.WithContext(context.WithValue(req.Context(), util.CTXKeyRequestID, id))
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			stop := time.Now()

			lvl := config.Level
			if res.Status >= http.StatusInternalServerError {
				lvl = zerolog.ErrorLevel
			}

			le.WithLevel(lvl).
				Dict("in", in).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration_ms", stop.Sub(start)).
				Msg("Request handled")

			return nil
		}
	}
}
