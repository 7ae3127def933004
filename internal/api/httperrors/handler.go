package httperrors

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/chapool/sign-oracle/internal/types"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

var (
	DefaultHTTPErrorHandlerConfig = HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: true,
	}
)

func HTTPErrorHandler(err error, c echo.Context) {
	HTTPErrorHandlerWithConfig(DefaultHTTPErrorHandlerConfig)(err, c)
}

func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		l := log.Ctx(c.Request().Context())
		if l.GetLevel() == zerolog.Disabled {
			l = &log.Logger
		}

		var he *HTTPError
		var hve *HTTPValidationError
		var ee *echo.HTTPError

		switch {
		case errors.As(err, &hve):
			he = &HTTPError{
				PublicHTTPError: hve.PublicHTTPError,
				Internal:        hve.Internal,
			}
		case errors.As(err, &he):
		case errors.As(err, &ee):
			he = NewFromEcho(ee)
			he.Internal = ee.Internal
		default:
			if walletErr := FromWalletError(err); walletErr != nil {
				he = walletErr
				break
			}

			he = NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
			he.Internal = err
			if !config.HideInternalServerErrorDetails {
				he.Detail = err.Error()
			}
		}

		code := int(*he.Code)

		if code >= http.StatusInternalServerError {
			l.Error().Err(err).Int("code", code).Msg("Internal server error")
		} else {
			l.Debug().Err(err).Int("code", code).Msg("Request failed")
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else if hve != nil {
			err = c.JSON(code, hve)
		} else {
			err = c.JSON(code, he)
		}

		if err != nil {
			l.Warn().Err(err).AnErr("http_err", he).Msg("Failed to handle HTTP error")
		}
	}
}
