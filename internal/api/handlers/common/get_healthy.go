package common

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github/chapool/sign-oracle/internal/api"
	"github/chapool/sign-oracle/internal/util"
	"github/chapool/sign-oracle/internal/wallet"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s), middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "query:mgmt-secret",
		Validator: func(key string, _ echo.Context) (bool, error) {
			return key == s.Config.Management.Secret, nil
		},
	}))
}

// Health check
// Returns an human readable string about the current service status.
// In addition to readiness probes, it signs and recovers a probe message with the
// verification account and checks that the probe path is writeable.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(StatusNotReady, "Not ready.")
		}

		var str strings.Builder
		fmt.Fprintln(&str, "Ready.")

		// Feel free to put further checks here
		readinessCtx, readinessCancel := context.WithTimeout(c.Request().Context(), s.Config.Management.ReadinessTimeout)
		defer readinessCancel()

		readinessErrs := ProbeReadiness(readinessCtx, s)
		if len(readinessErrs) > 0 {
			for _, err := range readinessErrs {
				fmt.Fprintln(&str, err.Error())
			}

			return c.String(StatusNotReady, str.String())
		}

		livenessCtx, livenessCancel := context.WithTimeout(c.Request().Context(), s.Config.Management.LivenessTimeout)
		defer livenessCancel()

		livenessErrs := ProbeLiveness(livenessCtx, s)
		if len(livenessErrs) > 0 {
			for _, err := range livenessErrs {
				fmt.Fprintln(&str, err.Error())
			}

			return c.String(StatusNotReady, str.String())
		}

		fmt.Fprintln(&str, "Probes succeeded.")

		return c.String(http.StatusOK, str.String())
	}
}

// ProbeReadiness checks the components required to accept sign requests.
func ProbeReadiness(ctx context.Context, s *api.Server) []error {
	log := util.LogFromContext(ctx)

	var errs []error

	if s.Seed == nil || !s.Seed.IsInitialized() {
		errs = append(errs, errors.New("readiness: seed manager holds no mnemonic"))
	}

	if s.Wallet == nil {
		errs = append(errs, errors.New("readiness: wallet service is not initialized"))
	}

	if len(errs) > 0 {
		log.Warn().Errs("errs", errs).Msg("Readiness probe failed")
	}

	return errs
}

// ProbeLiveness signs and recovers a probe message and touches a file in the configured writeable path.
func ProbeLiveness(ctx context.Context, s *api.Server) []error {
	log := util.LogFromContext(ctx)

	var errs []error

	if s.Wallet != nil {
		if err := wallet.SelfTest(ctx, s.Wallet); err != nil {
			errs = append(errs, errors.Wrap(err, "liveness: signing self-test failed"))
		}
	}

	if err := ctx.Err(); err != nil {
		errs = append(errs, errors.Wrap(err, "liveness: self-test timed out"))
	}

	if len(s.Config.Management.ProbeWriteablePath) > 0 {
		if err := probeWriteable(s.Config.Management.ProbeWriteablePath); err != nil {
			errs = append(errs, errors.Wrapf(err, "liveness: path %s is not writeable", s.Config.Management.ProbeWriteablePath))
		}
	}

	if len(errs) > 0 {
		log.Warn().Errs("errs", errs).Msg("Liveness probe failed")
	}

	return errs
}

func probeWriteable(dir string) error {
	f, err := os.CreateTemp(filepath.Clean(dir), ".sign-oracle-probe-*")
	if err != nil {
		return err
	}

	name := f.Name()
	if err := f.Close(); err != nil {
		return err
	}

	return os.Remove(name)
}
