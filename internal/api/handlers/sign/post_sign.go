package sign

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github/chapool/sign-oracle/internal/api"
	"github/chapool/sign-oracle/internal/api/httperrors"
	"github/chapool/sign-oracle/internal/types"
	"github/chapool/sign-oracle/internal/util"
	"github/chapool/sign-oracle/internal/wallet"
)

func PostSignRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/sign", postSignHandler(s))
}

// Signs message with the key of account accountId (m/44'/60'/0'/0/{accountId}).
// The message is echoed back verbatim next to the signer address and the signature.
func postSignHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSignPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		start := time.Now()
		res, err := s.Wallet.SignMessage(ctx, wallet.SignRequestFromPayload(&body))
		s.Metrics.ObserveSign(time.Since(start).Seconds(), err)

		if err != nil {
			log.Debug().Err(err).Msg("Failed to sign message")
			if he := httperrors.FromWalletError(err); he != nil {
				return he
			}
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, res.ToTypes())
	}
}
