package sign

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/sign-oracle/internal/api"
	"github/chapool/sign-oracle/internal/api/httperrors"
	"github/chapool/sign-oracle/internal/types"
	"github/chapool/sign-oracle/internal/util"
	"github/chapool/sign-oracle/internal/wallet"
)

func PostVerifyRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/verify", postVerifyHandler(s))
}

// Recovers the signer of a personal_sign signature and compares it to owner.
func postVerifyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostVerifyPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		req, err := wallet.VerifyRequestFromPayload(&body)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to decode signature")
			return httperrors.ErrBadRequestInvalidSignature
		}

		res, err := s.Wallet.VerifyMessage(ctx, req)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to verify message")
			if he := httperrors.FromWalletError(err); he != nil {
				return he
			}
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, res.ToTypes())
	}
}
