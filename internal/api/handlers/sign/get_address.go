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

func GetAddressRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/address/:accountId", getAddressHandler(s))
}

func getAddressHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		params := types.NewGetAddressRouteParams()
		if err := util.BindAndValidatePathParams(c, &params); err != nil {
			return err
		}

		//nolint:gosec // range checked by params validation
		accountID := uint16(params.AccountID)

		owner, err := s.Wallet.Address(ctx, accountID)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to derive address")
			if he := httperrors.FromWalletError(err); he != nil {
				return he
			}
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, wallet.AddressToTypes(accountID, owner))
	}
}
