package wallet

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/sign-oracle/internal/util"
	"github/chapool/sign-oracle/internal/wallet/seed"
)

// VerificationAccountID is the account derived at startup and by the self-test
const VerificationAccountID uint16 = 0

// InitializeWallet loads the master secret into seedManager and logs the
// address of the verification account. An invalid mnemonic is fatal.
func InitializeWallet(ctx context.Context, seedManager seed.Manager, svc Service, mnemonic string) error {
	log := util.LogFromContext(ctx).With().Str("component", "wallet_init").Logger()

	if err := seedManager.Initialize(mnemonic); err != nil {
		return errors.Wrap(err, "failed to initialize seed manager")
	}

	owner, err := svc.Address(ctx, VerificationAccountID)
	if err != nil {
		seedManager.Clear()
		return errors.Wrap(err, "failed to derive verification address")
	}

	log.Info().
		Str("address", owner.Hex()).
		Uint16("account_id", VerificationAccountID).
		Msg("Wallet initialized")

	return nil
}
