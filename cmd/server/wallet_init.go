package server

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/sign-oracle/internal/api"
	"github/chapool/sign-oracle/internal/wallet"
)

// verifyWallet runs a sign and recover round trip on the verification account before the router accepts traffic.
func verifyWallet(ctx context.Context, s *api.Server) error {
	if s.Wallet == nil {
		return errors.New("wallet service is not initialized")
	}

	if err := wallet.SelfTest(ctx, s.Wallet); err != nil {
		return errors.Wrap(err, "wallet self-test failed")
	}

	log.Info().
		Uint16("account_id", wallet.VerificationAccountID).
		Msg("Wallet self-test passed")

	return nil
}
