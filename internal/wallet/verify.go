package wallet

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/sign-oracle/internal/util"
)

// SelfTestMessage is signed and recovered by SelfTest
const SelfTestMessage = "sign-oracle self-test"

// SelfTest signs SelfTestMessage with the verification account and checks
// that the recovered signer matches the derived address.
func SelfTest(ctx context.Context, svc Service) error {
	log := util.LogFromContext(ctx).With().Str("component", "self_test").Logger()

	res, err := svc.SignMessage(ctx, &SignRequest{
		AccountID: VerificationAccountID,
		Message:   SelfTestMessage,
	})
	if err != nil {
		return errors.Wrap(err, "failed to sign self-test message")
	}

	verified, err := svc.VerifyMessage(ctx, &VerifyRequest{
		Owner:     res.Owner,
		Message:   res.Message,
		Signature: res.Signature,
	})
	if err != nil {
		return errors.Wrap(err, "failed to verify self-test signature")
	}

	if !verified.Valid {
		log.Warn().
			Str("expected", res.Owner.Hex()).
			Str("recovered", verified.Recovered.Hex()).
			Msg("Self-test failed: recovered address does not match")
		return errors.New("self-test signature recovered to a different address")
	}

	return nil
}
