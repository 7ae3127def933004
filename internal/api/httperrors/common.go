package httperrors

import (
	"net/http"

	"github.com/pkg/errors"
	"github/chapool/sign-oracle/internal/types"
	"github/chapool/sign-oracle/internal/wallet/address"
	"github/chapool/sign-oracle/internal/wallet/seed"
	"github/chapool/sign-oracle/internal/wallet/signer"
)

var (
	ErrBadRequestSignRequestFailed = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeSIGNREQUESTFAILED, "Sign request failed.")
	ErrBadRequestInvalidSignature  = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDPAYLOAD, "Signature is not a 65 byte hex string.")
)

// FromWalletError maps key derivation and signing failures to a client error.
// Clients get the same response regardless of which stage failed.
// Returns nil if err is not a wallet error.
func FromWalletError(err error) *HTTPError {
	if errors.Is(err, seed.ErrInvalidMnemonic) ||
		errors.Is(err, address.ErrDerivation) ||
		errors.Is(err, signer.ErrSigning) {
		he := NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeSIGNREQUESTFAILED, *ErrBadRequestSignRequestFailed.Title)
		he.Internal = err
		return he
	}

	return nil
}
