package address

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ErrDerivation is returned for malformed derivation paths and degenerate (zero or out of range) keys.
var ErrDerivation = errors.New("key derivation failed")

// Service provides BIP32/BIP44 key and address derivation
type Service interface {
	// DeriveAddress derives an address from seed and BIP44 path
	DeriveAddress(ctx context.Context, seed []byte, path string) (common.Address, error)

	// DerivePrivateKey derives a 32 byte private key from seed and BIP44 path
	// WARNING: Private key should be cleared after use
	DerivePrivateKey(ctx context.Context, seed []byte, path string) ([]byte, error)

	// PublicKey computes the secp256k1 public key for a private key
	PublicKey(privateKey []byte) (*ecdsa.PublicKey, error)

	// GetBIP44Path gets BIP44 path for an account (fixed format for EVM chains)
	GetBIP44Path(accountID uint16) string
}
