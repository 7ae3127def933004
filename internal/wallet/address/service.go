package address

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/sign-oracle/internal/wallet/hash"
)

const (
	privateKeyLength = 32
	// BIP44Template is m / purpose' / coin_type' / account' / change / address_index
	BIP44Template = "m/44'/60'/0'/0/%d"
)

type service struct{}

// NewService creates a new address Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService() Service {
	return &service{}
}

// GetBIP44Path gets BIP44 path (fixed format for EVM chains)
// Format: m/44'/60'/0'/0/{accountID}
func (s *service) GetBIP44Path(accountID uint16) string {
	return fmt.Sprintf(BIP44Template, accountID)
}

// PublicKey computes the public key for a 32 byte private key.
func (s *service) PublicKey(privateKey []byte) (*ecdsa.PublicKey, error) {
	if len(privateKey) != privateKeyLength {
		return nil, errors.Wrapf(ErrDerivation, "private key must be %d bytes, got %d", privateKeyLength, len(privateKey))
	}

	// ToECDSA rejects zero and out of range scalars
	ecdsaPrivateKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrapf(ErrDerivation, "invalid private key: %v", err)
	}

	return &ecdsaPrivateKey.PublicKey, nil
}

// FromPublicKey computes the Ethereum address of a public key: the last 20 bytes of the
// Keccak-256 hash of the uncompressed X || Y coordinates.
func FromPublicKey(pub *ecdsa.PublicKey) common.Address {
	// 0x04 || X || Y
	uncompressed := crypto.FromECDSAPub(pub)
	digest := hash.Keccak256(uncompressed[1:])

	return common.BytesToAddress(digest[len(digest)-common.AddressLength:])
}
