package address

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
)

// DeriveAddress derives an EVM address from seed and BIP44 path
func (s *service) DeriveAddress(ctx context.Context, seed []byte, path string) (common.Address, error) {
	// Derive private key from seed and path
	privateKey, err := s.DerivePrivateKey(ctx, seed, path)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "failed to derive private key")
	}

	// Clear private key after use
	defer clear(privateKey)

	publicKey, err := s.PublicKey(privateKey)
	if err != nil {
		return common.Address{}, err
	}

	return FromPublicKey(publicKey), nil
}

// DerivePrivateKey derives a private key from seed and BIP44 path
// WARNING: Caller must clear the private key after use
func (s *service) DerivePrivateKey(_ context.Context, seed []byte, path string) ([]byte, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	// Create master key from seed: HMAC-SHA512(key="Bitcoin seed", data=seed)
	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrapf(ErrDerivation, "failed to create master key: %v", err)
	}

	derivedKey, err := deriveKeyFromPath(masterKey, indices)
	if err != nil {
		return nil, err
	}

	if len(derivedKey.Key) != privateKeyLength {
		clear(derivedKey.Key)
		return nil, errors.Wrapf(ErrDerivation, "derived key has unexpected length %d", len(derivedKey.Key))
	}

	// Return private key (32 bytes)
	return derivedKey.Key, nil
}

// deriveKeyFromPath walks the path one child at a time, clearing every parent key once its child exists.
// Indices at or above bip32.FirstHardenedChild use hardened derivation.
func deriveKeyFromPath(masterKey *bip32.Key, indices accounts.DerivationPath) (*bip32.Key, error) {
	key := masterKey
	for _, index := range indices {
		child, err := key.NewChildKey(index)
		clear(key.Key)
		if err != nil {
			return nil, errors.Wrapf(ErrDerivation, "failed to derive child key at index %d: %v", index, err)
		}
		key = child
	}

	return key, nil
}

// ParsePath parses an absolute BIP32 path such as "m/44'/60'/0'/0/7".
// Relative paths are rejected.
func ParsePath(path string) (accounts.DerivationPath, error) {
	if !strings.HasPrefix(path, "m/") {
		return nil, errors.Wrapf(ErrDerivation, "invalid BIP44 path %q: must start with m/", path)
	}

	indices, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return nil, errors.Wrapf(ErrDerivation, "invalid BIP44 path %q: %v", path, err)
	}

	return indices, nil
}
