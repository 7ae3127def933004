package signer

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/sign-oracle/internal/wallet/address"
	"github/chapool/sign-oracle/internal/wallet/hash"
)

const digestLength = 32

type service struct{}

// NewService creates a new signer Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService() Service {
	return &service{}
}

// SignPersonalMessage signs keccak256("\x19Ethereum Signed Message:\n" + len(msg) + msg)
func (s *service) SignPersonalMessage(privateKey *ecdsa.PrivateKey, msg []byte) (Signature, error) {
	if privateKey == nil {
		return Signature{}, errors.Wrap(ErrSigning, "private key is nil")
	}

	digest := hash.PersonalMessageDigest(msg)

	return signDigest(digest[:], privateKey)
}

// signDigest produces an RFC 6979 deterministic recoverable signature over a 32 byte digest.
func signDigest(digest []byte, privateKey *ecdsa.PrivateKey) (Signature, error) {
	var sig Signature

	if len(digest) != digestLength {
		return sig, errors.Wrapf(ErrSigning, "digest must be %d bytes, got %d", digestLength, len(digest))
	}

	// Returns [R || S || V] with V as the 0/1 recovery id
	raw, err := crypto.Sign(digest, privateKey)
	if err != nil {
		return sig, errors.Wrapf(ErrSigning, "failed to sign digest: %v", err)
	}

	if len(raw) != SignatureLength {
		return sig, errors.Wrapf(ErrSigning, "unexpected signature length %d", len(raw))
	}

	copy(sig[:], raw)
	clear(raw)

	// Homestead rules: r, s in [1, n) and s <= n/2
	if !crypto.ValidateSignatureValues(sig[64], sig.R(), sig.S(), true) {
		return Signature{}, errors.Wrap(ErrSigning, "signature is not in canonical low-s form")
	}

	// Ethereum expects V to be 27 or 28 (not 0 or 1)
	sig[64] += RecoveryIDOffset

	return sig, nil
}

// RecoverAddress recovers the signer of a personal_sign signature.
// Both the 27/28 and the raw 0/1 recovery id encodings are accepted.
func (s *service) RecoverAddress(msg []byte, sig Signature) (common.Address, error) {
	// Create a copy of the signature to avoid modifying the original
	raw := make([]byte, SignatureLength)
	copy(raw, sig[:])

	// Normalize V value to 0 or 1 for recovery
	if raw[64] >= RecoveryIDOffset {
		raw[64] -= RecoveryIDOffset
	}

	if raw[64] > 1 {
		return common.Address{}, errors.Errorf("invalid recovery id %d", sig.V())
	}

	digest := hash.PersonalMessageDigest(msg)

	pubKey, err := crypto.SigToPub(digest[:], raw)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "signature recovery failed")
	}

	return address.FromPublicKey(pubKey), nil
}
