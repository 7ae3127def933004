package signer

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

const (
	// SignatureLength is r (32) || s (32) || v (1)
	SignatureLength = 65
	// RecoveryIDOffset is the legacy Ethereum offset applied to the recovery id (27/28).
	RecoveryIDOffset = 27
)

// ErrSigning is returned when an internal signing invariant is violated.
var ErrSigning = errors.New("signing failed")

// Service provides personal message signing functionality
type Service interface {
	// SignPersonalMessage signs msg with the EIP-191 personal_sign prefix
	SignPersonalMessage(privateKey *ecdsa.PrivateKey, msg []byte) (Signature, error)

	// RecoverAddress recovers the address that produced a personal_sign signature over msg
	RecoverAddress(msg []byte, sig Signature) (common.Address, error)
}

// Signature is a 65 byte recoverable secp256k1 signature with v in {27, 28}.
type Signature [SignatureLength]byte

// SignatureFromHex decodes a 0x prefixed hex signature.
func SignatureFromHex(s string) (Signature, error) {
	var sig Signature

	raw, err := hexutil.Decode(s)
	if err != nil {
		return sig, errors.Wrap(err, "invalid signature hex")
	}

	if len(raw) != SignatureLength {
		return sig, errors.Errorf("signature must be %d bytes, got %d", SignatureLength, len(raw))
	}

	copy(sig[:], raw)
	return sig, nil
}

func (s Signature) R() *big.Int { return new(big.Int).SetBytes(s[:32]) }
func (s Signature) S() *big.Int { return new(big.Int).SetBytes(s[32:64]) }
func (s Signature) V() byte     { return s[64] }

// Hex returns the 0x prefixed lowercase hex encoding.
func (s Signature) Hex() string {
	return hexutil.Encode(s[:])
}

func (s Signature) String() string {
	return s.Hex()
}
