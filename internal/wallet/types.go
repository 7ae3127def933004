package wallet

import (
	"github.com/ethereum/go-ethereum/common"
	"github/chapool/sign-oracle/internal/wallet/signer"
)

// SignRequest asks for message to be signed by the key of account AccountID
type SignRequest struct {
	AccountID uint16
	Message   string
}

// SignResponse carries the signer address, the echoed message and the signature
type SignResponse struct {
	AccountID uint16
	Owner     common.Address
	Message   string
	Signature signer.Signature
}

// VerifyRequest checks whether Signature over Message was produced by Owner
type VerifyRequest struct {
	Owner     common.Address
	Message   string
	Signature signer.Signature
}

type VerifyResponse struct {
	Recovered common.Address
	Valid     bool
}
