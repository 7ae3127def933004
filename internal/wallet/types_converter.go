package wallet

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-openapi/swag"
	"github/chapool/sign-oracle/internal/types"
	"github/chapool/sign-oracle/internal/wallet/signer"
)

// OwnerHex encodes an address as 0x prefixed lowercase hex (no EIP-55 checksum)
func OwnerHex(addr common.Address) string {
	return hexutil.Encode(addr.Bytes())
}

// SignRequestFromPayload converts a validated PostSignPayload
func SignRequestFromPayload(payload *types.PostSignPayload) *SignRequest {
	return &SignRequest{
		//nolint:gosec // range checked by payload validation
		AccountID: uint16(swag.Int64Value(payload.AccountID)),
		Message:   swag.StringValue(payload.Message),
	}
}

// VerifyRequestFromPayload converts a validated PostVerifyPayload
func VerifyRequestFromPayload(payload *types.PostVerifyPayload) (*VerifyRequest, error) {
	sig, err := signer.SignatureFromHex(swag.StringValue(payload.Signature))
	if err != nil {
		return nil, err
	}

	return &VerifyRequest{
		Owner:     common.HexToAddress(swag.StringValue(payload.Owner)),
		Message:   swag.StringValue(payload.Message),
		Signature: sig,
	}, nil
}

// ToTypes converts SignResponse to types.SignResponse
func (r *SignResponse) ToTypes() *types.SignResponse {
	return &types.SignResponse{
		Owner:     swag.String(OwnerHex(r.Owner)),
		Message:   swag.String(r.Message),
		Signature: swag.String(r.Signature.Hex()),
	}
}

// ToTypes converts VerifyResponse to types.VerifyResponse
func (r *VerifyResponse) ToTypes() *types.VerifyResponse {
	return &types.VerifyResponse{
		Recovered: swag.String(OwnerHex(r.Recovered)),
		Valid:     swag.Bool(r.Valid),
	}
}

// AddressToTypes builds the response for a derived account address
func AddressToTypes(accountID uint16, owner common.Address) *types.AddressResponse {
	return &types.AddressResponse{
		AccountID: swag.Int64(int64(accountID)),
		Owner:     swag.String(OwnerHex(owner)),
	}
}
