package wallet

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/sign-oracle/internal/util"
	"github/chapool/sign-oracle/internal/wallet/address"
	"github/chapool/sign-oracle/internal/wallet/seed"
	"github/chapool/sign-oracle/internal/wallet/signer"
)

// Service signs personal messages with keys derived from the master secret
type Service interface {
	// SignMessage derives the key of req.AccountID and signs req.Message with it
	SignMessage(ctx context.Context, req *SignRequest) (*SignResponse, error)

	// Address derives the address of accountID without signing anything
	Address(ctx context.Context, accountID uint16) (common.Address, error)

	// VerifyMessage recovers the signer of a personal_sign signature and compares it to req.Owner
	VerifyMessage(ctx context.Context, req *VerifyRequest) (*VerifyResponse, error)
}

type service struct {
	seedManager    seed.Manager
	addressService address.Service
	signerService  signer.Service
}

// NewService creates a new wallet Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(seedManager seed.Manager, addressService address.Service, signerService signer.Service) Service {
	return &service{
		seedManager:    seedManager,
		addressService: addressService,
		signerService:  signerService,
	}
}

func (s *service) SignMessage(ctx context.Context, req *SignRequest) (*SignResponse, error) {
	if req == nil {
		return nil, errors.Wrap(signer.ErrSigning, "sign request is nil")
	}

	log := util.LogFromContext(ctx).With().
		Str("component", "wallet").
		Uint16("account_id", req.AccountID).
		Logger()

	seedBytes, err := s.seedManager.Seed()
	if err != nil {
		return nil, err
	}
	defer clear(seedBytes)

	path := s.addressService.GetBIP44Path(req.AccountID)

	keyBytes, err := s.addressService.DerivePrivateKey(ctx, seedBytes, path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("Failed to derive private key")
		return nil, err
	}
	defer clear(keyBytes)

	privateKey, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, errors.Wrapf(address.ErrDerivation, "invalid private key: %v", err)
	}
	defer privateKey.D.SetInt64(0)

	owner := address.FromPublicKey(&privateKey.PublicKey)

	sig, err := s.signerService.SignPersonalMessage(privateKey, []byte(req.Message))
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign message")
		return nil, err
	}

	log.Debug().Str("owner", owner.Hex()).Int("message_bytes", len(req.Message)).Msg("Message signed")

	return &SignResponse{
		AccountID: req.AccountID,
		Owner:     owner,
		Message:   req.Message,
		Signature: sig,
	}, nil
}

func (s *service) Address(ctx context.Context, accountID uint16) (common.Address, error) {
	seedBytes, err := s.seedManager.Seed()
	if err != nil {
		return common.Address{}, err
	}
	defer clear(seedBytes)

	return s.addressService.DeriveAddress(ctx, seedBytes, s.addressService.GetBIP44Path(accountID))
}

func (s *service) VerifyMessage(ctx context.Context, req *VerifyRequest) (*VerifyResponse, error) {
	if req == nil {
		return nil, errors.Wrap(signer.ErrSigning, "verify request is nil")
	}

	recovered, err := s.signerService.RecoverAddress([]byte(req.Message), req.Signature)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("component", "wallet").Msg("Failed to recover signer")
		return nil, errors.Wrap(signer.ErrSigning, err.Error())
	}

	return &VerifyResponse{
		Recovered: recovered,
		Valid:     recovered == req.Owner,
	}, nil
}
