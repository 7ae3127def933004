package api

import (
	"context"

	"github/chapool/sign-oracle/internal/config"
	"github/chapool/sign-oracle/internal/wallet"
	"github/chapool/sign-oracle/internal/wallet/address"
	"github/chapool/sign-oracle/internal/wallet/seed"
	"github/chapool/sign-oracle/internal/wallet/signer"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirements for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewWallet creates the wallet service and loads the mnemonic from the config into the seed manager.
// The server can't be created without a valid mnemonic.
//
//nolint:ireturn // wallet.Service is the injected dependency
func NewWallet(cfg config.Server, seedManager seed.Manager, addressService address.Service, signerService signer.Service) (wallet.Service, error) {
	walletService := wallet.NewService(seedManager, addressService, signerService)

	if err := wallet.InitializeWallet(context.Background(), seedManager, walletService, cfg.Wallet.Mnemonic); err != nil {
		return nil, err
	}

	return walletService, nil
}
