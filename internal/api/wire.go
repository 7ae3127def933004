//go:build wireinject

package api

import (
	"github.com/google/wire"
	"github/chapool/sign-oracle/internal/config"
	"github/chapool/sign-oracle/internal/metrics"
	"github/chapool/sign-oracle/internal/wallet/address"
	"github/chapool/sign-oracle/internal/wallet/seed"
	"github/chapool/sign-oracle/internal/wallet/signer"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	walletServiceSet,
	metrics.New,
)

var walletServiceSet = wire.NewSet(
	seed.NewManager,
	address.NewService,
	signer.NewService,
	NewWallet,
)

// InitNewServer returns a new Server instance.
// It fails if the configured mnemonic is missing or invalid.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
