package api_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/sign-oracle/internal/api"
	"github/chapool/sign-oracle/internal/test"
	"github/chapool/sign-oracle/internal/wallet/seed"
)

func TestInitNewServerInvalidMnemonic(t *testing.T) {
	for _, mnemonic := range []string{
		"",
		"test test test test test test test test test test test test",
		"hello world",
	} {
		t.Run(mnemonic, func(t *testing.T) {
			cfg := test.NewTestConfig(t)
			cfg.Wallet.Mnemonic = mnemonic

			s, err := api.InitNewServer(cfg)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, seed.ErrInvalidMnemonic))
		})
	}
}

func TestServerReady(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		assert.True(t, s.Ready())
	})

	s := api.NewServer(test.NewTestConfig(t))
	assert.False(t, s.Ready())
	require.Error(t, s.Start())
}

func TestShutdownClearsSeed(t *testing.T) {
	s := test.NewTestServer(t, test.NewTestConfig(t))
	require.True(t, s.Seed.IsInitialized())

	errs := s.Shutdown(t.Context())
	assert.Empty(t, errs)
	assert.False(t, s.Seed.IsInitialized())
}
