package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/sign-oracle/internal/api"
	"github/chapool/sign-oracle/internal/test"
	"github/chapool/sign-oracle/internal/util/command"
	"github/chapool/sign-oracle/internal/wallet"
)

func TestWithServer(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		ctx := t.Context()

		var testError = errors.New("test error")

		s.Config.Logger.PrettyPrintConsole = false
		resultErr := command.WithServer(ctx, s.Config, func(ctx context.Context, s *api.Server) error {
			addr, err := s.Wallet.Address(ctx, wallet.VerificationAccountID)
			require.NoError(t, err)

			assert.Equal(t, test.TestOwner, wallet.OwnerHex(addr))

			return testError
		})

		assert.Equal(t, testError, resultErr)
	})
}

func TestWithServerInvalidMnemonic(t *testing.T) {
	cfg := test.NewTestConfig(t)
	cfg.Wallet.Mnemonic = "not a mnemonic"

	called := false
	err := command.WithServer(t.Context(), cfg, func(_ context.Context, _ *api.Server) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}

func TestNewSubcommandGroup(t *testing.T) {
	child := &cobra.Command{Use: "child"}
	group := command.NewSubcommandGroup("parent", child)

	assert.Equal(t, "parent <subcommand>", group.Use)
	assert.Len(t, group.Commands(), 1)
}
