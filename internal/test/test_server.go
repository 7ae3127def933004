package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github/chapool/sign-oracle/internal/api"
	"github/chapool/sign-oracle/internal/api/router"
	"github/chapool/sign-oracle/internal/config"
)

const (
	// TestMnemonic is the well known development mnemonic, account 0 is TestOwner.
	//nolint:dupword // BIP39 test mnemonic repeats words
	TestMnemonic = "test test test test test test test test test test test junk"
	TestOwner    = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"

	TestManagementSecret = "mgmt-pass"
)

// WithTestServer returns a fully configured server (using the default server config)
// loaded with TestMnemonic.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, NewTestConfig(t), closure)
}

// WithTestServerConfigurable returns a fully configured server, allowing for configuration using the provided server config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	s := NewTestServer(t, config)

	closure(s)

	// echo is managed and should close automatically after running the test
	if errs := s.Shutdown(context.Background()); len(errs) > 0 {
		t.Fatalf("Failed to shutdown server: %v", errs)
	}
}

// NewTestConfig returns the default server config with the test mnemonic and management secret applied.
func NewTestConfig(t *testing.T) config.Server {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Wallet.Mnemonic = TestMnemonic
	cfg.Management.Secret = TestManagementSecret
	cfg.Management.ProbeWriteablePath = t.TempDir()
	cfg.Logger.PrettyPrintConsole = false

	return cfg
}

// NewTestServer returns an initialized server with all routes attached.
func NewTestServer(t *testing.T, config config.Server) *api.Server {
	t.Helper()

	s, err := api.InitNewServer(config)
	require.NoError(t, err, "failed to initialize server")

	err = router.Init(s)
	require.NoError(t, err, "failed to initialize router")

	return s
}
