package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/sign-oracle/internal/config"
)

func TestPrintServiceEnv(t *testing.T) {
	config := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestSecretsNotMarshalled(t *testing.T) {
	//nolint:dupword // BIP39 test mnemonic repeats words
	t.Setenv("SECRET", "test test test test test test test test test test test junk")
	t.Setenv("SERVER_MANAGEMENT_SECRET", "mgmt-pass")

	cfg := config.DefaultServiceConfigFromEnv()
	require.NotEmpty(t, cfg.Wallet.Mnemonic)
	assert.Equal(t, "mgmt-pass", cfg.Management.Secret)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "junk")
	assert.NotContains(t, string(out), "mgmt-pass")
}

func TestDefaultCORSPolicy(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()

	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, []string{"POST", "OPTIONS"}, cfg.CORS.AllowMethods)
	assert.Contains(t, cfg.CORS.AllowHeaders, "Content-Type")
	assert.Contains(t, cfg.CORS.AllowHeaders, "Sec-Fetch-Mode")
}

func TestDotEnvLoad(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, os.WriteFile(envFile, []byte("SERVER_ECHO_LISTEN_ADDRESS=127.0.0.1:4040\nSERVER_ECHO_DEBUG=true\n"), 0o600))

	require.NoError(t, config.DotEnvLoad(envFile, func(k, v string) error {
		t.Setenv(k, v)
		return nil
	}))

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, "127.0.0.1:4040", cfg.Echo.ListenAddress)
	assert.True(t, cfg.Echo.Debug)
}

func TestDotEnvLoadMissingFile(t *testing.T) {
	err := config.DotEnvLoad(filepath.Join(t.TempDir(), "missing.env"), func(string, string) error { return nil })
	require.ErrorIs(t, err, os.ErrNotExist)

	// must not panic
	config.DotEnvTryLoad(filepath.Join(t.TempDir(), "missing.env"), func(string, string) error { return nil })
}
