package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/sign-oracle/cmd/env"
	"github/chapool/sign-oracle/cmd/probe"
	"github/chapool/sign-oracle/cmd/server"
	"github/chapool/sign-oracle/cmd/sign"
	"github/chapool/sign-oracle/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

A stateless personal_sign oracle written in Go.
Derives m/44'/60'/0'/0/{accountId} keys from a single BIP39 mnemonic.
Requires configuration through ENV (SECRET holds the mnemonic).`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		env.New(),
		probe.New(),
		server.New(),
		sign.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
