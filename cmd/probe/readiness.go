package probe

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/sign-oracle/internal/api"
	"github/chapool/sign-oracle/internal/api/handlers/common"
	"github/chapool/sign-oracle/internal/config"
	"github/chapool/sign-oracle/internal/util/command"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long:  `Checks that the mnemonic is loaded and the wallet service can accept sign requests.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return errors.Wrapf(err, "failed to get %s flag", verboseFlag)
			}

			return runReadiness(cmd, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runReadiness(cmd *cobra.Command, verbose bool) error {
	config := config.DefaultServiceConfigFromEnv()

	return command.WithServer(cmd.Context(), config, func(ctx context.Context, s *api.Server) error {
		ctx, cancel := context.WithTimeout(ctx, config.Management.ReadinessTimeout)
		defer cancel()

		errs := common.ProbeReadiness(ctx, s)
		return reportProbe(cmd, "Readiness", errs, verbose)
	})
}
