package probe

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/sign-oracle/internal/api"
	"github/chapool/sign-oracle/internal/api/handlers/common"
	"github/chapool/sign-oracle/internal/config"
	"github/chapool/sign-oracle/internal/util/command"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `Signs and recovers a probe message with the configured mnemonic
and checks that the probe writeable path accepts files.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return errors.Wrapf(err, "failed to get %s flag", verboseFlag)
			}

			return runLiveness(cmd, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runLiveness(cmd *cobra.Command, verbose bool) error {
	config := config.DefaultServiceConfigFromEnv()

	return command.WithServer(cmd.Context(), config, func(ctx context.Context, s *api.Server) error {
		ctx, cancel := context.WithTimeout(ctx, config.Management.LivenessTimeout)
		defer cancel()

		errs := common.ProbeLiveness(ctx, s)
		return reportProbe(cmd, "Liveness", errs, verbose)
	})
}

func reportProbe(cmd *cobra.Command, name string, errs []error, verbose bool) error {
	if len(errs) > 0 {
		if verbose {
			for _, err := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
			}
		}

		return errors.Errorf("%s probes failed", name)
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%s probes succeeded.\n", name)
	}

	return nil
}
