package probe

import (
	"github.com/spf13/cobra"
	"github/chapool/sign-oracle/internal/util/command"
)

const (
	verboseFlag string = "verbose"
)

func New() *cobra.Command {
	cmd := command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)

	cmd.Long = `Runs the management probes without starting the HTTP server.

Both probes load SECRET and exit non-zero when the oracle could not serve sign requests:
readiness checks that the mnemonic is loaded, liveness signs and recovers a probe message.`

	return cmd
}
