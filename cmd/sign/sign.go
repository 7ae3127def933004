package sign

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github/chapool/sign-oracle/internal/types"
	"github/chapool/sign-oracle/internal/wallet"
	"github/chapool/sign-oracle/internal/wallet/address"
	"github/chapool/sign-oracle/internal/wallet/seed"
	"github/chapool/sign-oracle/internal/wallet/signer"
	"golang.org/x/term"
)

const (
	accountFlag = "account"
	messageFlag = "message"
	secretKey   = "secret"
)

// ErrNoMnemonic is returned when SECRET is unset and no terminal is available to prompt for it.
var ErrNoMnemonic = errors.New("SECRET is not set and stdin is not a terminal")

type options struct {
	Account int64  `mapstructure:"account"`
	Message string `mapstructure:"message"`
	Secret  string `mapstructure:"secret"`
}

func New() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Signs a message without starting the server",
		Long: `Derives the key of --account from the mnemonic in SECRET and prints the
personal_sign response as JSON.

Flags may also be set through SIGN_ACCOUNT and SIGN_MESSAGE.
If SECRET is unset the mnemonic is read from the terminal without echo.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindOptions(v, cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts options
			if err := v.Unmarshal(&opts); err != nil {
				return errors.Wrap(err, "failed to read sign options")
			}

			if len(strings.TrimSpace(opts.Secret)) == 0 {
				secret, err := promptMnemonic(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				opts.Secret = secret
			}

			return runSign(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Int64P(accountFlag, "a", 0, "Account id, the last segment of m/44'/60'/0'/0/{account} (0-65535)")
	cmd.Flags().StringP(messageFlag, "m", "", "Message to sign with the personal_sign prefix")

	return cmd
}

// bindOptions resolves flags first, then SIGN_ prefixed env. The mnemonic is only read from SECRET.
func bindOptions(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix("SIGN")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "failed to bind sign flags")
	}

	if err := v.BindEnv(secretKey, "SECRET"); err != nil {
		return errors.Wrapf(err, "failed to bind %s", secretKey)
	}

	return nil
}

func runSign(ctx context.Context, out io.Writer, opts options) error {
	payload := &types.PostSignPayload{
		AccountID: swag.Int64(opts.Account),
		Message:   swag.String(opts.Message),
	}

	if err := payload.Validate(strfmt.Default); err != nil {
		return errors.Wrap(err, "invalid sign options")
	}

	seedManager := seed.NewManager()
	defer seedManager.Clear()

	svc := wallet.NewService(seedManager, address.NewService(), signer.NewService())
	if err := wallet.InitializeWallet(ctx, seedManager, svc, opts.Secret); err != nil {
		return err
	}

	res, err := svc.SignMessage(ctx, wallet.SignRequestFromPayload(payload))
	if err != nil {
		return errors.Wrap(err, "failed to sign message")
	}

	b, err := swag.WriteJSON(res.ToTypes())
	if err != nil {
		return errors.Wrap(err, "failed to marshal sign response")
	}

	fmt.Fprintln(out, string(b))

	return nil
}

func promptMnemonic(prompt io.Writer) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit into int

	if !term.IsTerminal(fd) {
		return "", ErrNoMnemonic
	}

	fmt.Fprint(prompt, "Mnemonic: ")

	b, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", errors.Wrap(err, "failed to read mnemonic from terminal")
	}

	return string(b), nil
}
