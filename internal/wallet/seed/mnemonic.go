package seed

import (
	"crypto/sha512"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	pbkdf2Iterations = 2048 // BIP39 standard iterations
	pbkdf2KeyLength  = 64   // BIP39 standard key length (512 bits)
	saltPrefix       = "mnemonic"
)

// Normalize returns the NFKD form of the mnemonic with its words joined by single spaces.
// Validation and seed derivation both operate on this form.
func Normalize(mnemonic string) string {
	return strings.Join(strings.Fields(norm.NFKD.String(mnemonic)), " ")
}

// Validate checks the mnemonic against the English BIP39 word list and its checksum.
func Validate(mnemonic string) error {
	mnemonic = Normalize(mnemonic)
	if mnemonic == "" {
		return errors.Wrap(ErrInvalidMnemonic, "mnemonic is empty")
	}

	if _, err := bip39.EntropyFromMnemonic(mnemonic); err != nil {
		return errors.Wrapf(ErrInvalidMnemonic, "%v", err)
	}

	return nil
}

// FromMnemonic validates the mnemonic and converts it to a 64 byte seed.
// BIP39: seed = PBKDF2(NFKD(mnemonic), "mnemonic" + NFKD(passphrase), 2048, 64, SHA512)
func FromMnemonic(mnemonic string, passphrase string) ([]byte, error) {
	if err := Validate(mnemonic); err != nil {
		return nil, err
	}

	return pbkdf2.Key(
		[]byte(Normalize(mnemonic)),
		[]byte(saltPrefix+norm.NFKD.String(passphrase)),
		pbkdf2Iterations,
		pbkdf2KeyLength,
		sha512.New,
	), nil
}
