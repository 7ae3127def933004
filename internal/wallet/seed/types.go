package seed

import "github.com/pkg/errors"

// ErrInvalidMnemonic is returned when a mnemonic fails BIP39 word list or checksum validation.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Manager holds the master mnemonic for the lifetime of the process
type Manager interface {
	// Initialize validates and stores the mnemonic (called once at startup)
	Initialize(mnemonic string) error

	// Seed derives a fresh BIP39 seed from the stored mnemonic
	// WARNING: Caller must clear the seed after use
	Seed() ([]byte, error)

	// IsInitialized checks if a mnemonic is loaded
	IsInitialized() bool

	// Clear drops the mnemonic from memory
	Clear()
}
