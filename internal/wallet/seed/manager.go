package seed

import (
	"sync"

	"github.com/pkg/errors"
)

// bip39Passphrase is fixed: the mnemonic is the only secret factor.
const bip39Passphrase = ""

// manager implements seed management with thread-safe access
type manager struct {
	mnemonic    string
	mu          sync.RWMutex
	initialized bool
}

// NewManager creates a new seed Manager
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewManager() Manager {
	return &manager{
		mnemonic:    "",
		initialized: false,
	}
}

// Initialize validates the mnemonic and keeps it in memory.
// The mnemonic is immutable afterwards; a second call is rejected.
func (m *manager) Initialize(mnemonic string) error {
	if err := Validate(mnemonic); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return errors.New("seed manager already initialized")
	}

	m.mnemonic = Normalize(mnemonic)
	m.initialized = true

	return nil
}

// Seed derives the BIP39 seed from the stored mnemonic.
// A new slice is returned on every call so it can be cleared by the caller.
func (m *manager) Seed() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return nil, errors.New("seed not initialized")
	}

	return FromMnemonic(m.mnemonic, bip39Passphrase)
}

// IsInitialized checks if seed is initialized
func (m *manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}

// Clear drops the mnemonic from memory
func (m *manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mnemonic = ""
	m.initialized = false
}
