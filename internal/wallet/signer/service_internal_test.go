package signer

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignDigestLength(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	for _, size := range []int{0, 31, 33, 64} {
		_, err := signDigest(make([]byte, size), key)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSigning))
	}

	sig, err := signDigest(make([]byte, digestLength), key)
	require.NoError(t, err)
	assert.Contains(t, []byte{27, 28}, sig.V())
}
