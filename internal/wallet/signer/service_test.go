package signer_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/sign-oracle/internal/wallet/signer"
)

const (
	// account 0 of "test test test test test test test test test test test junk"
	testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestSignPersonalMessageKnownVectors(t *testing.T) {
	key, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	svc := signer.NewService()

	tests := []struct {
		name      string
		msg       string
		signature string
	}{
		{
			name:      "hello",
			msg:       "hello",
			signature: "0xf16ea9a3478698f695fd1401bfe27e9e4a7e8e3da94aa72b021125e31fa899cc573c48ea3fe1d4ab61a9db10c19032026e3ed2dbccba5a178235ac27f94504311c",
		},
		{
			name:      "empty",
			msg:       "",
			signature: "0xc1977b761f1dd36c29795783460d241885c8e7f9d962dbe7bba2753fd94e89b444a1cd9ed855dd09afa3b73f7c2bd097ec9abc2d2775d737505a02d3f0cafa591b",
		},
		{
			name:      "two byte rune",
			msg:       "é",
			signature: "0xe5c0d5a3ce3d97817179aabe1720b6d25c65c65023ac547457bee082033422db63550415307380aee595c071d1a10b6df433c118db45f805f7b1bcd5a02e5af41b",
		},
		{
			name:      "cjk",
			msg:       "日本語",
			signature: "0x822a8fae06ea153d899ab4e386c7cba58b416e9caf414f742ea635f07650d8f604980c9340c18c68539dcd745702d1f73aa3957bfd31afafcf75673383b736511b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := svc.SignPersonalMessage(key, []byte(tt.msg))
			require.NoError(t, err)
			assert.Equal(t, tt.signature, sig.Hex())

			recovered, err := svc.RecoverAddress([]byte(tt.msg), sig)
			require.NoError(t, err)
			assert.Equal(t, testAddress, recovered.Hex())
		})
	}
}

func TestSignPersonalMessageDeterministic(t *testing.T) {
	key, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	svc := signer.NewService()

	first, err := svc.SignPersonalMessage(key, []byte("deterministic"))
	require.NoError(t, err)
	second, err := svc.SignPersonalMessage(key, []byte("deterministic"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSignPersonalMessageLowSAndRecovery(t *testing.T) {
	svc := signer.NewService()
	halfOrder := new(big.Int).Rsh(crypto.S256().Params().N, 1)

	for i := range 32 {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		msg := []byte(fmt.Sprintf("message %d", i))
		sig, err := svc.SignPersonalMessage(key, msg)
		require.NoError(t, err)

		assert.LessOrEqual(t, sig.S().Cmp(halfOrder), 0, "s must be in the lower half of the curve order")
		assert.Contains(t, []byte{27, 28}, sig.V())

		recovered, err := svc.RecoverAddress(msg, sig)
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), recovered)

		// go-ethereum's own verifier agrees with the signature over the same digest
		digest := crypto.Keccak256([]byte(fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(msg), msg)))
		assert.True(t, crypto.VerifySignature(crypto.CompressPubkey(&key.PublicKey), digest, sig[:64]))
	}
}

func TestSignPersonalMessageNilKey(t *testing.T) {
	_, err := signer.NewService().SignPersonalMessage(nil, []byte("hello"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, signer.ErrSigning))
}

func TestRecoverAddressWrongMessage(t *testing.T) {
	key, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	svc := signer.NewService()
	sig, err := svc.SignPersonalMessage(key, []byte("hello"))
	require.NoError(t, err)

	recovered, err := svc.RecoverAddress([]byte("hello!"), sig)
	if err == nil {
		assert.NotEqual(t, common.HexToAddress(testAddress), recovered)
	}
}

func TestRecoverAddressRawRecoveryID(t *testing.T) {
	key, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	svc := signer.NewService()
	sig, err := svc.SignPersonalMessage(key, []byte("hello"))
	require.NoError(t, err)

	sig[64] -= signer.RecoveryIDOffset
	recovered, err := svc.RecoverAddress([]byte("hello"), sig)
	require.NoError(t, err)
	assert.Equal(t, testAddress, recovered.Hex())

	sig[64] = 30
	_, err = svc.RecoverAddress([]byte("hello"), sig)
	require.Error(t, err)
}

func TestSignatureFromHex(t *testing.T) {
	const encoded = "0xf16ea9a3478698f695fd1401bfe27e9e4a7e8e3da94aa72b021125e31fa899cc573c48ea3fe1d4ab61a9db10c19032026e3ed2dbccba5a178235ac27f94504311c"

	sig, err := signer.SignatureFromHex(encoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, sig.Hex())
	assert.Equal(t, encoded, sig.String())
	assert.Equal(t, byte(28), sig.V())
	assert.Equal(t, "f16ea9a3478698f695fd1401bfe27e9e4a7e8e3da94aa72b021125e31fa899cc", sig.R().Text(16))
	assert.Equal(t, "573c48ea3fe1d4ab61a9db10c19032026e3ed2dbccba5a178235ac27f9450431", sig.S().Text(16))

	for _, invalid := range []string{"", "0x", "f16e", "0x1234", "0xzz", encoded + "00"} {
		_, err := signer.SignatureFromHex(invalid)
		assert.Error(t, err, invalid)
	}
}
