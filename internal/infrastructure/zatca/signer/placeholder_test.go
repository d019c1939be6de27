package signer_test

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador-zatca/internal/infrastructure/zatca/signer"
	"github.com/jhoicas/facturador-zatca/pkg/zatca"
)

func TestPlaceholderSigner_ConstantesCabenEnTLV(t *testing.T) {
	s, err := signer.NewPlaceholderSigner(base64.StdEncoding.DecodeString)
	require.NoError(t, err)

	hash, err := s.Hash([]byte("contenido"))
	require.NoError(t, err)
	sig, err := s.Sign([]byte("contenido"))
	require.NoError(t, err)

	assert.Len(t, hash, 64)
	assert.Len(t, s.PublicKey(), 91)
	for _, b := range [][]byte{hash, sig, s.PublicKey(), s.CertificateSignature()} {
		assert.NotEmpty(t, b)
		assert.LessOrEqual(t, len(b), zatca.MaxValueLength)
	}
}

// El material no depende del contenido firmado.
func TestPlaceholderSigner_IndependienteDelContenido(t *testing.T) {
	s, err := signer.NewPlaceholderSigner(base64.StdEncoding.DecodeString)
	require.NoError(t, err)

	a, _ := s.Sign([]byte("a"))
	b, _ := s.Sign([]byte("b"))
	assert.Equal(t, a, b)
}

func TestPlaceholderSigner_CopiaDefensiva(t *testing.T) {
	s, err := signer.NewPlaceholderSigner(base64.StdEncoding.DecodeString)
	require.NoError(t, err)

	pk := s.PublicKey()
	pk[0] ^= 0xFF
	assert.NotEqual(t, pk, s.PublicKey())
}

func TestPlaceholderSigner_ErrorDeDecodificacion(t *testing.T) {
	boom := errors.New("boom")
	_, err := signer.NewPlaceholderSigner(func(string) ([]byte, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}
