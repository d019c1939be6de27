// Material criptográfico fijo para los tags 6 a 9 del QR ZATCA.
// No se deriva del contenido de la factura; sirve hasta contar con un certificado real.

package signer

import (
	"fmt"

	"github.com/jhoicas/facturador-zatca/pkg/zatca"
)

// Valores Base64 del material de ejemplo.
const (
	PlaceholderXMLHash              = "NWU3OThkYTk4YTMzN2Y5ZDU3MTQwM2FkYWFhY2I3MDU3N2ZjMGU2YjM4MDI2YmMwN2Q1Y2E4ODc4ZDZjMjU2NQ=="
	PlaceholderPublicKey            = "MFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAEU6G0iBS4D48AMs7nGY2a6g3vQdFw+3Q+s9lPzVPxRODPLv7flz5rDs2Pwb2aeVIzPMNL2dJNv/MflR+7dB41eQ=="
	PlaceholderSignature            = "MEQCIE3QRrvp4P8C5eTRbQUK1pS2zBv4NaRaODf2V5c+n4yDAiAhAMuB+I2kYSPVzX2w56tnl5jK1ySFyCD+cjO8Q+c2PA=="
	PlaceholderCertificateSignature = "MEQCIAYga533L53xhED3T5tS4aUn7c5moIM3tT5i+5T0NKT/AiA11jYjB2qK2RoJGzU6bvrslk/3QcZtV2p1w+arBv4zEA=="
)

// Verificar en tiempo de compilación que PlaceholderSigner implementa zatca.Signer.
var _ zatca.Signer = (*PlaceholderSigner)(nil)

// PlaceholderSigner implementa zatca.Signer devolviendo siempre los mismos bytes.
type PlaceholderSigner struct {
	xmlHash   []byte
	signature []byte
	publicKey []byte
	certSig   []byte
}

// NewPlaceholderSigner decodifica las constantes con la función recibida (normalmente Codec.DecodeString).
func NewPlaceholderSigner(decode func(string) ([]byte, error)) (*PlaceholderSigner, error) {
	s := &PlaceholderSigner{}
	blocks := []struct {
		name string
		b64  string
		dst  *[]byte
	}{
		{"xml_hash", PlaceholderXMLHash, &s.xmlHash},
		{"signature", PlaceholderSignature, &s.signature},
		{"public_key", PlaceholderPublicKey, &s.publicKey},
		{"certificate_signature", PlaceholderCertificateSignature, &s.certSig},
	}
	for _, b := range blocks {
		raw, err := decode(b.b64)
		if err != nil {
			return nil, fmt.Errorf("signer: decodificar %s: %w", b.name, err)
		}
		if len(raw) > zatca.MaxValueLength {
			return nil, fmt.Errorf("signer: %s mide %d bytes: %w", b.name, len(raw), zatca.ErrFieldTooLarge)
		}
		*b.dst = raw
	}
	return s, nil
}

func (s *PlaceholderSigner) Hash(_ []byte) ([]byte, error) { return clone(s.xmlHash), nil }
func (s *PlaceholderSigner) Sign(_ []byte) ([]byte, error) { return clone(s.signature), nil }
func (s *PlaceholderSigner) PublicKey() []byte            { return clone(s.publicKey) }
func (s *PlaceholderSigner) CertificateSignature() []byte { return clone(s.certSig) }

// clone evita que un caller modifique el material compartido entre QRs.
func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
