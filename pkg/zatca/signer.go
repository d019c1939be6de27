// Package zatca: interfaz para el material criptográfico de los tags 6 a 9 del QR.

package zatca

// Signer provee el hash del XML, la firma digital, la llave pública y la firma del certificado.
// content es la concatenación TLV de los tags 1 a 5 del mismo QR.
type Signer interface {
	Hash(content []byte) ([]byte, error)
	Sign(content []byte) ([]byte, error)
	PublicKey() []byte
	CertificateSignature() []byte
}
