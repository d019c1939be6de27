package zatca

import "encoding/base64"

// Codec agrupa las conversiones de texto que usa el ensamblador del QR.
type Codec struct {
	// EncodeToString envuelve los bytes TLV en el texto final del QR.
	EncodeToString func([]byte) string
	// DecodeString es la inversa de EncodeToString.
	DecodeString func(string) ([]byte, error)
	// StringBytes convierte un campo de texto a los bytes que se miden y se escriben.
	StringBytes func(string) []byte
}

// DefaultCodec usa Base64 estándar con padding y UTF-8.
func DefaultCodec() Codec {
	return Codec{
		EncodeToString: base64.StdEncoding.EncodeToString,
		DecodeString:   base64.StdEncoding.DecodeString,
		StringBytes:    func(s string) []byte { return []byte(s) },
	}
}
