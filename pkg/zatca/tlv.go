// Package zatca: codec TLV (Tag-Length-Value) del código QR de facturación electrónica ZATCA.
//
// Cada registro es [tag:1 byte][largo:1 byte][valor:largo bytes]. El largo se mide en bytes
// (UTF-8 para los campos de texto), no en caracteres.
package zatca

import "fmt"

// Field es un registro TLV ya decodificado.
type Field struct {
	Tag   byte
	Value []byte
}

// Encode serializa un registro TLV. Rechaza valores de más de 255 bytes en lugar de truncar el largo.
func Encode(tag byte, value []byte) ([]byte, error) {
	if tag == 0 {
		return nil, ErrInvalidTag
	}
	if len(value) > MaxValueLength {
		return nil, &FieldTooLargeError{Tag: tag, Length: len(value)}
	}
	out := make([]byte, 2+len(value))
	out[0] = tag
	out[1] = byte(len(value))
	copy(out[2:], value)
	return out, nil
}

// EncodeString serializa un valor de texto usando su representación UTF-8.
func EncodeString(tag byte, value string) ([]byte, error) {
	return Encode(tag, []byte(value))
}

// Decode recorre una concatenación de registros TLV y devuelve los campos en el orden en que aparecen.
func Decode(data []byte) ([]Field, error) {
	var fields []Field
	for off := 0; off < len(data); {
		if len(data)-off < 2 {
			return nil, fmt.Errorf("%w: cabecera truncada en offset %d", ErrMalformedTLV, off)
		}
		tag, n := data[off], int(data[off+1])
		off += 2
		if len(data)-off < n {
			return nil, fmt.Errorf("%w: tag %d declara %d bytes, quedan %d", ErrMalformedTLV, tag, n, len(data)-off)
		}
		value := make([]byte, n)
		copy(value, data[off:off+n])
		fields = append(fields, Field{Tag: tag, Value: value})
		off += n
	}
	return fields, nil
}
