package zatca

import (
	"errors"
	"fmt"
)

// MaxValueLength es el máximo de bytes que admite un valor TLV (el largo ocupa un solo byte).
const MaxValueLength = 255

// Errores del codec TLV.
var (
	ErrFieldTooLarge    = errors.New("zatca: valor TLV supera 255 bytes")
	ErrInvalidTag       = errors.New("zatca: tag TLV inválido")
	ErrMalformedTLV     = errors.New("zatca: registro TLV incompleto")
	ErrInvalidTimestamp = errors.New("zatca: timestamp inválido")
)

// FieldTooLargeError indica qué tag excedió el límite y con cuántos bytes.
type FieldTooLargeError struct {
	Tag    byte
	Length int
}

func (e *FieldTooLargeError) Error() string {
	return fmt.Sprintf("zatca: tag %d mide %d bytes (máximo %d)", e.Tag, e.Length, MaxValueLength)
}

// Is permite errors.Is(err, ErrFieldTooLarge).
func (e *FieldTooLargeError) Is(target error) bool { return target == ErrFieldTooLarge }

// InvalidTimestampError conserva el valor recibido para que el caller pueda reportarlo.
type InvalidTimestampError struct {
	Value string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("zatca: timestamp inválido %q (se espera ISO-8601)", e.Value)
}

func (e *InvalidTimestampError) Is(target error) bool { return target == ErrInvalidTimestamp }
