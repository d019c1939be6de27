package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInvalidAmount = errors.New("monto inválido")
	ErrUnauthorized  = errors.New("no autorizado")
)
