// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Target errors
	ErrEmptyTarget       = errors.New("target cannot be empty")
	ErrInvalidDomain     = errors.New("invalid domain format")
	ErrInvalidTargetKind = errors.New("invalid target kind")

	// Module errors
	ErrModuleNotFound    = errors.New("module not found")
	ErrNoProbesAvailable = errors.New("no probes available for module")

	// Emission errors
	ErrAlreadyEmitted = errors.New("result envelope already emitted")
	ErrEncodeFailed   = errors.New("failed to encode result envelope")
)
