// internal/core/domain/target.go
package domain

import (
	"fmt"
	"strings"

	"intelprobe/internal/platform/validator"
)

// Target representa el objetivo de una invocación de módulo: un dominio o
// un hash de credenciales. Es inmutable durante toda la invocación.
type Target struct {
	// Value es el string recibido como único argumento posicional
	Value string

	// Kind define el tipo de objetivo que el módulo espera
	Kind TargetKind
}

// NewTarget crea un target para el tipo indicado.
func NewTarget(value string, kind TargetKind) Target {
	return Target{
		Value: strings.TrimSpace(value),
		Kind:  kind,
	}
}

// Validate verifica que el target sea utilizable por el módulo.
// Un target inválido es el único error fatal de arranque: se detecta antes
// de ejecutar ningún probe.
func (t *Target) Validate() error {
	if t.Value == "" {
		return ErrEmptyTarget
	}

	switch t.Kind {
	case TargetKindDomain:
		t.Value = validator.NormalizeDomain(t.Value)
		if !validator.IsDomain(t.Value) {
			return fmt.Errorf("%w: %s", ErrInvalidDomain, t.Value)
		}
	case TargetKindHash:
		// Cualquier string no vacío es analizable; el clasificador degrada
		// por su cuenta los inputs sin bucket conocido.
	default:
		return fmt.Errorf("%w: %s", ErrInvalidTargetKind, t.Kind)
	}

	return nil
}

// String retorna una representación legible del target.
func (t Target) String() string {
	return fmt.Sprintf("Target{value=%s, kind=%s}", t.Value, t.Kind)
}
