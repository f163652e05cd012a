// internal/core/domain/enums.go
package domain

// TargetKind define el tipo de objetivo que acepta un módulo.
type TargetKind string

const (
	// TargetKindDomain el target es un nombre de dominio
	TargetKindDomain TargetKind = "domain"

	// TargetKindHash el target es un hash de credenciales
	TargetKindHash TargetKind = "hash"
)

// IsValid verifica si el tipo de target es válido.
func (k TargetKind) IsValid() bool {
	switch k {
	case TargetKindDomain, TargetKindHash:
		return true
	default:
		return false
	}
}

// String retorna la representación string del tipo.
func (k TargetKind) String() string {
	return string(k)
}

// ProbeKind clasifica probes por su tipo de implementación.
type ProbeKind string

const (
	// ProbeKindNetwork probes que abren conexiones de red nativas
	ProbeKindNetwork ProbeKind = "network"

	// ProbeKindCLI probes que ejecutan binarios externos
	ProbeKindCLI ProbeKind = "cli"

	// ProbeKindBuiltin probes implementados puramente en Go, sin I/O
	ProbeKindBuiltin ProbeKind = "builtin"
)

// IsValid verifica si el tipo de probe es válido.
func (k ProbeKind) IsValid() bool {
	switch k {
	case ProbeKindNetwork, ProbeKindCLI, ProbeKindBuiltin:
		return true
	default:
		return false
	}
}

// String retorna la representación string del tipo.
func (k ProbeKind) String() string {
	return string(k)
}

// RunStatus es el desenlace de la ejecución de un módulo. Los módulos con
// probes aislados terminan siempre en RunStatusOK: un probe fallido queda
// documentado en el reporte, no cambia el estado. Solo los módulos cuyo
// nombre de artefacto codifica el desenlace (zone_transfer) usan los otros
// dos valores.
type RunStatus string

const (
	// RunStatusOK ejecución completada (con o sin fallos aislados)
	RunStatusOK RunStatus = "ok"

	// RunStatusFailed la operación central terminó sin éxito (exit != 0)
	RunStatusFailed RunStatus = "failed"

	// RunStatusError la operación central no pudo ejecutarse
	RunStatusError RunStatus = "error"
)

// String retorna la representación string del estado.
func (s RunStatus) String() string {
	return string(s)
}
