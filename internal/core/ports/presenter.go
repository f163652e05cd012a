// internal/core/ports/presenter.go
package ports

import "intelprobe/internal/core/domain"

// Presenter recibe eventos de progreso durante la ejecución de un módulo.
// Las implementaciones escriben a stderr o descartan los eventos: stdout
// pertenece al ResultEnvelope.
type Presenter interface {
	ModuleStarted(module, target string)
	ProbeStarted(probe string)
	ProbeCompleted(probe, fact string)
	ProbeFailed(probe string, err error)
	ModuleCompleted(result *domain.ModuleResult)
}
