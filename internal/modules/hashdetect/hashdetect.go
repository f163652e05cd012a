// Package hashdetect implements the hash classification module: a pure
// length-based analysis of one credential-hash string. Facts only, no
// probes, no report file.
package hashdetect

import (
	"context"
	"fmt"

	"intelprobe/internal/classify"
	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
	"intelprobe/internal/platform/logx"
)

const moduleName = "hash_detect"

// Module clasifica el hash del target por longitud normalizada.
type Module struct {
	logger    logx.Logger
	presenter ports.Presenter
}

// New crea el módulo.
func New(logger logx.Logger, presenter ports.Presenter) *Module {
	return &Module{
		logger:    logger.With("module", moduleName),
		presenter: presenter,
	}
}

// Name retorna el nombre del módulo.
func (m *Module) Name() string { return moduleName }

// Prefix retorna el prefijo de artefactos; este módulo no genera ninguno.
func (m *Module) Prefix() string { return moduleName }

// TargetKind retorna el tipo de target aceptado.
func (m *Module) TargetKind() domain.TargetKind { return domain.TargetKindHash }

// Run clasifica el hash. Sin probes que aislar: el único fallo posible es
// un input inanalizable, degradado a un único fact de error.
func (m *Module) Run(ctx context.Context, target domain.Target) *domain.ModuleResult {
	result := domain.NewModuleResult(moduleName, target, nil)

	m.logger.Info("starting module run", "module", moduleName)
	if m.presenter != nil {
		m.presenter.ModuleStarted(moduleName, target.Value)
	}

	for _, fact := range analyzeFacts(target.Value) {
		result.AddFact(fact)
	}

	result.Finalize()

	m.logger.Info("module run completed",
		"module", moduleName,
		"facts", len(result.Facts),
	)
	if m.presenter != nil {
		m.presenter.ModuleCompleted(result)
	}

	return result
}

// Close implementa ports.Module; no hay probes que liberar.
func (m *Module) Close() error { return nil }

// analyzeFacts envuelve el clasificador en un boundary propio: cualquier
// fallo de análisis se degrada a un único fact de error, nunca a un fault
// sin resultado.
func analyzeFacts(raw string) (facts []string) {
	defer func() {
		if rec := recover(); rec != nil {
			facts = []string{fmt.Sprintf("Error analyzing hash: %v", rec)}
		}
	}()

	return classify.Facts(raw)
}
