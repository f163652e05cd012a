// internal/core/domain/module_result.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ModuleResult acumula facts, reporte y fallos aislados de una invocación
// de módulo. Es el input del Result Emitter.
type ModuleResult struct {
	// ID identificador único de la invocación
	ID string

	// Module nombre del módulo que produjo el resultado
	Module string

	// Target objetivo de la invocación
	Target Target

	// Facts hallazgos extraídos, en orden de descubrimiento
	Facts []string

	// Report documento acumulado por los probes
	Report *Report

	// Status desenlace de la ejecución (ver RunStatus)
	Status RunStatus

	// Errors fallos aislados por probe, no fatales
	Errors []ProbeError

	// Metadata información sobre la ejecución
	Metadata RunMetadata
}

// RunMetadata contiene información sobre la ejecución del módulo.
type RunMetadata struct {
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	ProbesRun   []string
	TotalProbes int
}

// ProbeError representa el fallo aislado de un probe.
type ProbeError struct {
	// Probe nombre del probe que falló
	Probe string

	// Message descripción del error
	Message string

	// Timestamp momento del fallo
	Timestamp time.Time
}

// NewModuleResult crea un resultado vacío para el módulo y target dados.
func NewModuleResult(module string, target Target, report *Report) *ModuleResult {
	return &ModuleResult{
		ID:     "run-" + uuid.NewString(),
		Module: module,
		Target: target,
		Facts:  []string{},
		Report: report,
		Status: RunStatusOK,
		Errors: []ProbeError{},
		Metadata: RunMetadata{
			StartTime: time.Now(),
		},
	}
}

// AddFact añade un hallazgo preservando el orden de descubrimiento.
func (r *ModuleResult) AddFact(fact string) {
	if fact == "" {
		return
	}
	r.Facts = append(r.Facts, fact)
}

// AddError registra el fallo aislado de un probe.
func (r *ModuleResult) AddError(probe string, err error) {
	r.Errors = append(r.Errors, ProbeError{
		Probe:     probe,
		Message:   err.Error(),
		Timestamp: time.Now(),
	})
}

// Finalize marca la ejecución como completada y calcula la duración.
func (r *ModuleResult) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}

// HasErrors indica si algún probe falló durante la ejecución.
func (r *ModuleResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Summary retorna un resumen legible del resultado.
func (r *ModuleResult) Summary() string {
	return fmt.Sprintf(
		"ModuleResult{module=%s, target=%s, facts=%d, errors=%d, status=%s, duration=%s}",
		r.Module,
		r.Target.Value,
		len(r.Facts),
		len(r.Errors),
		r.Status,
		r.Metadata.Duration,
	)
}
