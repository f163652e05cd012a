// Package zonetransfer implements the zone-transfer module: a single AXFR
// attempt via an external dig subprocess. The module emits no facts; its
// one report file encodes the outcome in its name prefix (zone_transfer_,
// zone_transfer_failed_, zone_transfer_error_).
package zonetransfer

import (
	"context"
	"fmt"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
	"intelprobe/internal/platform/logx"
	"intelprobe/internal/probes/axfr"
)

const moduleName = "zone_transfer"

// Module intenta una transferencia de zona contra el propio target.
type Module struct {
	logger    logx.Logger
	presenter ports.Presenter
	probe     *axfr.Probe
}

// New crea el módulo con su único probe.
func New(cfg ports.ProbeConfig, logger logx.Logger, presenter ports.Presenter) *Module {
	log := logger.With("module", moduleName)

	return &Module{
		logger:    log,
		presenter: presenter,
		probe:     axfr.New(log, cfg.DigPath, cfg.CLITimeout),
	}
}

// Name retorna el nombre del módulo.
func (m *Module) Name() string { return moduleName }

// Prefix retorna el prefijo base de los artefactos; el emitter le añade
// el sufijo de desenlace cuando el resultado no es OK.
func (m *Module) Prefix() string { return moduleName }

// TargetKind retorna el tipo de target aceptado.
func (m *Module) TargetKind() domain.TargetKind { return domain.TargetKindDomain }

// Run ejecuta el intento y construye el reporte según el desenlace. Nunca
// termina sin resultado: rechazo y error de ejecución producen reportes
// que documentan el fallo.
func (m *Module) Run(ctx context.Context, target domain.Target) *domain.ModuleResult {
	report := domain.NewReport("DNS Zone Transfer", target.Value)
	result := domain.NewModuleResult(moduleName, target, report)
	result.Metadata.TotalProbes = 1

	m.logger.Info("starting module run", "module", moduleName, "target", target.Value)
	if m.presenter != nil {
		m.presenter.ModuleStarted(moduleName, target.Value)
		m.presenter.ProbeStarted(m.probe.Name())
	}

	report.AddSectionf("Command: %s", m.probe.CommandLine(target))

	outcome := m.probe.Attempt(ctx, target)
	result.Status = outcome.Status

	switch outcome.Status {
	case domain.RunStatusOK:
		report.AddSection("Results:\n" + outcome.Output.Stdout)
		if m.presenter != nil {
			m.presenter.ProbeCompleted(m.probe.Name(), "")
		}

	case domain.RunStatusFailed:
		report.AddSectionf(
			"Status: FAILED\nReturn Code: %d\nError Output: %s\nStandard Output: %s",
			outcome.Output.ExitCode,
			outcome.Output.Stderr,
			outcome.Output.Stdout,
		)
		err := fmt.Errorf("zone transfer refused: dig exited with status %d", outcome.Output.ExitCode)
		result.AddError(m.probe.Name(), err)
		if m.presenter != nil {
			m.presenter.ProbeFailed(m.probe.Name(), err)
		}

	case domain.RunStatusError:
		report.AddSectionf("Status: ERROR\nError: %v", outcome.Err)
		result.AddError(m.probe.Name(), outcome.Err)
		if m.presenter != nil {
			m.presenter.ProbeFailed(m.probe.Name(), outcome.Err)
		}
	}

	result.Metadata.ProbesRun = []string{m.probe.Name()}
	result.Finalize()

	m.logger.Info("module run completed",
		"module", moduleName,
		"status", result.Status,
		"duration_ms", result.Metadata.Duration.Milliseconds(),
	)
	if m.presenter != nil {
		m.presenter.ModuleCompleted(result)
	}

	return result
}

// Close libera el probe del módulo.
func (m *Module) Close() error {
	return m.probe.Close()
}
