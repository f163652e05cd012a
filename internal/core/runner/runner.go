// internal/core/runner/runner.go
package runner

import (
	"context"
	"fmt"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
	"intelprobe/internal/platform/errors"
	"intelprobe/internal/platform/logx"
)

// Runner ejecuta la secuencia fija de probes de un módulo en orden de
// declaración, estrictamente secuencial, aislando el fallo de cada probe.
// Invariante central: ningún fallo de un probe termina el runner; el fallo
// se convierte en sección de error del reporte y la ejecución continúa con
// el siguiente probe.
type Runner struct {
	probes    []ports.Probe
	logger    logx.Logger
	presenter ports.Presenter
}

// Options configura el runner.
type Options struct {
	Probes    []ports.Probe
	Logger    logx.Logger
	Presenter ports.Presenter
}

// New crea un runner para la secuencia de probes dada.
func New(opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &Runner{
		probes:    opts.Probes,
		logger:    opts.Logger.With("component", "runner"),
		presenter: opts.Presenter,
	}
}

// Run ejecuta todos los probes contra el target y acumula facts y reporte.
// El resultado se produce siempre, incluso si todos los probes fallan.
func (r *Runner) Run(ctx context.Context, module string, target domain.Target, report *domain.Report) *domain.ModuleResult {
	result := domain.NewModuleResult(module, target, report)
	result.Metadata.TotalProbes = len(r.probes)

	r.logger.Info("starting module run",
		"module", module,
		"target", target.Value,
		"probes", len(r.probes),
	)
	if r.presenter != nil {
		r.presenter.ModuleStarted(module, target.Value)
	}

	for _, probe := range r.probes {
		r.executeProbe(ctx, probe, target, result)
		result.Metadata.ProbesRun = append(result.Metadata.ProbesRun, probe.Name())
	}

	result.Finalize()

	r.logger.Info("module run completed",
		"module", module,
		"facts", len(result.Facts),
		"errors", len(result.Errors),
		"duration_ms", result.Metadata.Duration.Milliseconds(),
	)
	if r.presenter != nil {
		r.presenter.ModuleCompleted(result)
	}

	return result
}

// executeProbe ejecuta un probe individual dentro de un boundary de error
// con alcance propio. Cualquier fallo (timeout, conexión, protocolo,
// incluso un panic) se degrada a sección de error + continuación.
func (r *Runner) executeProbe(ctx context.Context, probe ports.Probe, target domain.Target, result *domain.ModuleResult) {
	name := probe.Name()
	r.logger.Debug("executing probe", "probe", name, "kind", probe.Kind())
	if r.presenter != nil {
		r.presenter.ProbeStarted(name)
	}

	finding, err := r.runSafe(ctx, probe, target)
	if err != nil {
		classified := errors.Classify(err)
		result.AddError(name, classified)
		result.Report.AddErrorSection(probe.Label(), classified)

		r.logger.Warn("probe failed",
			"probe", name,
			"error", classified.Error(),
			"timeout", errors.IsTimeout(classified),
		)
		if r.presenter != nil {
			r.presenter.ProbeFailed(name, classified)
		}
		return
	}

	result.Report.AddSection(finding.Section)
	result.AddFact(finding.Fact)

	r.logger.Debug("probe completed", "probe", name, "fact", finding.Fact != "")
	if r.presenter != nil {
		r.presenter.ProbeCompleted(name, finding.Fact)
	}
}

// runSafe convierte también los panics del probe en errores de protocolo,
// de forma que ninguna falla cruce el boundary hacia el runner.
func (r *Runner) runSafe(ctx context.Context, probe ports.Probe, target domain.Target) (finding *ports.Finding, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			finding = nil
			err = errors.Wrapf(errors.ErrProbeProtocol, "probe panic: %v", rec)
		}
	}()

	finding, err = probe.Run(ctx, target)
	if err != nil {
		return nil, err
	}
	if finding == nil {
		return nil, fmt.Errorf("probe %s returned no finding", probe.Name())
	}
	return finding, nil
}
