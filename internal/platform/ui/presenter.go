// internal/platform/ui/presenter.go
package ui

import (
	"os"

	"github.com/pterm/pterm"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
)

// PtermPresenter imprime el progreso de los probes a stderr con pterm.
// stdout queda intacto para el ResultEnvelope.
type PtermPresenter struct {
	info    pterm.PrefixPrinter
	success pterm.PrefixPrinter
	warning pterm.PrefixPrinter
}

// NewPtermPresenter crea un presenter con los printers redirigidos a stderr.
func NewPtermPresenter() *PtermPresenter {
	return &PtermPresenter{
		info:    *pterm.Info.WithWriter(os.Stderr),
		success: *pterm.Success.WithWriter(os.Stderr),
		warning: *pterm.Warning.WithWriter(os.Stderr),
	}
}

// ModuleStarted implementa ports.Presenter.
func (p *PtermPresenter) ModuleStarted(module, target string) {
	p.info.Printfln("%s: investigating %s", module, target)
}

// ProbeStarted implementa ports.Presenter.
func (p *PtermPresenter) ProbeStarted(probe string) {
	p.info.Printfln("probe %s running", probe)
}

// ProbeCompleted implementa ports.Presenter.
func (p *PtermPresenter) ProbeCompleted(probe, fact string) {
	if fact != "" {
		p.success.Printfln("probe %s: %s", probe, fact)
		return
	}
	p.success.Printfln("probe %s completed", probe)
}

// ProbeFailed implementa ports.Presenter.
func (p *PtermPresenter) ProbeFailed(probe string, err error) {
	p.warning.Printfln("probe %s failed: %v", probe, err)
}

// ModuleCompleted implementa ports.Presenter.
func (p *PtermPresenter) ModuleCompleted(result *domain.ModuleResult) {
	p.success.Printfln("%s completed: %d facts, %d isolated failures (%s)",
		result.Module, len(result.Facts), len(result.Errors), result.Metadata.Duration)
}

// NoopPresenter descarta todos los eventos. Es el default cuando el
// módulo corre bajo la herramienta invocante.
type NoopPresenter struct{}

// NewNoopPresenter crea un presenter silencioso.
func NewNoopPresenter() *NoopPresenter { return &NoopPresenter{} }

func (NoopPresenter) ModuleStarted(module, target string)         {}
func (NoopPresenter) ProbeStarted(probe string)                   {}
func (NoopPresenter) ProbeCompleted(probe, fact string)           {}
func (NoopPresenter) ProbeFailed(probe string, err error)         {}
func (NoopPresenter) ModuleCompleted(result *domain.ModuleResult) {}

// ForConfig retorna el presenter adecuado: pterm con --verbose, noop en
// caso contrario.
func ForConfig(verbose bool) ports.Presenter {
	if verbose {
		return NewPtermPresenter()
	}
	return NewNoopPresenter()
}
