// Package axfr implements the zone-transfer attempt: one external dig
// AXFR invocation against the target's own nameserver, with a hard
// timeout. Unlike the other probes its outcome is trivalent — success,
// refused transfer, execution error — because the artifact name of the
// zone_transfer module encodes the outcome.
package axfr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/platform/logx"
	"intelprobe/internal/probes/common"
)

// Probe intenta una transferencia de zona completa.
type Probe struct {
	logger  logx.Logger
	command *common.Command
	digPath string
}

// New crea el probe usando el binario dig indicado.
func New(logger logx.Logger, digPath string, timeout time.Duration) *Probe {
	return &Probe{
		logger:  logger.With("probe", "axfr"),
		command: common.NewCommand(logger, digPath, timeout),
		digPath: digPath,
	}
}

// Name retorna el nombre del probe.
func (p *Probe) Name() string { return "axfr" }

// Label retorna la etiqueta de las secciones de error.
func (p *Probe) Label() string { return "Zone Transfer" }

// Kind retorna el tipo de probe.
func (p *Probe) Kind() domain.ProbeKind { return domain.ProbeKindCLI }

// Outcome es el desenlace trivalente del intento.
type Outcome struct {
	// Status OK (transferencia servida), Failed (el servidor la rechazó o
	// devolvió vacío) o Error (el comando no pudo ejecutarse)
	Status domain.RunStatus

	// Output salida capturada del comando; nil cuando Status es Error
	Output *common.Output

	// Err causa cuando Status es Error
	Err error
}

// CommandLine retorna la línea de comando documentada en el reporte.
func (p *Probe) CommandLine(target domain.Target) string {
	return fmt.Sprintf("%s @%s AXFR %s", p.digPath, target.Value, target.Value)
}

// Attempt ejecuta el intento de transferencia. Nunca retorna un fallo sin
// clasificar: todo desenlace queda capturado en el Outcome.
func (p *Probe) Attempt(ctx context.Context, target domain.Target) Outcome {
	out, err := p.command.Run(ctx, "@"+target.Value, "AXFR", target.Value)
	if err != nil {
		p.logger.Warn("zone transfer could not run", "error", err.Error())
		return Outcome{Status: domain.RunStatusError, Output: out, Err: err}
	}

	if out.ExitCode == 0 && strings.TrimSpace(out.Stdout) != "" {
		p.logger.Info("zone transfer succeeded", "bytes", len(out.Stdout))
		return Outcome{Status: domain.RunStatusOK, Output: out}
	}

	p.logger.Info("zone transfer refused", "exit_code", out.ExitCode)
	return Outcome{Status: domain.RunStatusFailed, Output: out}
}

// Close implementa el ciclo de vida de probe; el subproceso se libera
// dentro de Attempt.
func (p *Probe) Close() error { return nil }
