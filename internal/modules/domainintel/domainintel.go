// Package domainintel implements the domain intelligence module: a fixed
// sequence of probes (SSL, DNS, HTTP headers, WHOIS) run sequentially
// against one domain, each failure isolated, producing key facts and one
// timestamped report file.
package domainintel

import (
	"context"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
	"intelprobe/internal/core/runner"
	"intelprobe/internal/platform/logx"
	"intelprobe/internal/probes/dnslookup"
	"intelprobe/internal/probes/httpheaders"
	"intelprobe/internal/probes/ssl"
	"intelprobe/internal/probes/whoislookup"
)

const moduleName = "domain_intel"

// Module ejecuta la secuencia fija de probes de inteligencia de dominio.
type Module struct {
	logger    logx.Logger
	presenter ports.Presenter
	probes    []ports.Probe
}

// New crea el módulo con su secuencia de probes en orden de declaración.
func New(cfg ports.ProbeConfig, logger logx.Logger, presenter ports.Presenter) *Module {
	log := logger.With("module", moduleName)

	return &Module{
		logger:    log,
		presenter: presenter,
		probes: []ports.Probe{
			ssl.New(log, cfg.NetTimeout),
			dnslookup.New(log, cfg.NetTimeout),
			httpheaders.New(log, cfg.NetTimeout, cfg.UserAgent),
			whoislookup.New(log, cfg.NetTimeout),
		},
	}
}

// Name retorna el nombre del módulo.
func (m *Module) Name() string { return moduleName }

// Prefix retorna el prefijo de los artefactos generados.
func (m *Module) Prefix() string { return moduleName }

// TargetKind retorna el tipo de target aceptado.
func (m *Module) TargetKind() domain.TargetKind { return domain.TargetKindDomain }

// Run ejecuta todos los probes contra el dominio. Los fallos individuales
// quedan documentados en el reporte; el módulo siempre completa.
func (m *Module) Run(ctx context.Context, target domain.Target) *domain.ModuleResult {
	report := domain.NewStampedReport("Domain Intelligence", target.Value)

	r := runner.New(runner.Options{
		Probes:    m.probes,
		Logger:    m.logger,
		Presenter: m.presenter,
	})

	return r.Run(ctx, moduleName, target, report)
}

// Close libera los probes del módulo.
func (m *Module) Close() error {
	for _, p := range m.probes {
		if err := p.Close(); err != nil {
			m.logger.Warn("failed to close probe", "probe", p.Name(), "error", err.Error())
		}
	}
	return nil
}
