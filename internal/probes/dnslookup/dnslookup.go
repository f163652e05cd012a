// Package dnslookup implements the DNS resolution probe: one best-effort
// lookup of the target through the system resolver.
package dnslookup

import (
	"context"
	"fmt"
	"net"
	"time"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
	"intelprobe/internal/platform/errors"
	"intelprobe/internal/platform/logx"
)

// Probe resuelve el target a una dirección.
type Probe struct {
	logger   logx.Logger
	timeout  time.Duration
	resolver *net.Resolver
}

// New crea el probe con el timeout acotado dado.
func New(logger logx.Logger, timeout time.Duration) *Probe {
	return &Probe{
		logger:   logger.With("probe", "dns"),
		timeout:  timeout,
		resolver: net.DefaultResolver,
	}
}

// Name retorna el nombre del probe.
func (p *Probe) Name() string { return "dns" }

// Label retorna la etiqueta de las secciones de error.
func (p *Probe) Label() string { return "DNS Resolution" }

// Kind retorna el tipo de probe.
func (p *Probe) Kind() domain.ProbeKind { return domain.ProbeKindNetwork }

// Run resuelve el dominio. El fact clave es la primera dirección resuelta.
func (p *Probe) Run(ctx context.Context, target domain.Target) (*ports.Finding, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	addrs, err := p.resolver.LookupHost(ctx, target.Value)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, errors.Wrap(errors.ErrProbeProtocol, "resolver returned no addresses")
	}

	resolved := addrs[0]
	p.logger.Debug("resolved", "target", target.Value, "address", resolved, "total", len(addrs))

	return &ports.Finding{
		Section: fmt.Sprintf("DNS Resolution: %s -> %s", target.Value, resolved),
		Fact:    fmt.Sprintf("IP Address: %s", resolved),
	}, nil
}

// Close implementa ports.Probe.
func (p *Probe) Close() error { return nil }
