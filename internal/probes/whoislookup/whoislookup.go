// Package whoislookup implements the WHOIS probe: one lookup of the
// target's registrable domain, with the registrar name as key fact.
package whoislookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"golang.org/x/net/publicsuffix"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
	"intelprobe/internal/platform/logx"
)

// Probe consulta WHOIS para el dominio registrable del target.
type Probe struct {
	logger  logx.Logger
	timeout time.Duration
	client  *whois.Client
}

// New crea el probe con el timeout acotado dado.
func New(logger logx.Logger, timeout time.Duration) *Probe {
	client := whois.NewClient()
	client.SetTimeout(timeout)

	return &Probe{
		logger:  logger.With("probe", "whois"),
		timeout: timeout,
		client:  client,
	}
}

// Name retorna el nombre del probe.
func (p *Probe) Name() string { return "whois" }

// Label retorna la etiqueta de las secciones de error.
func (p *Probe) Label() string { return "WHOIS Lookup" }

// Kind retorna el tipo de probe.
func (p *Probe) Kind() domain.ProbeKind { return domain.ProbeKindNetwork }

// Run consulta WHOIS sobre el eTLD+1 del target (el registro vive en el
// dominio registrable, no en el subdominio investigado).
func (p *Probe) Run(ctx context.Context, target domain.Target) (*ports.Finding, error) {
	registrable := registrableDomain(target.Value)

	// El cliente whois aplica su propio timeout por conexión; respetar
	// además la cancelación del contexto antes de empezar.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := p.client.Whois(registrable)
	if err != nil {
		return nil, err
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		return nil, err
	}

	section, registrar := renderSection(registrable, parsed)
	p.logger.Debug("whois parsed", "registrable", registrable, "registrar", registrar)

	fact := ""
	if registrar != "" {
		fact = fmt.Sprintf("Registrar: %s", registrar)
	}

	return &ports.Finding{
		Section: section,
		Fact:    fact,
	}, nil
}

// Close implementa ports.Probe.
func (p *Probe) Close() error { return nil }

// registrableDomain reduce el target a su eTLD+1; si la lista de sufijos
// públicos no lo reconoce, se consulta el target tal cual.
func registrableDomain(target string) string {
	etld1, err := publicsuffix.EffectiveTLDPlusOne(target)
	if err != nil {
		return target
	}
	return etld1
}

func renderSection(registrable string, parsed whoisparser.WhoisInfo) (section, registrar string) {
	var b strings.Builder
	b.WriteString("WHOIS Lookup:")
	fmt.Fprintf(&b, "\nRegistrable Domain: %s", registrable)

	if parsed.Registrar != nil && parsed.Registrar.Name != "" {
		registrar = strings.TrimSpace(parsed.Registrar.Name)
		fmt.Fprintf(&b, "\nRegistrar: %s", registrar)
	}
	if parsed.Domain != nil {
		if parsed.Domain.CreatedDate != "" {
			fmt.Fprintf(&b, "\nCreated: %s", parsed.Domain.CreatedDate)
		}
		if parsed.Domain.ExpirationDate != "" {
			fmt.Fprintf(&b, "\nExpires: %s", parsed.Domain.ExpirationDate)
		}
		if len(parsed.Domain.NameServers) > 0 {
			fmt.Fprintf(&b, "\nName Servers: %s", strings.Join(parsed.Domain.NameServers, ", "))
		}
	}

	return b.String(), registrar
}
