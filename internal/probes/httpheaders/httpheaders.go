// Package httpheaders implements the HTTP header inspection probe: one
// GET against the target over HTTPS, reporting the security-relevant
// response headers.
package httpheaders

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
	"intelprobe/internal/platform/httpclient"
	"intelprobe/internal/platform/logx"
)

// inspectedHeaders es el conjunto curado de cabeceras que aparecen en el
// reporte, en este orden. Solo Server produce fact.
var inspectedHeaders = []string{
	"Server",
	"X-Powered-By",
	"X-Frame-Options",
	"Content-Security-Policy",
}

// Probe inspecciona las cabeceras de respuesta HTTP del target.
type Probe struct {
	logger logx.Logger
	client *httpclient.Client
}

// New crea el probe con el timeout y User-Agent dados.
func New(logger logx.Logger, timeout time.Duration, userAgent string) *Probe {
	client := httpclient.New(httpclient.Config{
		Timeout:         timeout,
		UserAgent:       userAgent,
		FollowRedirects: true,
	}, logger)

	return &Probe{
		logger: logger.With("probe", "http"),
		client: client,
	}
}

// Name retorna el nombre del probe.
func (p *Probe) Name() string { return "http" }

// Label retorna la etiqueta de las secciones de error.
func (p *Probe) Label() string { return "HTTP Analysis" }

// Kind retorna el tipo de probe.
func (p *Probe) Kind() domain.ProbeKind { return domain.ProbeKindNetwork }

// Run realiza la petición y lista las cabeceras curadas presentes. El fact
// clave es el valor de Server, cuando el servidor lo envía.
func (p *Probe) Run(ctx context.Context, target domain.Target) (*ports.Finding, error) {
	url := fmt.Sprintf("https://%s", target.Value)

	resp, err := p.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	section, server := renderSection(resp.Header)
	p.logger.Debug("headers inspected", "status", resp.StatusCode, "server", server)

	fact := ""
	if server != "" {
		fact = fmt.Sprintf("Web Server: %s", server)
	}

	return &ports.Finding{
		Section: section,
		Fact:    fact,
	}, nil
}

// Close implementa ports.Probe.
func (p *Probe) Close() error { return nil }

func renderSection(header http.Header) (section, server string) {
	var b strings.Builder
	b.WriteString("HTTP Headers Analysis:")
	for _, name := range inspectedHeaders {
		value := header.Get(name)
		if value == "" {
			continue
		}
		fmt.Fprintf(&b, "\n%s: %s", name, value)
		if name == "Server" {
			server = value
		}
	}
	return b.String(), server
}
