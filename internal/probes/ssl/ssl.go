// Package ssl implements the SSL certificate inspection probe. It performs
// one TLS handshake against port 443 and retrieves the peer certificate.
package ssl

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"strings"
	"time"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
	"intelprobe/internal/platform/errors"
	"intelprobe/internal/platform/logx"
)

// Probe inspecciona el certificado TLS del target.
type Probe struct {
	logger  logx.Logger
	timeout time.Duration
}

// New crea el probe con el timeout acotado dado.
func New(logger logx.Logger, timeout time.Duration) *Probe {
	return &Probe{
		logger:  logger.With("probe", "ssl"),
		timeout: timeout,
	}
}

// Name retorna el nombre del probe.
func (p *Probe) Name() string { return "ssl" }

// Label retorna la etiqueta de las secciones de error.
func (p *Probe) Label() string { return "SSL Certificate" }

// Kind retorna el tipo de probe.
func (p *Probe) Kind() domain.ProbeKind { return domain.ProbeKindNetwork }

// Run realiza el handshake y extrae los campos del certificado. El fact
// clave es la organización del emisor, cuando está presente.
func (p *Probe) Run(ctx context.Context, target domain.Target) (*ports.Finding, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: p.timeout},
		Config:    &tls.Config{ServerName: target.Value},
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(target.Value, "443"))
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	tlsConn, ok := conn.(*tls.Conn)
	if !ok {
		return nil, errors.Wrap(errors.ErrProbeProtocol, "connection is not TLS")
	}

	state := tlsConn.ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, errors.Wrap(errors.ErrProbeProtocol, "no peer certificate presented")
	}

	cert := state.PeerCertificates[0]
	p.logger.Debug("certificate retrieved",
		"subject", cert.Subject.CommonName,
		"issuer", cert.Issuer.CommonName,
	)

	return &ports.Finding{
		Section: renderSection(cert),
		Fact:    issuerFact(cert),
	}, nil
}

// Close implementa ports.Probe. La conexión se libera dentro de Run.
func (p *Probe) Close() error { return nil }

func renderSection(cert *x509.Certificate) string {
	var b strings.Builder
	b.WriteString("SSL Certificate Details:\n")
	fmt.Fprintf(&b, "Subject: %s\n", cert.Subject.String())
	fmt.Fprintf(&b, "Issuer: %s\n", cert.Issuer.String())
	fmt.Fprintf(&b, "Valid From: %s\n", cert.NotBefore.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Valid Until: %s", cert.NotAfter.Format("2006-01-02 15:04:05 MST"))
	return b.String()
}

// issuerFact extrae la organización del emisor; "" cuando el certificado
// no la declara.
func issuerFact(cert *x509.Certificate) string {
	if len(cert.Issuer.Organization) == 0 {
		return ""
	}
	org := strings.TrimSpace(cert.Issuer.Organization[0])
	if org == "" {
		return ""
	}
	return fmt.Sprintf("SSL Issuer: %s", org)
}
