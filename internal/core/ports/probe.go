// internal/core/ports/probe.go
package ports

import (
	"context"
	"time"

	"intelprobe/internal/core/domain"
)

// Finding es el resultado discriminado de un probe que terminó con éxito:
// un fragmento de reporte y, opcionalmente, exactamente un fact clave. Un
// probe que falla retorna error en su lugar; los errores nunca cruzan el
// boundary del probe sin clasificar.
type Finding struct {
	// Section fragmento de texto para el reporte
	Section string

	// Fact hallazgo clave para el grafo ("" = este probe no extrae fact)
	Fact string
}

// Probe es el port primario para operaciones atómicas contra el target.
// Cada probe aplica su propio timeout acotado dentro de Run y libera
// cualquier socket o proceso externo antes de retornar, con éxito o sin él.
type Probe interface {
	// Name retorna el nombre único del probe (ej: "ssl", "dns", "axfr")
	Name() string

	// Label retorna la etiqueta humana usada en las secciones de error
	// del reporte (ej: "SSL Certificate", "DNS Resolution")
	Label() string

	// Kind retorna el tipo de implementación (network, cli, builtin)
	Kind() domain.ProbeKind

	// Run ejecuta la operación contra el target
	Run(ctx context.Context, target domain.Target) (*Finding, error)

	// Close libera recursos utilizados por el probe
	Close() error
}

// ProbeConfig contiene la configuración compartida por los probes.
type ProbeConfig struct {
	// NetTimeout tiempo máximo por probe de red
	NetTimeout time.Duration

	// CLITimeout tiempo máximo por comando externo
	CLITimeout time.Duration

	// UserAgent cabecera User-Agent para probes HTTP
	UserAgent string

	// DigPath binario usado para el intento de zone transfer
	DigPath string
}

// DefaultProbeConfig retorna la configuración por defecto: 10s para
// probes de red, 30s para comandos externos.
func DefaultProbeConfig() ProbeConfig {
	return ProbeConfig{
		NetTimeout: 10 * time.Second,
		CLITimeout: 30 * time.Second,
		UserAgent:  "intelprobe/1.0",
		DigPath:    "dig",
	}
}
