// internal/core/ports/module.go
package ports

import (
	"context"

	"intelprobe/internal/core/domain"
)

// Module es un script de investigación autocontenido: tipo de target
// fijo, secuencia de probes fija. Run siempre retorna un resultado, nunca
// un error: el fallo total de todos los probes sigue produciendo un
// reporte que documenta cada fallo.
type Module interface {
	// Name retorna el nombre único del módulo (ej: "domain_intel")
	Name() string

	// Prefix retorna el prefijo de nombre de los FileArtifacts del módulo
	Prefix() string

	// TargetKind retorna el tipo de target que el módulo acepta
	TargetKind() domain.TargetKind

	// Run ejecuta la secuencia de probes del módulo contra el target
	Run(ctx context.Context, target domain.Target) *domain.ModuleResult

	// Close libera los probes del módulo
	Close() error
}

// ModuleMetadata contiene metadatos sobre un módulo registrado.
type ModuleMetadata struct {
	Name        string
	Description string
	Version     string
	TargetKind  domain.TargetKind
	Probes      []string
	EmitsReport bool
}
