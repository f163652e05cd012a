package domainintel

import (
	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
	"intelprobe/internal/platform/logx"
	"intelprobe/internal/platform/registry"
)

// Auto-registro del módulo al importar el package
func init() {
	if err := registry.Global().Register(
		moduleName,
		factory,
		ports.ModuleMetadata{
			Name:        moduleName,
			Description: "SSL, DNS, HTTP header and WHOIS intelligence for a domain",
			Version:     "1.0.0",
			TargetKind:  domain.TargetKindDomain,
			Probes:      []string{"ssl", "dns", "http", "whois"},
			EmitsReport: true,
		},
	); err != nil {
		logx.New().Warn("failed to register domain_intel module", "error", err.Error())
	}
}

func factory(cfg ports.ProbeConfig, logger logx.Logger, presenter ports.Presenter) (ports.Module, error) {
	return New(cfg, logger, presenter), nil
}
