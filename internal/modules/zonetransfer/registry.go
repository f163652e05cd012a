package zonetransfer

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
			Description: "AXFR zone transfer attempt via external dig command",
			Version:     "1.0.0",
			TargetKind:  domain.TargetKindDomain,
			Probes:      []string{"axfr"},
			EmitsReport: true,
		},
	); err != nil {
		logx.New().Warn("failed to register zone_transfer module", "error", err.Error())
	}
}

func factory(cfg ports.ProbeConfig, logger logx.Logger, presenter ports.Presenter) (ports.Module, error) {
	return New(cfg, logger, presenter), nil
}
