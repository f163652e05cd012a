package hashdetect

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
			Description: "Length-based credential hash classification",
			Version:     "1.0.0",
			TargetKind:  domain.TargetKindHash,
			Probes:      []string{},
			EmitsReport: false,
		},
	); err != nil {
		logx.New().Warn("failed to register hash_detect module", "error", err.Error())
	}
}

func factory(cfg ports.ProbeConfig, logger logx.Logger, presenter ports.Presenter) (ports.Module, error) {
	return New(logger, presenter), nil
}
