// Package app contains the shared entrypoint logic of the module
// binaries: load config, validate the target, build the module from the
// registry, run it and emit the envelope exactly once.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"intelprobe/internal/adapters/output"
	"intelprobe/internal/core/domain"
	"intelprobe/internal/platform/config"
	"intelprobe/internal/platform/logx"
	"intelprobe/internal/platform/registry"
	"intelprobe/internal/platform/ui"
)

// Main ejecuta el módulo indicado y retorna el exit code del proceso.
// Solo un target ausente o inválido es fatal (exit 2, antes de ningún
// probe); una vez arrancado, el módulo siempre emite su envelope.
func Main(moduleName, version string) int {
	cfg, err := config.Load(moduleName, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		return 2
	}

	logger := logx.New()
	logger.SetLevel(logx.ParseLevel(cfg.LogLevel))

	meta, ok := registry.Global().GetMetadata(moduleName)
	if !ok {
		logger.Err(fmt.Errorf("%w: %s", domain.ErrModuleNotFound, moduleName))
		return 2
	}

	if cfg.Target == "" {
		fmt.Fprintf(os.Stderr, "Error: target is required\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <%s>\n", moduleName, meta.TargetKind)
		return 2
	}

	logger.Info("module starting",
		"module", moduleName,
		"version", version,
		"target", cfg.Target,
	)

	target := domain.NewTarget(cfg.Target, meta.TargetKind)
	if err := target.Validate(); err != nil {
		logger.Err(err, "phase", "validation")
		return 2
	}

	presenter := ui.ForConfig(cfg.Verbose)

	module, err := registry.Global().Build(moduleName, cfg.ProbeConfig(), logger, presenter)
	if err != nil {
		logger.Err(err, "phase", "module-build")
		return 2
	}
	defer func() {
		if err := module.Close(); err != nil {
			logger.Warn("failed to close module", "error", err.Error())
		}
	}()

	// Contexto con señales para shutdown limpio; los timeouts por probe
	// los aplica cada probe internamente.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result := module.Run(ctx, target)

	emitter := output.NewEmitter(logger)
	if err := emitter.Emit(module.Prefix(), result); err != nil {
		logger.Err(err, "phase", "emit")
		return 1
	}

	return 0
}
