// internal/platform/registry/module_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
	"intelprobe/internal/platform/logx"
)

// ModuleRegistry gestiona el registro y construcción de módulos.
// Implementa el patrón Registry + Factory para desacoplar la creación de
// módulos de los binarios que los invocan.
type ModuleRegistry struct {
	mu        sync.RWMutex
	factories map[string]ModuleFactory
	metadata  map[string]ports.ModuleMetadata
	logger    logx.Logger
}

// ModuleFactory es una función que crea una instancia de Module.
type ModuleFactory func(cfg ports.ProbeConfig, logger logx.Logger, presenter ports.Presenter) (ports.Module, error)

// globalRegistry es la instancia global del registry.
var globalRegistry *ModuleRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *ModuleRegistry {
	once.Do(func() {
		globalRegistry = NewModuleRegistry(logx.New())
	})
	return globalRegistry
}

// NewModuleRegistry crea un nuevo registry de módulos.
func NewModuleRegistry(logger logx.Logger) *ModuleRegistry {
	return &ModuleRegistry{
		factories: make(map[string]ModuleFactory),
		metadata:  make(map[string]ports.ModuleMetadata),
		logger:    logger.With("component", "module-registry"),
	}
}

// Register registra una module factory con su metadata.
// Típicamente llamado desde init() de cada module package.
func (r *ModuleRegistry) Register(name string, factory ModuleFactory, meta ports.ModuleMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("module name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil for module %s", name)
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("module %s is already registered", name)
	}

	r.factories[name] = factory
	r.metadata[name] = meta
	r.logger.Debug("module registered", "name", name, "target_kind", meta.TargetKind)

	return nil
}

// Build construye el módulo con el nombre dado.
func (r *ModuleRegistry) Build(name string, cfg ports.ProbeConfig, logger logx.Logger, presenter ports.Presenter) (ports.Module, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrModuleNotFound, name)
	}

	if logger == nil {
		logger = logx.New()
	}

	module, err := factory(cfg, logger, presenter)
	if err != nil {
		return nil, fmt.Errorf("failed to build module %s: %w", name, err)
	}

	r.logger.Debug("module built", "name", name)
	return module, nil
}

// List retorna los nombres de todos los módulos registrados.
func (r *ModuleRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMetadata retorna el metadata de un módulo.
func (r *ModuleRegistry) GetMetadata(name string) (ports.ModuleMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[name]
	return meta, exists
}

// IsRegistered verifica si un módulo está registrado.
func (r *ModuleRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// Clear elimina todos los módulos registrados (útil para testing).
func (r *ModuleRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]ModuleFactory)
	r.metadata = make(map[string]ports.ModuleMetadata)
}
