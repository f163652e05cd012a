// internal/testutil/mocks.go
package testutil

import (
	"context"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/core/ports"
)

// MockProbe es un probe programable para tests del runner y los módulos.
type MockProbe struct {
	ProbeName  string
	ProbeLabel string
	Finding    *ports.Finding
	Err        error
	PanicWith  any
	CallCount  int
	Closed     bool
}

// NewMockProbe crea un mock que retorna el finding dado.
func NewMockProbe(name string, finding *ports.Finding, err error) *MockProbe {
	return &MockProbe{
		ProbeName:  name,
		ProbeLabel: name,
		Finding:    finding,
		Err:        err,
	}
}

func (m *MockProbe) Name() string { return m.ProbeName }

func (m *MockProbe) Label() string { return m.ProbeLabel }

func (m *MockProbe) Kind() domain.ProbeKind { return domain.ProbeKindBuiltin }

func (m *MockProbe) Run(ctx context.Context, target domain.Target) (*ports.Finding, error) {
	m.CallCount++
	if m.PanicWith != nil {
		panic(m.PanicWith)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Finding, nil
}

func (m *MockProbe) Close() error {
	m.Closed = true
	return nil
}

// MockPresenter registra los eventos recibidos para inspección.
type MockPresenter struct {
	Started   []string
	Completed []string
	Failed    []string
	Modules   []string
}

func (m *MockPresenter) ModuleStarted(module, target string) { m.Modules = append(m.Modules, module) }

func (m *MockPresenter) ProbeStarted(probe string) { m.Started = append(m.Started, probe) }

func (m *MockPresenter) ProbeCompleted(probe, fact string) { m.Completed = append(m.Completed, probe) }

func (m *MockPresenter) ProbeFailed(probe string, err error) { m.Failed = append(m.Failed, probe) }

func (m *MockPresenter) ModuleCompleted(result *domain.ModuleResult) {}
