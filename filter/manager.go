package filter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager holds the named presets from the config file and the evaluator
// every list command runs through.
type Manager struct {
	compiler  Compiler
	evaluator *ConcurrentEvaluator

	mu      sync.RWMutex
	presets map[string]CompiledFilter
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithEvaluator sets the evaluator used by Apply and EvaluatePresets
func WithEvaluator(evaluator *ConcurrentEvaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = evaluator
	}
}

// NewManager creates a manager with a caching expr compiler and the default evaluator
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:  NewExprCompiler(WithCache(100)),
		evaluator: NewConcurrentEvaluator(),
		presets:   make(map[string]CompiledFilter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Compiler returns the compiler used for presets and ad-hoc expressions
func (m *Manager) Compiler() Compiler {
	return m.compiler
}

// RegisterFilters compiles and stores presets, replacing any of the same
// name. Nothing is stored if one expression fails to compile.
func (m *Manager) RegisterFilters(presets map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(presets))

	for _, name := range slices.Sorted(maps.Keys(presets)) {
		f, err := m.compiler.Compile(presets[name])
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = f
	}

	m.mu.Lock()
	maps.Copy(m.presets, compiled)
	m.mu.Unlock()

	return nil
}

// Lookup returns the preset registered under name
func (m *Manager) Lookup(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.presets[name]
	return f, ok
}

// Names returns the registered preset names, sorted
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.presets))
}

// Apply returns the records matching f, in input order. A nil filter
// matches everything.
func (m *Manager) Apply(ctx context.Context, f CompiledFilter, records []Record) ([]Record, error) {
	if f == nil {
		return records, nil
	}
	return m.evaluator.Evaluate(ctx, f, records)
}

// EvaluatePresets runs the named presets over the same records, one
// BatchResult per name. No names means every registered preset.
func (m *Manager) EvaluatePresets(ctx context.Context, names []string, records []Record) (map[string]BatchResult, error) {
	m.mu.RLock()
	selected := make(map[string]CompiledFilter, len(names))
	if len(names) == 0 {
		maps.Copy(selected, m.presets)
	}
	for _, name := range names {
		f, ok := m.presets[name]
		if !ok {
			m.mu.RUnlock()
			return nil, fmt.Errorf("filter '%s' not found", name)
		}
		selected[name] = f
	}
	m.mu.RUnlock()

	return m.evaluator.EvaluateBatch(ctx, selected, records)
}
