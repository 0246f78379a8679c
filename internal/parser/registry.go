package parser

import (
	"fmt"
	"sync"
)

// Factory builds a parser from the parser configuration. The returned
// parser has not been set up yet.
type Factory func(cfg Config) Parser

// Registry maps parser implementation names to factories. It replaces
// ecosystem plugin discovery with an explicit lookup table populated at
// startup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register adds a factory under the given name.
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("parser %q already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// New builds and sets up the named parser.
func (r *Registry) New(name string, cfg Config) (Parser, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown parser %q", name)
	}

	p := factory(cfg)
	if err := p.Setup(); err != nil {
		return nil, err
	}
	return p, nil
}

// Names returns the registered parser names (for diagnostics).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// defaultRegistry holds the built-in parsers.
var defaultRegistry = NewRegistry()

func init() {
	_ = defaultRegistry.Register("generic", func(cfg Config) Parser {
		return NewGeneric(cfg)
	})
}

// DefaultRegistry returns the registry with all built-in parsers registered.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
