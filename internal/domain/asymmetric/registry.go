package asymmetric

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps algorithm names to encryption modules.
// Names are matched case-insensitively. A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]EncryptionModule
}

// NewRegistry creates a registry holding the given modules.
func NewRegistry(modules ...EncryptionModule) (*Registry, error) {
	r := &Registry{modules: make(map[string]EncryptionModule, len(modules))}
	for _, m := range modules {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a module under its algorithm name.
func (r *Registry) Register(module EncryptionModule) error {
	if module == nil {
		return fmt.Errorf("encryption module cannot be nil")
	}

	name := normalize(module.Algorithm())
	if name == "" {
		return fmt.Errorf("encryption module must report an algorithm name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.modules[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, module.Algorithm())
	}
	r.modules[name] = module
	return nil
}

// Lookup returns the module registered for algorithm.
func (r *Registry) Lookup(algorithm string) (EncryptionModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	module, ok := r.modules[normalize(algorithm)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	return module, nil
}

// Algorithms returns the registered algorithm names in sorted order.
func (r *Registry) Algorithms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for _, m := range r.modules {
		names = append(names, m.Algorithm())
	}
	sort.Strings(names)
	return names
}

func normalize(algorithm string) string {
	return strings.ToUpper(strings.TrimSpace(algorithm))
}
