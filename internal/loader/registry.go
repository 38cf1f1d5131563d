package loader

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vexlang/vexls/internal/ast"
)

// Loaded is one successfully parsed module: its AST plus the path it was
// read from and the source text that produced it (kept for diagnostic
// rendering and hover source-line lookups).
type Loaded struct {
	Module *ast.Module
	Path   string
	Source string
}

// Registry holds every module loaded so far in a session, keyed
// case-insensitively on module name. Modeled on DWScript's UnitRegistry:
// same case-insensitive registration-conflict checking, same "parse once,
// reuse" intent, but without its separate `loading` in-progress set —
// Vex's loader tracks the in-progress import stack itself (loader.go) to
// tolerate cycles instead of returning a registration error.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Loaded
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Loaded)}
}

// Register adds a freshly loaded module under name. Returns an error if a
// module is already registered under the same case-insensitive name.
func (r *Registry) Register(name string, l *Loaded) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(name)
	if _, exists := r.modules[key]; exists {
		return fmt.Errorf("module %q already registered", name)
	}
	r.modules[key] = l
	return nil
}

// Get looks up a previously registered module by name, case-insensitively.
func (r *Registry) Get(name string) (*Loaded, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.modules[strings.ToLower(name)]
	return l, ok
}

// All returns every module currently registered.
func (r *Registry) All() []*Loaded {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Loaded, 0, len(r.modules))
	for _, l := range r.modules {
		out = append(out, l)
	}
	return out
}

// Reset clears every registered module, used when a session rebuild needs
// a fresh load.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules = make(map[string]*Loaded)
}
