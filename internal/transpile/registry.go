package transpile

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a fresh Transpiler instance on demand.
type Factory func() Transpiler

// Registry is a thread-safe lookup of Transpiler instances by target,
// mirroring original_source/src/yuho/transpile/registry.py's
// TranspilerRegistry singleton. Unlike the Python source's class-level
// `__new__` double-checked locking, Go has no equivalent to guard
// directly; the same effect — cheap reads after first init, safe
// concurrent first-use — is had with sync.Once guarding construction of
// the package-level instance and a sync.Mutex guarding the registry's
// own maps thereafter, following internal/parser's GetParser/ClearCache
// convention for shared, reentrant services.
type Registry struct {
	mu        sync.Mutex
	factories map[TranspileTarget]Factory
	instances map[TranspileTarget]Transpiler
	cache     map[TranspileTarget]Transpiler
}

func newRegistry() *Registry {
	r := &Registry{
		factories: map[TranspileTarget]Factory{},
		instances: map[TranspileTarget]Transpiler{},
		cache:     map[TranspileTarget]Transpiler{},
	}
	r.registerBuiltins()
	return r
}

func (r *Registry) registerBuiltins() {
	r.factories[TargetJSON] = func() Transpiler { return NewJSONTranspiler(false, 2) }
	r.factories[TargetJSONLD] = func() Transpiler { return NewJSONLDTranspiler("", false) }
	r.factories[TargetEnglish] = func() Transpiler { return NewEnglishTranspiler() }
	r.factories[TargetLaTeX] = func() Transpiler { return NewLaTeXTranspiler("", "", true) }
	r.factories[TargetMermaid] = func() Transpiler { return NewMermaidTranspiler() }
	r.factories[TargetAlloy] = func() Transpiler { return NewAlloyTranspiler() }
}

var (
	instanceOnce sync.Once
	instance     *Registry
)

// Instance returns the shared Registry, building and populating it with
// the six built-in transpilers on first use.
func Instance() *Registry {
	instanceOnce.Do(func() { instance = newRegistry() })
	return instance
}

// Reset discards the shared Registry so the next Instance call rebuilds
// it from scratch. Exists for tests, mirroring TranspilerRegistry.reset().
func Reset() {
	instanceOnce = sync.Once{}
	instance = nil
}

// Register installs factory as the builder for target, replacing any
// existing registration and invalidating that target's cached instance.
func (r *Registry) Register(target TranspileTarget, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[target] = factory
	delete(r.instances, target)
	delete(r.cache, target)
}

// RegisterInstance installs a single, pre-built Transpiler for target,
// bypassing the factory/cache machinery entirely.
func (r *Registry) RegisterInstance(target TranspileTarget, t Transpiler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[target] = t
	delete(r.cache, target)
}

// Unregister removes target entirely: factory, instance override, and
// cache entry.
func (r *Registry) Unregister(target TranspileTarget) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, target)
	delete(r.instances, target)
	delete(r.cache, target)
}

// IsRegistered reports whether target has a factory or explicit instance.
func (r *Registry) IsRegistered(target TranspileTarget) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, hasFactory := r.factories[target]
	_, hasInstance := r.instances[target]
	return hasFactory || hasInstance
}

// RegisteredTargets returns every registered target, sorted for
// deterministic iteration.
func (r *Registry) RegisteredTargets() []TranspileTarget {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[TranspileTarget]bool{}
	for t := range r.factories {
		seen[t] = true
	}
	for t := range r.instances {
		seen[t] = true
	}
	out := make([]TranspileTarget, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ClearCache drops every cached factory-built instance without touching
// registrations; the next Get call rebuilds lazily.
func (r *Registry) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = map[TranspileTarget]Transpiler{}
}

// Get returns the Transpiler for target: an explicit RegisterInstance
// override first, then a cached factory-built instance, then a freshly
// built and cached one. Returns an error if target is unregistered.
func (r *Registry) Get(target TranspileTarget) (Transpiler, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inst, ok := r.instances[target]; ok {
		return inst, nil
	}
	if cached, ok := r.cache[target]; ok {
		return cached, nil
	}
	factory, ok := r.factories[target]
	if !ok {
		return nil, fmt.Errorf("transpile: no transpiler registered for target %q", target)
	}
	built := factory()
	r.cache[target] = built
	return built, nil
}

// GetOrNil is Get without the error: nil if target is unregistered.
func (r *Registry) GetOrNil(target TranspileTarget) Transpiler {
	t, err := r.Get(target)
	if err != nil {
		return nil
	}
	return t
}
