package inputmask

import (
	"reflect"
	"sync"
)

var (
	// Process-wide default token layer. The map is replaced, never mutated,
	// so a reader holding it sees a consistent snapshot.
	defaults   = builtinDefinitions()
	generation uint64
	defaultsMu sync.RWMutex

	compiled   = make(map[[digestSize]byte]*Mask)
	compiledMu sync.RWMutex
)

// builtinDefinitions returns the default token set.
func builtinDefinitions() Definitions {
	return Definitions{
		'9': Digit(),
		'A': Letter(),
		'*': Alphanumeric(),
	}
}

// Define registers or replaces a token in the process-wide default layer.
// Masks compiled afterwards see the new token; masks already compiled keep
// the definitions they were built with.
func Define(token rune, v Validator) error {
	if _, err := validateToken(string(token)); err != nil {
		return err
	}
	if v == nil {
		return newConfigError(ErrInvalidDefinition, "", string(token))
	}

	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	next := defaults.clone()
	next[token] = v
	defaults = next
	generation++
	return nil
}

// Undefine removes a token from the process-wide default layer.
func Undefine(token rune) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	if _, ok := defaults[token]; !ok {
		return
	}
	next := defaults.clone()
	delete(next, token)
	defaults = next
	generation++
}

// ResetDefinitions restores the built-in default layer.
// This is primarily useful for test isolation.
func ResetDefinitions() {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = builtinDefinitions()
	generation++
}

// DefaultDefinitions returns a copy of the process-wide default layer.
func DefaultDefinitions() Definitions {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults.clone()
}

// revision returns the default layer generation.
func revision() uint64 {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return generation
}

// Resolve merges overrides over the default layer and returns the effective
// definitions. Overrides win on collision; neither layer is modified.
func Resolve(overrides Definitions) (Definitions, error) {
	defaultsMu.RLock()
	base := defaults
	defaultsMu.RUnlock()

	return merge(base, overrides)
}

// merge layers top over base after validating every key in top.
func merge(base, top Definitions) (Definitions, error) {
	out := base.clone()
	for token, v := range top {
		if _, err := validateToken(string(token)); err != nil {
			return nil, err
		}
		if v == nil {
			return nil, newConfigError(ErrInvalidDefinition, "", string(token))
		}
		out[token] = v
	}
	return out, nil
}

// Use returns a cached mask or compiles a new one.
// Masks are cached by pattern, configuration, and the default layer revision,
// so a call to Define never serves a mask built from stale definitions.
func Use(pattern string, cfg Config) (*Mask, error) {
	key := digest(pattern, cfg, revision())

	// Fast path: read-lock cache check
	compiledMu.RLock()
	if m, ok := compiled[key]; ok {
		compiledMu.RUnlock()
		return m, nil
	}
	compiledMu.RUnlock()

	// Slow path: build and cache with write-lock
	compiledMu.Lock()
	defer compiledMu.Unlock()

	// Double-check pattern
	if m, ok := compiled[key]; ok {
		return m, nil
	}

	m, err := cfg.Compile(pattern)
	if err != nil {
		return nil, err
	}

	compiled[key] = m
	return m, nil
}

// Reset clears the compiled mask and binder caches.
// This is primarily useful for test isolation.
func Reset() {
	compiledMu.Lock()
	compiled = make(map[[digestSize]byte]*Mask)
	compiledMu.Unlock()

	bindersMu.Lock()
	binders = make(map[reflect.Type]any)
	bindersMu.Unlock()
}
