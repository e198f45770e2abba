package blockcipher

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Registry manages named cipher providers. The composition root registers
// the available backends once and resolves one per prepared MAC; the CMAC
// engine itself never selects a backend. Registration and resolution are
// logged at debug level only; encryption errors are never logged here and
// always propagate through the provider's return value.
type Registry struct {
	id        string
	providers map[string]Provider
	mu        sync.RWMutex
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		id:        uuid.NewString(),
		providers: make(map[string]Provider),
	}
}

// NewDefaultRegistry creates a registry with the in-process AES provider
// already registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewGoAES())

	return r
}

// Register adds or replaces a provider under its own name.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[p.Name()] = p

	log.Debug().
		Str("event", "provider_registered").
		Str("registry_id", r.id).
		Str("provider", p.Name()).
		Msg("registered cipher provider")
}

// Resolve returns the provider registered under name, or
// ErrProviderUnavailable when none is.
func (r *Registry) Resolve(name string) (Provider, error) {
	r.mu.RLock()
	p, ok := r.providers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProviderUnavailable, name)
	}

	log.Debug().
		Str("event", "provider_resolved").
		Str("registry_id", r.id).
		Str("provider", name).
		Msg("resolved cipher provider")

	return p, nil
}

// List returns the names of all registered providers in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
