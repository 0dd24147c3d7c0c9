package resolver

import "fmt"

// SymbolProviderRegistry is an index of named symbol providers.
type SymbolProviderRegistry interface {
	// SymbolProviders returns a list of all known providers, in the order
	// they were added.
	SymbolProviders() []SymbolProvider

	// AddSymbolProvider adds the given provider to the registry.  It is an
	// error to add the same named provider twice.
	AddSymbolProvider(provider SymbolProvider) error
}

// NewSymbolProviderRegistry returns an empty registry.
func NewSymbolProviderRegistry() SymbolProviderRegistry {
	return &symbolProviderRegistry{}
}

// NamedSymbolProviders looks up the given names in the registry, preserving
// the order of names.
func NamedSymbolProviders(registry SymbolProviderRegistry, names []string) (want []SymbolProvider, err error) {
	all := registry.SymbolProviders()
	for _, name := range names {
		found := false
		for _, provider := range all {
			if name == provider.Name() {
				want = append(want, provider)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("resolver.SymbolProvider not found: %q", name)
		}
	}
	return
}

type symbolProviderRegistry struct {
	providers []SymbolProvider
}

// SymbolProviders implements part of the
// resolver.SymbolProviderRegistry interface.
func (r *symbolProviderRegistry) SymbolProviders() []SymbolProvider {
	return r.providers
}

// AddSymbolProvider implements part of the
// resolver.SymbolProviderRegistry interface.
func (r *symbolProviderRegistry) AddSymbolProvider(provider SymbolProvider) error {
	for _, p := range r.providers {
		if p.Name() == provider.Name() {
			return fmt.Errorf("duplicate resolver.SymbolProvider %q", p.Name())
		}
	}
	r.providers = append(r.providers, provider)
	return nil
}
