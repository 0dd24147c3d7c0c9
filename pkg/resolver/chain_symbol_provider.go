package resolver

import (
	"strings"

	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
)

// ChainSymbolProvider implements SymbolProvider over a chain of providers.
// Single-valued lookups return the first hit; callables are concatenated in
// chain order.
type ChainSymbolProvider struct {
	chain []SymbolProvider
}

func NewChainSymbolProvider(chain ...SymbolProvider) *ChainSymbolProvider {
	return &ChainSymbolProvider{
		chain: chain,
	}
}

// Name implements part of the SymbolProvider interface.
func (p *ChainSymbolProvider) Name() string {
	names := make([]string, len(p.chain))
	for i, next := range p.chain {
		names[i] = next.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// ClassLikeSymbolByClassId implements part of the SymbolProvider interface.
func (p *ChainSymbolProvider) ClassLikeSymbolByClassId(classId name.ClassId) (fir.ClassLikeSymbol, bool) {
	for _, next := range p.chain {
		if sym, ok := next.ClassLikeSymbolByClassId(classId); ok {
			return sym, true
		}
	}
	return nil, false
}

// TopLevelCallableSymbols implements part of the SymbolProvider interface.
func (p *ChainSymbolProvider) TopLevelCallableSymbols(pkg name.FqName, n name.Name) []fir.CallableSymbol {
	var callables []fir.CallableSymbol
	for _, next := range p.chain {
		callables = append(callables, next.TopLevelCallableSymbols(pkg, n)...)
	}
	return callables
}

// NestedClassifierScope implements part of the SymbolProvider interface.
func (p *ChainSymbolProvider) NestedClassifierScope(classId name.ClassId) (fir.ClassifierScope, bool) {
	for _, next := range p.chain {
		if scope, ok := next.NestedClassifierScope(classId); ok {
			return scope, true
		}
	}
	return nil, false
}

// Package implements part of the SymbolProvider interface.
func (p *ChainSymbolProvider) Package(fqName name.FqName) (name.FqName, bool) {
	for _, next := range p.chain {
		if pkg, ok := next.Package(fqName); ok {
			return pkg, true
		}
	}
	return name.FqName{}, false
}
