package resolver

import (
	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
)

// SymbolProvider answers declaration lookups by identifier.  Every provider in
// a session's chain implements the same four queries; a miss is reported as
// false (or an empty list), never as an error.
type SymbolProvider interface {
	// Providers have canonical names
	Name() string
	// ClassLikeSymbolByClassId returns the class with the given id.
	ClassLikeSymbolByClassId(classId name.ClassId) (fir.ClassLikeSymbol, bool)
	// TopLevelCallableSymbols returns the package-level callables with the
	// given name.
	TopLevelCallableSymbols(packageFqName name.FqName, n name.Name) []fir.CallableSymbol
	// NestedClassifierScope returns the scope of classifiers nested in the
	// given class.
	NestedClassifierScope(classId name.ClassId) (fir.ClassifierScope, bool)
	// Package returns the canonical name of the package, if it exists.
	Package(fqName name.FqName) (name.FqName, bool)
}
