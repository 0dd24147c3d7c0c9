package provider

import (
	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
)

const cloneableName = "cloneable"

var (
	// Cloneable is the name of the synthetic built-in interface.
	Cloneable = name.Identifier("Cloneable")
	// CloneableClassId is kotlin/Cloneable.
	CloneableClassId = name.NewClassId(name.BuiltInsPackage, Cloneable)
	// Clone is the name of the single Cloneable member.
	Clone = name.Identifier("clone")
)

// CloneableSymbolProvider supplies the built-in Cloneable interface, which has
// no backing metadata and is synthesized in-process.  Its answer set is a
// single constant declaration, so it does no caching.
type CloneableSymbolProvider struct {
	klass *fir.RegularClass
}

// NewCloneableSymbolProvider constructs the provider and its declaration for
// the given session.
func NewCloneableSymbolProvider(session *fir.Session, scopeProvider fir.ScopeProvider) (*CloneableSymbolProvider, error) {
	clone, err := (&fir.SimpleFunctionBuilder{
		Session:       session,
		Origin:        fir.OriginLibrary,
		ResolvePhase:  fir.PhaseAnalyzedDependencies,
		Status:        fir.DeclarationStatus{Visibility: fir.Protected, Modality: fir.Open},
		Name:          Clone,
		CallableId:    name.NewMemberCallableId(CloneableClassId, Clone),
		ReturnTypeRef: session.BuiltinTypes.AnyType,
	}).Build()
	if err != nil {
		return nil, err
	}

	klass, err := (&fir.RegularClassBuilder{
		Session:       session,
		Origin:        fir.OriginLibrary,
		ResolvePhase:  fir.PhaseAnalyzedDependencies,
		Status:        fir.DeclarationStatus{Visibility: fir.Public, Modality: fir.Abstract},
		ClassKind:     fir.Interface,
		Name:          Cloneable,
		ClassId:       CloneableClassId,
		Declarations:  []fir.Declaration{clone},
		ScopeProvider: scopeProvider,
	}).Build()
	if err != nil {
		return nil, err
	}

	return &CloneableSymbolProvider{klass: klass}, nil
}

// Name implements part of the resolver.SymbolProvider interface.
func (p *CloneableSymbolProvider) Name() string {
	return cloneableName
}

// ClassLikeSymbolByClassId implements part of the resolver.SymbolProvider
// interface.
func (p *CloneableSymbolProvider) ClassLikeSymbolByClassId(classId name.ClassId) (fir.ClassLikeSymbol, bool) {
	if classId == CloneableClassId {
		return p.klass.Symbol(), true
	}
	return nil, false
}

// TopLevelCallableSymbols implements part of the resolver.SymbolProvider
// interface.
func (p *CloneableSymbolProvider) TopLevelCallableSymbols(pkg name.FqName, n name.Name) []fir.CallableSymbol {
	return nil
}

// NestedClassifierScope implements part of the resolver.SymbolProvider
// interface.
func (p *CloneableSymbolProvider) NestedClassifierScope(classId name.ClassId) (fir.ClassifierScope, bool) {
	return nil, false
}

// Package implements part of the resolver.SymbolProvider interface.
func (p *CloneableSymbolProvider) Package(fqName name.FqName) (name.FqName, bool) {
	return name.FqName{}, false
}
