package fir

import (
	"fmt"

	"github.com/stackb/fir-symbols/pkg/name"
)

// RegularClassBuilder collects the fields of a RegularClass.  Build checks
// that every required field is set and seals the result.
type RegularClassBuilder struct {
	Session       *Session
	Origin        DeclarationOrigin
	ResolvePhase  ResolvePhase
	Status        DeclarationStatus
	ClassKind     ClassKind
	Name          name.Name
	ClassId       name.ClassId
	Declarations  []Declaration
	ScopeProvider ScopeProvider
}

// Build returns the sealed class.  The class symbol is created here and
// bound to the class.
func (b *RegularClassBuilder) Build() (*RegularClass, error) {
	if b.Session == nil {
		return nil, fmt.Errorf("class %s: session is required", b.Name)
	}
	if b.Name == "" {
		return nil, fmt.Errorf("class name is required")
	}
	if b.ClassId.IsZero() {
		return nil, fmt.Errorf("class %s: class id is required", b.Name)
	}
	if b.ClassId.ShortClassName() != b.Name {
		return nil, fmt.Errorf("class %s: name does not match class id %s", b.Name, b.ClassId)
	}
	if b.ResolvePhase == PhaseUnset {
		return nil, fmt.Errorf("class %s: resolve phase is required", b.ClassId)
	}
	for _, d := range b.Declarations {
		if err := checkMember(b.ClassId, d); err != nil {
			return nil, err
		}
	}

	scopeProvider := b.ScopeProvider
	if scopeProvider == nil {
		scopeProvider = DefaultScopeProvider
	}

	klass := &RegularClass{
		declarationBase: declarationBase{
			session: b.Session,
			origin:  b.Origin,
			phase:   b.ResolvePhase,
			status:  b.Status,
		},
		name:          b.Name,
		classKind:     b.ClassKind,
		declarations:  append([]Declaration(nil), b.Declarations...),
		scopeProvider: scopeProvider,
	}
	klass.symbol = &RegularClassSymbol{classId: b.ClassId, fir: klass}
	return klass, nil
}

func checkMember(owner name.ClassId, d Declaration) error {
	switch m := d.(type) {
	case *SimpleFunction:
		if got, ok := m.symbol.callableId.ClassId(); !ok || got != owner {
			return fmt.Errorf("class %s: member function %s belongs to another owner", owner, m.symbol.callableId)
		}
	case *RegularClass:
		if got, ok := m.ClassId().OuterClassId(); !ok || got != owner {
			return fmt.Errorf("class %s: nested class %s belongs to another owner", owner, m.ClassId())
		}
	case nil:
		return fmt.Errorf("class %s: nil member declaration", owner)
	}
	return nil
}

// MustBuild is like Build but panics on error.
func (b *RegularClassBuilder) MustBuild() *RegularClass {
	klass, err := b.Build()
	if err != nil {
		panic(err)
	}
	return klass
}

// SimpleFunctionBuilder collects the fields of a SimpleFunction.
type SimpleFunctionBuilder struct {
	Session         *Session
	Origin          DeclarationOrigin
	ResolvePhase    ResolvePhase
	Status          DeclarationStatus
	Name            name.Name
	CallableId      name.CallableId
	ReturnTypeRef   ResolvedTypeRef
	ValueParameters []ValueParameter
}

// Build returns the sealed function and binds its symbol.
func (b *SimpleFunctionBuilder) Build() (*SimpleFunction, error) {
	if b.Session == nil {
		return nil, fmt.Errorf("function %s: session is required", b.Name)
	}
	if b.Name == "" {
		return nil, fmt.Errorf("function name is required")
	}
	if b.CallableId.CallableName != b.Name {
		return nil, fmt.Errorf("function %s: name does not match callable id %s", b.Name, b.CallableId)
	}
	if b.ReturnTypeRef.ClassId.IsZero() {
		return nil, fmt.Errorf("function %s: return type is required", b.CallableId)
	}
	if b.ResolvePhase == PhaseUnset {
		return nil, fmt.Errorf("function %s: resolve phase is required", b.CallableId)
	}

	fn := &SimpleFunction{
		declarationBase: declarationBase{
			session: b.Session,
			origin:  b.Origin,
			phase:   b.ResolvePhase,
			status:  b.Status,
		},
		name:            b.Name,
		returnTypeRef:   b.ReturnTypeRef,
		valueParameters: append([]ValueParameter(nil), b.ValueParameters...),
	}
	fn.symbol = &NamedFunctionSymbol{callableId: b.CallableId, fir: fn}
	return fn, nil
}

// MustBuild is like Build but panics on error.
func (b *SimpleFunctionBuilder) MustBuild() *SimpleFunction {
	fn, err := b.Build()
	if err != nil {
		panic(err)
	}
	return fn
}
