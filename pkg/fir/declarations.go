package fir

import (
	"fmt"

	"github.com/stackb/fir-symbols/pkg/name"
)

// Declaration is a resolved semantic entity.  Declarations are immutable once
// built.
type Declaration interface {
	Session() *Session
	Origin() DeclarationOrigin
	ResolvePhase() ResolvePhase
	Status() DeclarationStatus
}

type declarationBase struct {
	session *Session
	origin  DeclarationOrigin
	phase   ResolvePhase
	status  DeclarationStatus
}

// Session implements part of the Declaration interface.
func (d *declarationBase) Session() *Session { return d.session }

// Origin implements part of the Declaration interface.
func (d *declarationBase) Origin() DeclarationOrigin { return d.origin }

// ResolvePhase implements part of the Declaration interface.
func (d *declarationBase) ResolvePhase() ResolvePhase { return d.phase }

// Status implements part of the Declaration interface.
func (d *declarationBase) Status() DeclarationStatus { return d.status }

// RegularClass is a class, interface, object or enum declaration.
type RegularClass struct {
	declarationBase
	name          name.Name
	classKind     ClassKind
	declarations  []Declaration
	symbol        *RegularClassSymbol
	scopeProvider ScopeProvider
}

// Name returns the simple class name.
func (c *RegularClass) Name() name.Name { return c.name }

// ClassKind returns the kind of class.
func (c *RegularClass) ClassKind() ClassKind { return c.classKind }

// Symbol returns the class symbol, which refers back to this declaration.
func (c *RegularClass) Symbol() *RegularClassSymbol { return c.symbol }

// ClassId is shorthand for Symbol().ClassId().
func (c *RegularClass) ClassId() name.ClassId { return c.symbol.ClassId() }

// ScopeProvider returns the provider used to build scopes for this class.
func (c *RegularClass) ScopeProvider() ScopeProvider { return c.scopeProvider }

// Declarations returns a copy of the member declarations.
func (c *RegularClass) Declarations() []Declaration {
	return append([]Declaration(nil), c.declarations...)
}

// Functions returns the member functions in declaration order.
func (c *RegularClass) Functions() []*SimpleFunction {
	var fns []*SimpleFunction
	for _, d := range c.declarations {
		if fn, ok := d.(*SimpleFunction); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

// NestedClasses returns the member classes in declaration order.
func (c *RegularClass) NestedClasses() []*RegularClass {
	var classes []*RegularClass
	for _, d := range c.declarations {
		if nested, ok := d.(*RegularClass); ok {
			classes = append(classes, nested)
		}
	}
	return classes
}

// String implements fmt.Stringer
func (c *RegularClass) String() string {
	return fmt.Sprintf("%s %s %s", c.status, c.classKind, c.ClassId())
}

// ValueParameter is a function parameter.
type ValueParameter struct {
	Name    name.Name
	TypeRef ResolvedTypeRef
}

// SimpleFunction is a named function declaration.
type SimpleFunction struct {
	declarationBase
	name            name.Name
	returnTypeRef   ResolvedTypeRef
	valueParameters []ValueParameter
	symbol          *NamedFunctionSymbol
}

// Name returns the simple function name.
func (f *SimpleFunction) Name() name.Name { return f.name }

// ReturnTypeRef returns the declared return type.
func (f *SimpleFunction) ReturnTypeRef() ResolvedTypeRef { return f.returnTypeRef }

// ValueParameters returns a copy of the parameters.
func (f *SimpleFunction) ValueParameters() []ValueParameter {
	return append([]ValueParameter(nil), f.valueParameters...)
}

// Symbol returns the function symbol.
func (f *SimpleFunction) Symbol() *NamedFunctionSymbol { return f.symbol }

// String implements fmt.Stringer
func (f *SimpleFunction) String() string {
	return fmt.Sprintf("%s fun %s(): %s", f.status, f.symbol.CallableId(), f.returnTypeRef)
}
