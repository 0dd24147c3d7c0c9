package fir

import "github.com/stackb/fir-symbols/pkg/name"

// ClassLikeSymbol is the identity of a class-like declaration.
type ClassLikeSymbol interface {
	ClassId() name.ClassId
	Fir() *RegularClass
}

// RegularClassSymbol points back at the class it identifies.  The reference
// is non-owning; the class is owned by whoever built it.
type RegularClassSymbol struct {
	classId name.ClassId
	fir     *RegularClass
}

// ClassId implements part of the ClassLikeSymbol interface.
func (s *RegularClassSymbol) ClassId() name.ClassId { return s.classId }

// Fir implements part of the ClassLikeSymbol interface.
func (s *RegularClassSymbol) Fir() *RegularClass { return s.fir }

// String implements fmt.Stringer
func (s *RegularClassSymbol) String() string { return s.classId.String() }

// CallableSymbol is the identity of a callable declaration.
type CallableSymbol interface {
	CallableId() name.CallableId
}

// NamedFunctionSymbol identifies a SimpleFunction.
type NamedFunctionSymbol struct {
	callableId name.CallableId
	fir        *SimpleFunction
}

// CallableId implements the CallableSymbol interface.
func (s *NamedFunctionSymbol) CallableId() name.CallableId { return s.callableId }

// Fir returns the function declaration.
func (s *NamedFunctionSymbol) Fir() *SimpleFunction { return s.fir }

// String implements fmt.Stringer
func (s *NamedFunctionSymbol) String() string { return s.callableId.String() }
