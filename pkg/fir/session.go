package fir

import "github.com/stackb/fir-symbols/pkg/name"

// ResolvedTypeRef is a reference to a fully resolved class type.
type ResolvedTypeRef struct {
	ClassId  name.ClassId
	Nullable bool
}

// String implements fmt.Stringer
func (r ResolvedTypeRef) String() string {
	if r.Nullable {
		return r.ClassId.String() + "?"
	}
	return r.ClassId.String()
}

// BuiltinTypes holds the type references every session knows about.
type BuiltinTypes struct {
	AnyType     ResolvedTypeRef
	NullableAny ResolvedTypeRef
	NothingType ResolvedTypeRef
	UnitType    ResolvedTypeRef
}

// Session is the compilation context that owns declarations.
type Session struct {
	ID           string
	BuiltinTypes *BuiltinTypes
}

// NewSession constructs a session with the standard built-in types.
func NewSession(id string) *Session {
	return &Session{
		ID: id,
		BuiltinTypes: &BuiltinTypes{
			AnyType:     ResolvedTypeRef{ClassId: name.AnyClassId},
			NullableAny: ResolvedTypeRef{ClassId: name.AnyClassId, Nullable: true},
			NothingType: ResolvedTypeRef{ClassId: name.NothingClassId},
			UnitType:    ResolvedTypeRef{ClassId: name.UnitClassId},
		},
	}
}
