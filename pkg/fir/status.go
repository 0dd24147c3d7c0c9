package fir

import "fmt"

// Visibility controls where a declaration is accessible from.
type Visibility int

const (
	Public Visibility = iota
	Protected
	Internal
	Private
	Local
)

var visibilityNames = [...]string{"public", "protected", "internal", "private", "local"}

// String implements fmt.Stringer
func (v Visibility) String() string {
	if v < 0 || int(v) >= len(visibilityNames) {
		return "unknown"
	}
	return visibilityNames[v]
}

// ParseVisibility parses the lowercase visibility keyword.  The empty string
// is public.
func ParseVisibility(s string) (Visibility, error) {
	if s == "" {
		return Public, nil
	}
	for i, n := range visibilityNames {
		if n == s {
			return Visibility(i), nil
		}
	}
	return 0, fmt.Errorf("unknown visibility %q", s)
}

// Modality controls whether a declaration may be overridden.
type Modality int

const (
	Final Modality = iota
	Sealed
	Open
	Abstract
)

var modalityNames = [...]string{"final", "sealed", "open", "abstract"}

// String implements fmt.Stringer
func (m Modality) String() string {
	if m < 0 || int(m) >= len(modalityNames) {
		return "unknown"
	}
	return modalityNames[m]
}

// ParseModality parses the lowercase modality keyword.  The empty string is
// final.
func ParseModality(s string) (Modality, error) {
	if s == "" {
		return Final, nil
	}
	for i, n := range modalityNames {
		if n == s {
			return Modality(i), nil
		}
	}
	return 0, fmt.Errorf("unknown modality %q", s)
}

// IsOverridable reports whether the modality permits overriding.
func (m Modality) IsOverridable() bool {
	return m == Open || m == Abstract
}

// ClassKind distinguishes class-like declarations.
type ClassKind int

const (
	Class ClassKind = iota
	Interface
	EnumClass
	EnumEntry
	AnnotationClass
	Object
)

var classKindNames = [...]string{"class", "interface", "enum_class", "enum_entry", "annotation_class", "object"}

// String implements fmt.Stringer
func (k ClassKind) String() string {
	if k < 0 || int(k) >= len(classKindNames) {
		return "unknown"
	}
	return classKindNames[k]
}

// ParseClassKind parses a class kind keyword.  The empty string is class.
func ParseClassKind(s string) (ClassKind, error) {
	if s == "" {
		return Class, nil
	}
	for i, n := range classKindNames {
		if n == s {
			return ClassKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown class kind %q", s)
}

// DeclarationOrigin records what produced a declaration.
type DeclarationOrigin int

const (
	OriginSource DeclarationOrigin = iota
	OriginLibrary
	OriginJava
	OriginSynthetic
	OriginBuiltIns
)

// String implements fmt.Stringer
func (o DeclarationOrigin) String() string {
	switch o {
	case OriginSource:
		return "source"
	case OriginLibrary:
		return "library"
	case OriginJava:
		return "java"
	case OriginSynthetic:
		return "synthetic"
	case OriginBuiltIns:
		return "builtins"
	default:
		return "unknown"
	}
}

// ResolvePhase is how far resolution has progressed for a declaration.
// Phases are ordered; later phases imply earlier ones are done.
type ResolvePhase int

const (
	PhaseUnset ResolvePhase = iota
	PhaseRawFir
	PhaseImports
	PhaseSuperTypes
	PhaseTypes
	PhaseStatus
	PhaseImplicitTypesBodyResolve
	PhaseBodyResolve
	PhaseAnalyzedDependencies
)

// String implements fmt.Stringer
func (p ResolvePhase) String() string {
	switch p {
	case PhaseUnset:
		return "UNSET"
	case PhaseRawFir:
		return "RAW_FIR"
	case PhaseImports:
		return "IMPORTS"
	case PhaseSuperTypes:
		return "SUPER_TYPES"
	case PhaseTypes:
		return "TYPES"
	case PhaseStatus:
		return "STATUS"
	case PhaseImplicitTypesBodyResolve:
		return "IMPLICIT_TYPES_BODY_RESOLVE"
	case PhaseBodyResolve:
		return "BODY_RESOLVE"
	case PhaseAnalyzedDependencies:
		return "ANALYZED_DEPENDENCIES"
	default:
		return "UNKNOWN"
	}
}

// DeclarationStatus carries the visibility and modality of a declaration.
type DeclarationStatus struct {
	Visibility Visibility
	Modality   Modality
}

// String implements fmt.Stringer
func (s DeclarationStatus) String() string {
	return s.Visibility.String() + " " + s.Modality.String()
}
