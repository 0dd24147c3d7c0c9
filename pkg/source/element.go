// Package source describes where a tree node came from.  An Element is either
// fake (compiler-generated), a node in a flattened light tree, or a node in a
// full-fidelity PSI tree.
package source

// Kind classifies how an element was produced.
type Kind int

const (
	// RealKind is user-written text.
	RealKind Kind = iota
	// GeneratedKind is synthesized by the compiler and has no literal text.
	GeneratedKind
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case RealKind:
		return "real"
	case GeneratedKind:
		return "generated"
	default:
		return "unknown"
	}
}

// Element is the source of a tree node.
type Element interface {
	StartOffset() int
	EndOffset() int
	Kind() Kind
}

// FakeElement wraps a real element for a node the compiler generated from it.
type FakeElement struct {
	Real Element
}

// StartOffset implements part of the Element interface.
func (e *FakeElement) StartOffset() int {
	if e.Real == nil {
		return -1
	}
	return e.Real.StartOffset()
}

// EndOffset implements part of the Element interface.
func (e *FakeElement) EndOffset() int {
	if e.Real == nil {
		return -1
	}
	return e.Real.EndOffset()
}

// Kind implements part of the Element interface.
func (e *FakeElement) Kind() Kind {
	return GeneratedKind
}

// IsFake reports whether the element was generated by the compiler.
func IsFake(e Element) bool {
	return e == nil || e.Kind() == GeneratedKind
}
