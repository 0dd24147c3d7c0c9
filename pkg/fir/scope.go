package fir

import (
	"sort"
	"strings"

	"github.com/stackb/fir-symbols/pkg/name"
)

// ClassifierScope answers classifier lookups by simple name.
type ClassifierScope interface {
	// ClassifierByName returns the classifier with the given name.
	ClassifierByName(n name.Name) (ClassLikeSymbol, bool)
	// ClassifierNames returns all names in the scope, sorted.
	ClassifierNames() []name.Name
}

// ScopeProvider builds scopes for class declarations.
type ScopeProvider interface {
	NestedClassifierScope(klass *RegularClass) ClassifierScope
}

// DefaultScopeProvider builds scopes from a class's own members.
var DefaultScopeProvider ScopeProvider = memberScopeProvider{}

type memberScopeProvider struct{}

func (memberScopeProvider) NestedClassifierScope(klass *RegularClass) ClassifierScope {
	return NewNestedClassifierScope(klass)
}

// NestedClassifierScope exposes the classes nested directly in a class.
type NestedClassifierScope struct {
	classes map[name.Name]*RegularClassSymbol
}

// NewNestedClassifierScope indexes the nested classes of klass.
func NewNestedClassifierScope(klass *RegularClass) *NestedClassifierScope {
	s := &NestedClassifierScope{classes: make(map[name.Name]*RegularClassSymbol)}
	for _, nested := range klass.NestedClasses() {
		s.classes[nested.Name()] = nested.Symbol()
	}
	return s
}

// ClassifierByName implements part of the ClassifierScope interface.
func (s *NestedClassifierScope) ClassifierByName(n name.Name) (ClassLikeSymbol, bool) {
	sym, ok := s.classes[n]
	if !ok {
		return nil, false
	}
	return sym, true
}

// ClassifierNames implements part of the ClassifierScope interface.
func (s *NestedClassifierScope) ClassifierNames() []name.Name {
	names := make([]name.Name, 0, len(s.classes))
	for n := range s.classes {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})
	return names
}

// String implements fmt.Stringer
func (s *NestedClassifierScope) String() string {
	var buf strings.Builder
	for _, n := range s.ClassifierNames() {
		buf.WriteString(string(n))
		buf.WriteString(" ")
		buf.WriteString(s.classes[n].String())
		buf.WriteRune('\n')
	}
	return buf.String()
}
