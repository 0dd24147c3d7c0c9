package provider

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
)

// Index is the declaration metadata of a library, as read from an index file.
//
//	classes:
//	  - id: kotlin/collections/Map
//	    kind: interface
//	    modality: abstract
//	    functions:
//	      - name: get
//	        returns: kotlin/Any?
//	        parameters:
//	          - name: key
//	            type: kotlin/Any
//	functions:
//	  - id: kotlin/io/println
type Index struct {
	Classes   []*ClassEntry    `yaml:"classes,omitempty"`
	Functions []*FunctionEntry `yaml:"functions,omitempty"`
}

// ClassEntry describes one class.  Nested classes are separate entries whose
// id has the outer class as prefix ("a/Outer.Inner").
type ClassEntry struct {
	Id         string           `yaml:"id"`
	Kind       string           `yaml:"kind,omitempty"`
	Visibility string           `yaml:"visibility,omitempty"`
	Modality   string           `yaml:"modality,omitempty"`
	Functions  []*FunctionEntry `yaml:"functions,omitempty"`
}

// FunctionEntry describes a function.  Member functions set Name; top-level
// functions set Id ("pkg/path/name").
type FunctionEntry struct {
	Id         string            `yaml:"id,omitempty"`
	Name       string            `yaml:"name,omitempty"`
	Visibility string            `yaml:"visibility,omitempty"`
	Modality   string            `yaml:"modality,omitempty"`
	Returns    string            `yaml:"returns,omitempty"`
	Parameters []*ParameterEntry `yaml:"parameters,omitempty"`
}

// ParameterEntry describes a function parameter.
type ParameterEntry struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// ReadIndexFile reads a YAML index file.
func ReadIndexFile(filename string) (*Index, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	defer f.Close()

	index, err := ReadIndex(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return index, nil
}

// ReadIndex decodes a YAML index.
func ReadIndex(r io.Reader) (*Index, error) {
	var index Index
	if err := yaml.NewDecoder(r).Decode(&index); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding index: %w", err)
	}
	return &index, nil
}

// parseTypeRef parses "a/b/C" or "a/b/C?".  The empty string is def.
func parseTypeRef(s string, def fir.ResolvedTypeRef) (fir.ResolvedTypeRef, error) {
	if s == "" {
		return def, nil
	}
	nullable := strings.HasSuffix(s, "?")
	classId, err := name.ClassIdFromString(strings.TrimSuffix(s, "?"))
	if err != nil {
		return fir.ResolvedTypeRef{}, err
	}
	return fir.ResolvedTypeRef{ClassId: classId, Nullable: nullable}, nil
}

// parseTopLevelCallableId parses "a/b/name".
func parseTopLevelCallableId(s string) (name.CallableId, error) {
	id, err := name.ClassIdFromString(s)
	if err != nil {
		return name.CallableId{}, fmt.Errorf("invalid function id %q: %w", s, err)
	}
	if id.IsNestedClass() {
		return name.CallableId{}, fmt.Errorf("invalid function id %q: not top-level", s)
	}
	return name.NewTopLevelCallableId(id.PackageFqName, id.ShortClassName()), nil
}

func parseStatus(visibility, modality string) (fir.DeclarationStatus, error) {
	v, err := fir.ParseVisibility(visibility)
	if err != nil {
		return fir.DeclarationStatus{}, err
	}
	m, err := fir.ParseModality(modality)
	if err != nil {
		return fir.DeclarationStatus{}, err
	}
	return fir.DeclarationStatus{Visibility: v, Modality: m}, nil
}
