package name

import (
	"fmt"
	"strings"
)

// ClassId identifies a class by its package and its (possibly nested) name
// relative to that package.  ClassId values are comparable and may be used as
// map keys.
type ClassId struct {
	PackageFqName     FqName
	RelativeClassName FqName
	IsLocal           bool
}

// NewClassId constructs the id of a top-level class.
func NewClassId(pkg FqName, className Name) ClassId {
	return ClassId{
		PackageFqName:     pkg,
		RelativeClassName: FqNameOf(className),
	}
}

// NewNestedClassId constructs a class id from a relative (dotted) class path.
func NewNestedClassId(pkg FqName, relative FqName) ClassId {
	return ClassId{
		PackageFqName:     pkg,
		RelativeClassName: relative,
	}
}

// ClassIdFromString parses the "a/b/Outer.Inner" form produced by String.
func ClassIdFromString(s string) (ClassId, error) {
	if s == "" {
		return ClassId{}, fmt.Errorf("empty class id")
	}
	var pkg, rel string
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		pkg, rel = s[:i], s[i+1:]
	} else {
		rel = s
	}
	if rel == "" || strings.HasPrefix(rel, ".") || strings.HasSuffix(rel, ".") {
		return ClassId{}, fmt.Errorf("invalid class id %q: missing class name", s)
	}
	return ClassId{
		PackageFqName:     NewFqName(strings.ReplaceAll(pkg, "/", ".")),
		RelativeClassName: NewFqName(rel),
	}, nil
}

// MustParseClassId is like ClassIdFromString but panics on error.
func MustParseClassId(s string) ClassId {
	id, err := ClassIdFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsZero reports whether the id is unset.
func (c ClassId) IsZero() bool {
	return c.RelativeClassName.IsRoot()
}

// ShortClassName returns the innermost class name.
func (c ClassId) ShortClassName() Name {
	return c.RelativeClassName.ShortName()
}

// IsNestedClass reports whether the class has an outer class.
func (c ClassId) IsNestedClass() bool {
	return !c.RelativeClassName.Parent().IsRoot()
}

// OuterClassId returns the id of the enclosing class, if any.
func (c ClassId) OuterClassId() (ClassId, bool) {
	if !c.IsNestedClass() {
		return ClassId{}, false
	}
	return ClassId{
		PackageFqName:     c.PackageFqName,
		RelativeClassName: c.RelativeClassName.Parent(),
		IsLocal:           c.IsLocal,
	}, true
}

// CreateNestedClassId returns the id of a class nested in this one.
func (c ClassId) CreateNestedClassId(n Name) ClassId {
	return ClassId{
		PackageFqName:     c.PackageFqName,
		RelativeClassName: c.RelativeClassName.Child(n),
		IsLocal:           c.IsLocal,
	}
}

// AsSingleFqName joins the package and relative class name.
func (c ClassId) AsSingleFqName() FqName {
	if c.PackageFqName.IsRoot() {
		return c.RelativeClassName
	}
	return NewFqName(c.PackageFqName.String() + "." + c.RelativeClassName.String())
}

// String implements fmt.Stringer.  The package uses '/' separators so that
// the package/class boundary survives a round trip.
func (c ClassId) String() string {
	pkg := strings.ReplaceAll(c.PackageFqName.String(), ".", "/")
	if pkg == "" {
		return c.RelativeClassName.String()
	}
	return pkg + "/" + c.RelativeClassName.String()
}
