package name

import "strings"

// Name is a single identifier segment, such as a class or function name.
type Name string

// Identifier returns a regular (non-special) name.
func Identifier(s string) Name {
	return Name(s)
}

// Special returns a compiler-internal name in angle brackets, e.g. "<init>".
func Special(s string) Name {
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		return Name(s)
	}
	return Name("<" + s + ">")
}

// IsSpecial reports whether the name is compiler-internal.
func (n Name) IsSpecial() bool {
	return strings.HasPrefix(string(n), "<")
}

// String implements fmt.Stringer
func (n Name) String() string {
	return string(n)
}

// FqName is a fully-qualified dot-separated path such as "kotlin.collections".
// The zero value is the root path.
type FqName struct {
	path string
}

// Root is the empty FqName.
var Root = FqName{}

// NewFqName constructs a FqName from its dot-separated form.
func NewFqName(path string) FqName {
	return FqName{path: strings.Trim(path, ".")}
}

// FqNameOf constructs a FqName from segments.
func FqNameOf(segments ...Name) FqName {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, string(s))
		}
	}
	return FqName{path: strings.Join(parts, ".")}
}

// IsRoot reports whether this is the root path.
func (f FqName) IsRoot() bool {
	return f.path == ""
}

// Child returns the path extended with the given segment.
func (f FqName) Child(n Name) FqName {
	if f.IsRoot() {
		return FqName{path: string(n)}
	}
	return FqName{path: f.path + "." + string(n)}
}

// Parent returns the path minus its last segment.  The parent of root is root.
func (f FqName) Parent() FqName {
	i := strings.LastIndexByte(f.path, '.')
	if i < 0 {
		return Root
	}
	return FqName{path: f.path[:i]}
}

// ShortName returns the last segment.
func (f FqName) ShortName() Name {
	i := strings.LastIndexByte(f.path, '.')
	return Name(f.path[i+1:])
}

// PathSegments returns the segments in order.
func (f FqName) PathSegments() []Name {
	if f.IsRoot() {
		return nil
	}
	parts := strings.Split(f.path, ".")
	segments := make([]Name, len(parts))
	for i, p := range parts {
		segments[i] = Name(p)
	}
	return segments
}

// StartsWith reports whether prefix is equal to f or one of its ancestors,
// on segment boundaries.
func (f FqName) StartsWith(prefix FqName) bool {
	if prefix.IsRoot() || f == prefix {
		return true
	}
	return strings.HasPrefix(f.path, prefix.path+".")
}

// String implements fmt.Stringer
func (f FqName) String() string {
	return f.path
}
