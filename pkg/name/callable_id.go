package name

// CallableId identifies a function or property by its owner and simple name.
// A top-level callable has a root ClassName.
type CallableId struct {
	PackageName  FqName
	ClassName    FqName
	CallableName Name
}

// NewTopLevelCallableId constructs the id of a package-level callable.
func NewTopLevelCallableId(pkg FqName, callable Name) CallableId {
	return CallableId{
		PackageName:  pkg,
		CallableName: callable,
	}
}

// NewMemberCallableId constructs the id of a callable declared in a class.
func NewMemberCallableId(owner ClassId, callable Name) CallableId {
	return CallableId{
		PackageName:  owner.PackageFqName,
		ClassName:    owner.RelativeClassName,
		CallableName: callable,
	}
}

// ClassId returns the owning class, or false for top-level callables.
func (c CallableId) ClassId() (ClassId, bool) {
	if c.ClassName.IsRoot() {
		return ClassId{}, false
	}
	return NewNestedClassId(c.PackageName, c.ClassName), true
}

// String implements fmt.Stringer
func (c CallableId) String() string {
	if owner, ok := c.ClassId(); ok {
		return owner.String() + "." + string(c.CallableName)
	}
	return NewClassId(c.PackageName, c.CallableName).String()
}
