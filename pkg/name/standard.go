package name

// BuiltInsPackage is the package of the language built-ins.
var BuiltInsPackage = NewFqName("kotlin")

// Well-known built-in class ids.
var (
	AnyClassId     = NewClassId(BuiltInsPackage, "Any")
	NothingClassId = NewClassId(BuiltInsPackage, "Nothing")
	UnitClassId    = NewClassId(BuiltInsPackage, "Unit")
	IntClassId     = NewClassId(BuiltInsPackage, "Int")
	LongClassId    = NewClassId(BuiltInsPackage, "Long")
)
