package provider

import (
	"fmt"
	"sort"

	"github.com/dghubble/trie"
	"github.com/rs/zerolog"

	"github.com/stackb/fir-symbols/pkg/collections"
	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
	"github.com/stackb/fir-symbols/pkg/resolver"
)

const indexName = "index"

// IndexSymbolProvider resolves declarations from library index metadata.
// Declarations are built on first lookup and memoized, as are misses.
type IndexSymbolProvider struct {
	logger        zerolog.Logger
	session       *fir.Session
	scopeProvider fir.ScopeProvider
	cache         *resolver.CachingSymbolProvider[*fir.RegularClassSymbol]

	classes   map[name.ClassId]*ClassEntry
	nested    map[name.ClassId][]name.ClassId
	functions map[name.CallableId][]*FunctionEntry
	packages  *trie.PathTrie

	// members is filled in as classes are resolved.
	members map[name.CallableId]*fir.NamedFunctionSymbol
}

// NewIndexSymbolProvider constructs an empty provider.  Use AddIndex to
// supply metadata.
func NewIndexSymbolProvider(logger zerolog.Logger, session *fir.Session, scopeProvider fir.ScopeProvider) *IndexSymbolProvider {
	return &IndexSymbolProvider{
		logger:        logger,
		session:       session,
		scopeProvider: scopeProvider,
		cache:         resolver.NewCachingSymbolProvider[*fir.RegularClassSymbol](logger),
		classes:       make(map[name.ClassId]*ClassEntry),
		nested:        make(map[name.ClassId][]name.ClassId),
		functions:     make(map[name.CallableId][]*FunctionEntry),
		packages: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: collections.DotSegmenter,
		}),
		members: make(map[name.CallableId]*fir.NamedFunctionSymbol),
	}
}

// Name implements part of the resolver.SymbolProvider interface.
func (p *IndexSymbolProvider) Name() string {
	return indexName
}

// Cache returns the underlying caches.
func (p *IndexSymbolProvider) Cache() *resolver.CachingSymbolProvider[*fir.RegularClassSymbol] {
	return p.cache
}

// AddIndex registers the entries of index.  It is an error to register the
// same class twice.  The index is validated before anything is registered,
// so a failed AddIndex leaves the provider unchanged.  Recorded outcomes
// that the new entries may change are invalidated.
func (p *IndexSymbolProvider) AddIndex(index *Index) error {
	classIds := make([]name.ClassId, len(index.Classes))
	seen := make(map[name.ClassId]bool, len(index.Classes))
	for i, entry := range index.Classes {
		classId, err := name.ClassIdFromString(entry.Id)
		if err != nil {
			return err
		}
		if _, ok := p.classes[classId]; ok || seen[classId] {
			return fmt.Errorf("duplicate class %s", classId)
		}
		seen[classId] = true
		classIds[i] = classId
	}
	callableIds := make([]name.CallableId, len(index.Functions))
	for i, entry := range index.Functions {
		callableId, err := parseTopLevelCallableId(entry.Id)
		if err != nil {
			return err
		}
		callableIds[i] = callableId
	}

	for i, entry := range index.Classes {
		classId := classIds[i]
		p.classes[classId] = entry
		p.cache.InvalidateClass(classId)
		if outer, ok := classId.OuterClassId(); ok {
			p.nested[outer] = append(p.nested[outer], classId)
		}
		// outer classes own their nested instances, so every enclosing level
		// must be rebuilt
		for outer, ok := classId.OuterClassId(); ok; outer, ok = outer.OuterClassId() {
			p.cache.InvalidateClass(outer)
		}
		p.putPackage(classId.PackageFqName)
	}

	for i, entry := range index.Functions {
		callableId := callableIds[i]
		p.functions[callableId] = append(p.functions[callableId], entry)
		p.cache.InvalidateTopLevelCallables(callableId.PackageName, callableId.CallableName)
		p.putPackage(callableId.PackageName)
	}

	p.logger.Debug().
		Int("classes", len(index.Classes)).
		Int("functions", len(index.Functions)).
		Msg("added index")

	return nil
}

// putPackage records pkg and all its parents as existing packages.
func (p *IndexSymbolProvider) putPackage(pkg name.FqName) {
	for ; !pkg.IsRoot(); pkg = pkg.Parent() {
		p.cache.InvalidatePackage(pkg)
		if p.packages.Get(pkg.String()) != nil {
			continue
		}
		p.packages.Put(pkg.String(), pkg)
	}
}

// ClassLikeSymbolByClassId implements part of the resolver.SymbolProvider
// interface.
func (p *IndexSymbolProvider) ClassLikeSymbolByClassId(classId name.ClassId) (fir.ClassLikeSymbol, bool) {
	sym, ok := resolver.LookupClassWithPostCompute(p.cache, classId, p.calculateClass, p.registerMembers)
	if !ok {
		return nil, false
	}
	return sym, true
}

func (p *IndexSymbolProvider) calculateClass(classId name.ClassId) (*fir.RegularClassSymbol, bool, *ClassEntry) {
	entry, ok := p.classes[classId]
	if !ok {
		return nil, false, nil
	}

	// nested classes are owned by their outer class, so share its instance
	if outerId, ok := classId.OuterClassId(); ok {
		if outer, ok := p.ClassLikeSymbolByClassId(outerId); ok {
			for _, nested := range outer.Fir().NestedClasses() {
				if nested.ClassId() == classId {
					return nested.Symbol(), true, entry
				}
			}
		}
	}

	klass, err := p.buildClass(classId)
	if err != nil {
		p.logger.Warn().Err(err).Str("class", classId.String()).Msg("skipping malformed class entry")
		return nil, false, nil
	}
	return klass.Symbol(), true, entry
}

func (p *IndexSymbolProvider) buildClass(classId name.ClassId) (*fir.RegularClass, error) {
	entry := p.classes[classId]

	kind, err := fir.ParseClassKind(entry.Kind)
	if err != nil {
		return nil, err
	}
	status, err := parseStatus(entry.Visibility, entry.Modality)
	if err != nil {
		return nil, err
	}

	var declarations []fir.Declaration
	for _, fn := range entry.Functions {
		member, err := p.buildFunction(name.NewMemberCallableId(classId, name.Identifier(fn.Name)), fn)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, member)
	}
	for _, nestedId := range p.nested[classId] {
		nested, err := p.buildClass(nestedId)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, nested)
	}

	return (&fir.RegularClassBuilder{
		Session:       p.session,
		Origin:        fir.OriginLibrary,
		ResolvePhase:  fir.PhaseAnalyzedDependencies,
		Status:        status,
		ClassKind:     kind,
		Name:          classId.ShortClassName(),
		ClassId:       classId,
		Declarations:  declarations,
		ScopeProvider: p.scopeProvider,
	}).Build()
}

func (p *IndexSymbolProvider) buildFunction(callableId name.CallableId, entry *FunctionEntry) (*fir.SimpleFunction, error) {
	status, err := parseStatus(entry.Visibility, entry.Modality)
	if err != nil {
		return nil, err
	}
	returnTypeRef, err := parseTypeRef(entry.Returns, p.session.BuiltinTypes.UnitType)
	if err != nil {
		return nil, err
	}
	var params []fir.ValueParameter
	for _, param := range entry.Parameters {
		typeRef, err := parseTypeRef(param.Type, p.session.BuiltinTypes.AnyType)
		if err != nil {
			return nil, err
		}
		params = append(params, fir.ValueParameter{Name: name.Identifier(param.Name), TypeRef: typeRef})
	}
	return (&fir.SimpleFunctionBuilder{
		Session:         p.session,
		Origin:          fir.OriginLibrary,
		ResolvePhase:    fir.PhaseAnalyzedDependencies,
		Status:          status,
		Name:            callableId.CallableName,
		CallableId:      callableId,
		ReturnTypeRef:   returnTypeRef,
		ValueParameters: params,
	}).Build()
}

// registerMembers indexes the member functions of a freshly resolved class.
func (p *IndexSymbolProvider) registerMembers(sym *fir.RegularClassSymbol, entry *ClassEntry) {
	for _, fn := range sym.Fir().Functions() {
		p.members[fn.Symbol().CallableId()] = fn.Symbol()
	}
	p.logger.Debug().
		Str("class", sym.ClassId().String()).
		Int("members", len(entry.Functions)).
		Msg("registered members")
}

// MemberFunction returns the member function with the given id, resolving
// its owner class first.
func (p *IndexSymbolProvider) MemberFunction(callableId name.CallableId) (*fir.NamedFunctionSymbol, bool) {
	owner, ok := callableId.ClassId()
	if !ok {
		return nil, false
	}
	if _, ok := p.ClassLikeSymbolByClassId(owner); !ok {
		return nil, false
	}
	sym, ok := p.members[callableId]
	return sym, ok
}

// TopLevelCallableSymbols implements part of the resolver.SymbolProvider
// interface.
func (p *IndexSymbolProvider) TopLevelCallableSymbols(pkg name.FqName, n name.Name) []fir.CallableSymbol {
	return p.cache.LookupTopLevelCallables(pkg, n, p.calculateCallables)
}

func (p *IndexSymbolProvider) calculateCallables(callableId name.CallableId) []fir.CallableSymbol {
	var callables []fir.CallableSymbol
	for _, entry := range p.functions[callableId] {
		fn, err := p.buildFunction(callableId, entry)
		if err != nil {
			p.logger.Warn().Err(err).Str("function", callableId.String()).Msg("skipping malformed function entry")
			continue
		}
		callables = append(callables, fn.Symbol())
	}
	return callables
}

// NestedClassifierScope implements part of the resolver.SymbolProvider
// interface.
func (p *IndexSymbolProvider) NestedClassifierScope(classId name.ClassId) (fir.ClassifierScope, bool) {
	sym, ok := p.ClassLikeSymbolByClassId(classId)
	if !ok {
		return nil, false
	}
	klass := sym.Fir()
	return klass.ScopeProvider().NestedClassifierScope(klass), true
}

// Package implements part of the resolver.SymbolProvider interface.
func (p *IndexSymbolProvider) Package(fqName name.FqName) (name.FqName, bool) {
	return p.cache.LookupPackage(fqName, func(fq name.FqName) (name.FqName, bool) {
		if fq.IsRoot() {
			return fq, true
		}
		if value := p.packages.Get(fq.String()); value != nil {
			return value.(name.FqName), true
		}
		return name.FqName{}, false
	})
}

// ClassIdForFqName splits a dotted name into package and class parts using
// the longest known package prefix.
func (p *IndexSymbolProvider) ClassIdForFqName(fqName name.FqName) (name.ClassId, bool) {
	pkg := name.Root
	p.packages.WalkPath(fqName.String(), func(key string, value interface{}) error {
		if candidate := value.(name.FqName); candidate != fqName {
			pkg = candidate
		}
		return nil
	})
	segments := fqName.PathSegments()[len(pkg.PathSegments()):]
	if len(segments) == 0 {
		return name.ClassId{}, false
	}
	return name.NewNestedClassId(pkg, name.FqNameOf(segments...)), true
}

// ClassIds returns the ids of all indexed classes, sorted.
func (p *IndexSymbolProvider) ClassIds() []name.ClassId {
	ids := make([]name.ClassId, 0, len(p.classes))
	for id := range p.classes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}
