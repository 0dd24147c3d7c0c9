package resolver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/stackb/fir-symbols/pkg/cache"
	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
	"github.com/stackb/fir-symbols/pkg/resolver"
)

func newClass(t *testing.T, id string) *fir.RegularClassSymbol {
	classId := name.MustParseClassId(id)
	klass, err := (&fir.RegularClassBuilder{
		Session:      fir.NewSession("test"),
		Origin:       fir.OriginLibrary,
		ResolvePhase: fir.PhaseAnalyzedDependencies,
		ClassKind:    fir.Class,
		Name:         classId.ShortClassName(),
		ClassId:      classId,
	}).Build()
	if err != nil {
		t.Fatal(err)
	}
	return klass.Symbol()
}

func newTestProvider(t *testing.T) *resolver.CachingSymbolProvider[*fir.RegularClassSymbol] {
	return resolver.NewCachingSymbolProvider[*fir.RegularClassSymbol](zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel))
}

func TestLookupClass(t *testing.T) {
	p := newTestProvider(t)
	list := newClass(t, "kotlin/collections/List")
	known := map[name.ClassId]*fir.RegularClassSymbol{list.ClassId(): list}

	calls := map[name.ClassId]int{}
	calc := func(id name.ClassId) (*fir.RegularClassSymbol, bool) {
		calls[id]++
		sym, ok := known[id]
		return sym, ok
	}

	missing := name.MustParseClassId("kotlin/collections/Missing")
	for i := 0; i < 3; i++ {
		if got, ok := p.LookupClass(list.ClassId(), calc); !ok || got != list {
			t.Errorf("lookup %d: got %v (%t)", i, got, ok)
		}
		if got, ok := p.LookupClass(missing, calc); ok || got != nil {
			t.Errorf("lookup %d of missing: got %v (%t)", i, got, ok)
		}
	}

	if diff := cmp.Diff(map[name.ClassId]int{list.ClassId(): 1, missing: 1}, calls, cmp.AllowUnexported(name.FqName{})); diff != "" {
		t.Errorf("calc calls (-want +got):\n%s", diff)
	}
	if !p.ClassCache.Contains(missing) {
		t.Errorf("absence should be recorded")
	}

	p.InvalidateClass(missing)
	if p.ClassCache.Contains(missing) {
		t.Errorf("invalidated class should not be recorded")
	}
	p.LookupClass(missing, calc)
	if calls[missing] != 2 {
		t.Errorf("invalidated class should be recalculated, got %d calls", calls[missing])
	}
}

func TestLookupClassWithPostCompute(t *testing.T) {
	p := newTestProvider(t)
	list := newClass(t, "kotlin/collections/List")

	var registered []string
	lookup := func(id name.ClassId) (*fir.RegularClassSymbol, bool) {
		return resolver.LookupClassWithPostCompute(p, id,
			func(id name.ClassId) (*fir.RegularClassSymbol, bool, string) {
				if id == list.ClassId() {
					return list, true, "metadata:" + id.String()
				}
				return nil, false, "none"
			},
			func(sym *fir.RegularClassSymbol, extra string) {
				registered = append(registered, extra)
			},
		)
	}

	for i := 0; i < 4; i++ {
		if got, ok := lookup(list.ClassId()); !ok || got != list {
			t.Fatalf("lookup %d: got %v (%t)", i, got, ok)
		}
		if _, ok := lookup(name.MustParseClassId("a/B")); ok {
			t.Fatalf("lookup %d: unexpected hit", i)
		}
	}

	if diff := cmp.Diff([]string{"metadata:kotlin/collections/List"}, registered); diff != "" {
		t.Errorf("post compute (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(cache.Stats{Hits: 6, Misses: 2}, p.ClassCache.Stats()); diff != "" {
		t.Errorf("stats (-want +got):\n%s", diff)
	}
}

func TestLookupTopLevelCallables(t *testing.T) {
	p := newTestProvider(t)
	pkg := name.NewFqName("kotlin.io")

	calls := 0
	calc := func(id name.CallableId) []fir.CallableSymbol {
		calls++
		return nil
	}

	for i := 0; i < 3; i++ {
		if got := p.LookupTopLevelCallables(pkg, "println", calc); len(got) != 0 {
			t.Errorf("lookup %d: got %v", i, got)
		}
	}
	if calls != 1 {
		t.Errorf("empty result should be memoized, got %d calls", calls)
	}

	id := name.NewTopLevelCallableId(pkg, "println")
	if !p.TopLevelCallableCache.Contains(id) {
		t.Errorf("callables should be recorded under %v", id)
	}
	p.InvalidateTopLevelCallables(pkg, "println")
	if p.TopLevelCallableCache.Contains(id) {
		t.Errorf("callables should be invalidated")
	}
}

func TestLookupPackage(t *testing.T) {
	p := newTestProvider(t)

	calls := 0
	calc := func(fq name.FqName) (name.FqName, bool) {
		calls++
		return fq, fq.StartsWith(name.BuiltInsPackage)
	}

	for i := 0; i < 2; i++ {
		if got, ok := p.LookupPackage(name.NewFqName("kotlin.io"), calc); !ok || got.String() != "kotlin.io" {
			t.Errorf("lookup %d: got %v (%t)", i, got, ok)
		}
		if _, ok := p.LookupPackage(name.NewFqName("java.io"), calc); ok {
			t.Errorf("lookup %d: java.io should not exist", i)
		}
	}
	if calls != 2 {
		t.Errorf("want 2 calls, got %d", calls)
	}

	p.InvalidatePackage(name.NewFqName("java.io"))
	if p.PackageCache.Contains(name.NewFqName("java.io")) {
		t.Errorf("package should be invalidated")
	}
}
