package resolver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"

	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
	"github.com/stackb/fir-symbols/pkg/resolver"
	"github.com/stackb/fir-symbols/pkg/resolver/mocks"
)

type callable string

func (c callable) CallableId() name.CallableId {
	return name.NewTopLevelCallableId(name.BuiltInsPackage, name.Name(c))
}

func TestChainSymbolProviderClass(t *testing.T) {
	list := newClass(t, "kotlin/collections/List")
	first := mocks.NewSymbolProvider(t)
	second := mocks.NewSymbolProvider(t)
	third := mocks.NewSymbolProvider(t)

	first.On("ClassLikeSymbolByClassId", list.ClassId()).Return(nil, false)
	second.On("ClassLikeSymbolByClassId", list.ClassId()).Return(list, true)

	chain := resolver.NewChainSymbolProvider(first, second, third)
	got, ok := chain.ClassLikeSymbolByClassId(list.ClassId())
	if !ok || got != list {
		t.Fatalf("got %v (%t)", got, ok)
	}
	third.AssertNotCalled(t, "ClassLikeSymbolByClassId", mock.Anything)
}

func TestChainSymbolProviderMisses(t *testing.T) {
	classId := name.MustParseClassId("a/B")
	pkg := name.NewFqName("a")
	first := mocks.NewSymbolProvider(t)
	second := mocks.NewSymbolProvider(t)
	for _, p := range []*mocks.SymbolProvider{first, second} {
		p.On("ClassLikeSymbolByClassId", classId).Return(nil, false)
		p.On("NestedClassifierScope", classId).Return(nil, false)
		p.On("Package", pkg).Return(name.FqName{}, false)
	}

	chain := resolver.NewChainSymbolProvider(first, second)
	if _, ok := chain.ClassLikeSymbolByClassId(classId); ok {
		t.Errorf("class should not be found")
	}
	if _, ok := chain.NestedClassifierScope(classId); ok {
		t.Errorf("scope should not be found")
	}
	if _, ok := chain.Package(pkg); ok {
		t.Errorf("package should not be found")
	}
}

func TestChainSymbolProviderCallables(t *testing.T) {
	pkg := name.BuiltInsPackage
	first := mocks.NewSymbolProvider(t)
	second := mocks.NewSymbolProvider(t)
	first.On("TopLevelCallableSymbols", pkg, name.Name("println")).Return([]fir.CallableSymbol{callable("println")})
	second.On("TopLevelCallableSymbols", pkg, name.Name("println")).Return(nil)
	first.On("Name").Return("first")
	second.On("Name").Return("second")

	chain := resolver.NewChainSymbolProvider(first, second)
	got := chain.TopLevelCallableSymbols(pkg, "println")
	if diff := cmp.Diff([]fir.CallableSymbol{callable("println")}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := chain.Name(); got != "chain(first,second)" {
		t.Errorf("name: got %q", got)
	}
}

func TestChainSymbolProviderPackage(t *testing.T) {
	pkg := name.NewFqName("kotlin.io")
	first := mocks.NewSymbolProvider(t)
	second := mocks.NewSymbolProvider(t)
	first.On("Package", pkg).Return(pkg, true)

	chain := resolver.NewChainSymbolProvider(first, second)
	if got, ok := chain.Package(pkg); !ok || got != pkg {
		t.Errorf("got %v (%t)", got, ok)
	}
	second.AssertNotCalled(t, "Package", mock.Anything)
}

func TestChainSymbolProviderAsksEachInOrder(t *testing.T) {
	first := mocks.NewClassIdCapturer(t)
	second := mocks.NewClassIdCapturer(t)
	chain := resolver.NewChainSymbolProvider(first.Provider, second.Provider)

	ids := []name.ClassId{
		name.MustParseClassId("a/B"),
		name.MustParseClassId("a/B.C"),
	}
	for _, id := range ids {
		if _, ok := chain.ClassLikeSymbolByClassId(id); ok {
			t.Fatalf("%s: unexpected hit", id)
		}
	}

	if diff := cmp.Diff(ids, first.Got, cmp.AllowUnexported(name.FqName{})); diff != "" {
		t.Errorf("first (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ids, second.Got, cmp.AllowUnexported(name.FqName{})); diff != "" {
		t.Errorf("second (-want +got):\n%s", diff)
	}
}
