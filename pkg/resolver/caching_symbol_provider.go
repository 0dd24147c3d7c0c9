package resolver

import (
	"github.com/rs/zerolog"

	"github.com/stackb/fir-symbols/pkg/cache"
	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
)

// CachingSymbolProvider is the memoizing base of providers whose lookups are
// expensive.  Concrete providers embed it and pass their own calculation to
// the Lookup methods.  It is not safe for concurrent use.
type CachingSymbolProvider[C fir.ClassLikeSymbol] struct {
	logger zerolog.Logger

	ClassCache            *cache.Cache[name.ClassId, C]
	TopLevelCallableCache *cache.Cache[name.CallableId, []fir.CallableSymbol]
	PackageCache          *cache.Cache[name.FqName, name.FqName]
}

// NewCachingSymbolProvider constructs a CachingSymbolProvider with empty
// caches.
func NewCachingSymbolProvider[C fir.ClassLikeSymbol](logger zerolog.Logger) *CachingSymbolProvider[C] {
	return &CachingSymbolProvider[C]{
		logger:                logger,
		ClassCache:            cache.New[name.ClassId, C](),
		TopLevelCallableCache: cache.New[name.CallableId, []fir.CallableSymbol](),
		PackageCache:          cache.New[name.FqName, name.FqName](),
	}
}

// LookupClass returns the memoized class for classId, calling calc on the
// first lookup only.
func (p *CachingSymbolProvider[C]) LookupClass(classId name.ClassId, calc func(name.ClassId) (C, bool)) (C, bool) {
	return p.ClassCache.LookupOrCalculate(classId, func(id name.ClassId) (C, bool) {
		sym, ok := calc(id)
		p.logger.Debug().Str("class", id.String()).Bool("found", ok).Msg("class cache miss")
		return sym, ok
	})
}

// LookupClassWithPostCompute is like LookupClass, but also calls postCompute
// once with the class and the payload calc returned, on the lookup that
// first finds the class.
func LookupClassWithPostCompute[C fir.ClassLikeSymbol, T any](
	p *CachingSymbolProvider[C],
	classId name.ClassId,
	calc func(name.ClassId) (C, bool, T),
	postCompute func(C, T),
) (C, bool) {
	return cache.LookupOrCalculateWithPostCompute(p.ClassCache, classId,
		func(id name.ClassId) (C, bool, T) {
			sym, ok, extra := calc(id)
			p.logger.Debug().Str("class", id.String()).Bool("found", ok).Msg("class cache miss")
			return sym, ok, extra
		},
		func(sym C, extra T) {
			p.logger.Debug().Str("class", sym.ClassId().String()).Msg("post compute")
			postCompute(sym, extra)
		},
	)
}

// LookupTopLevelCallables returns the memoized package-level callables.  An
// empty result is recorded too, so calc runs once per id.
func (p *CachingSymbolProvider[C]) LookupTopLevelCallables(pkg name.FqName, n name.Name, calc func(name.CallableId) []fir.CallableSymbol) []fir.CallableSymbol {
	callables, _ := p.TopLevelCallableCache.LookupOrCalculate(name.NewTopLevelCallableId(pkg, n), func(id name.CallableId) ([]fir.CallableSymbol, bool) {
		got := calc(id)
		p.logger.Debug().Str("callable", id.String()).Int("count", len(got)).Msg("callable cache miss")
		return got, true
	})
	return callables
}

// LookupPackage returns the memoized canonical package name.
func (p *CachingSymbolProvider[C]) LookupPackage(fqName name.FqName, calc func(name.FqName) (name.FqName, bool)) (name.FqName, bool) {
	return p.PackageCache.LookupOrCalculate(fqName, func(fq name.FqName) (name.FqName, bool) {
		pkg, ok := calc(fq)
		p.logger.Debug().Str("package", fq.String()).Bool("found", ok).Msg("package cache miss")
		return pkg, ok
	})
}

// InvalidateClass forgets the recorded outcome for classId.
func (p *CachingSymbolProvider[C]) InvalidateClass(classId name.ClassId) {
	p.ClassCache.Invalidate(classId)
}

// InvalidateTopLevelCallables forgets the recorded callables for pkg.n.
func (p *CachingSymbolProvider[C]) InvalidateTopLevelCallables(pkg name.FqName, n name.Name) {
	p.TopLevelCallableCache.Invalidate(name.NewTopLevelCallableId(pkg, n))
}

// InvalidatePackage forgets the recorded outcome for fqName.
func (p *CachingSymbolProvider[C]) InvalidatePackage(fqName name.FqName) {
	p.PackageCache.Invalidate(fqName)
}
