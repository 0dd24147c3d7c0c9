package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/stackb/fir-symbols/pkg/checkers"
	"github.com/stackb/fir-symbols/pkg/collections"
	"github.com/stackb/fir-symbols/pkg/diagnostics"
	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
	"github.com/stackb/fir-symbols/pkg/provider"
	"github.com/stackb/fir-symbols/pkg/resolver"
)

// firsymbols is a program that loads library index files, assembles the
// symbol provider chain, and resolves the class and callable names given as
// positional arguments.  Range expressions given with -range are run through
// the empty range checker.

var defaultProviders = []string{"cloneable", "index"}

type config struct {
	indexFiles    collections.StringSlice
	indexGlobs    collections.StringSlice
	indexExcludes collections.StringSlice
	indexRoot     string
	providers     collections.StringSlice
	ranges        collections.StringSlice
	lightTree     bool
	logLevel      string
	dump          bool
	queries       []string
}

func main() {
	log.SetPrefix("firsymbols: ")
	log.SetFlags(0) // don't print timestamps

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if err := run(cfg, logger, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (*config, error) {
	cfg := new(config)

	fs := flag.NewFlagSet("firsymbols", flag.ContinueOnError)
	fs.Var(&cfg.indexFiles, "index_file", "an index file to load (repeatable)")
	fs.Var(&cfg.indexGlobs, "index_glob", "a doublestar pattern of index files under -index_root (repeatable)")
	fs.Var(&cfg.indexExcludes, "index_exclude", "a doublestar pattern of files to skip from -index_glob matches (repeatable)")
	fs.StringVar(&cfg.indexRoot, "index_root", ".", "the directory -index_glob patterns are relative to")
	fs.Var(&cfg.providers, "symbol_provider", "the name of a symbol provider to consult, in order (repeatable, default cloneable then index)")
	fs.Var(&cfg.ranges, "range", "a range expression such as '2..1' or '1 until n' to check (repeatable)")
	fs.BoolVar(&cfg.lightTree, "light_tree", false, "if true, check -range expressions in their flattened tree form")
	fs.StringVar(&cfg.logLevel, "log_level", "warn", "the log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.dump, "dump", false, "if true, dump resolved declarations")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: firsymbols OPTIONS [CLASS_OR_CALLABLE...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.queries = fs.Args()

	if len(cfg.queries) == 0 && len(cfg.ranges) == 0 {
		return nil, fmt.Errorf("nothing to do: provide queries as positional args or -range expressions")
	}

	return cfg, nil
}

func run(cfg *config, logger zerolog.Logger, out io.Writer) error {
	session := fir.NewSession("firsymbols")

	filenames := append([]string{}, cfg.indexFiles...)
	globbed, err := globIndexFiles(os.DirFS(cfg.indexRoot), cfg.indexGlobs, cfg.indexExcludes)
	if err != nil {
		return err
	}
	for _, filename := range globbed {
		filenames = append(filenames, filepath.Join(cfg.indexRoot, filename))
	}

	index := provider.NewIndexSymbolProvider(logger, session, nil)
	for _, filename := range filenames {
		idx, err := provider.ReadIndexFile(filename)
		if err != nil {
			return err
		}
		if err := index.AddIndex(idx); err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
	}

	cloneable, err := provider.NewCloneableSymbolProvider(session, nil)
	if err != nil {
		return err
	}
	registry := resolver.NewSymbolProviderRegistry()
	for _, p := range []resolver.SymbolProvider{cloneable, index} {
		if err := registry.AddSymbolProvider(p); err != nil {
			return err
		}
	}
	names := cfg.providers
	if len(names) == 0 {
		names = defaultProviders
	}
	providers, err := resolver.NamedSymbolProviders(registry, names)
	if err != nil {
		return err
	}
	chain := resolver.NewChainSymbolProvider(providers...)

	logger.Info().
		Int("files", len(filenames)).
		Str("provider", chain.Name()).
		Msg("symbol providers ready")

	for _, query := range cfg.queries {
		if err := resolve(chain, index, query, cfg.dump, out); err != nil {
			return err
		}
	}

	if len(cfg.ranges) > 0 {
		return checkRanges(session, logger, cfg.ranges, cfg.lightTree, out)
	}
	return nil
}

// resolve prints the declarations matching query.  A query is either a class
// id ("kotlin/collections/Map.Entry") or a dotted name, which is tried as a
// class and then as a top-level callable.
func resolve(chain resolver.SymbolProvider, index *provider.IndexSymbolProvider, query string, dump bool, out io.Writer) error {
	var classId name.ClassId
	var isClass bool
	if strings.Contains(query, "/") {
		id, err := name.ClassIdFromString(query)
		if err != nil {
			return err
		}
		classId, isClass = id, true
	} else {
		fqName := name.NewFqName(query)
		if fqName == provider.CloneableClassId.AsSingleFqName() {
			classId, isClass = provider.CloneableClassId, true
		} else {
			classId, isClass = index.ClassIdForFqName(fqName)
		}
	}

	if isClass {
		if sym, ok := chain.ClassLikeSymbolByClassId(classId); ok {
			printClass(out, sym.Fir())
			if dump {
				spew.Fdump(out, sym.Fir())
			}
			return nil
		}
	}

	if !strings.Contains(query, "/") {
		fqName := name.NewFqName(query)
		if !fqName.IsRoot() {
			callables := chain.TopLevelCallableSymbols(fqName.Parent(), fqName.ShortName())
			for _, callable := range callables {
				if fn, ok := callable.(*fir.NamedFunctionSymbol); ok {
					fmt.Fprintln(out, fn.Fir())
					if dump {
						spew.Fdump(out, fn.Fir())
					}
				}
			}
			if len(callables) > 0 {
				return nil
			}
			if pkg, ok := chain.Package(fqName); ok {
				fmt.Fprintf(out, "package %s\n", pkg)
				return nil
			}
		}
	}

	fmt.Fprintf(out, "%s: not found\n", query)
	return nil
}

func printClass(out io.Writer, klass *fir.RegularClass) {
	fmt.Fprintln(out, klass)
	for _, fn := range klass.Functions() {
		fmt.Fprintf(out, "  %s\n", fn)
	}
	for _, nested := range klass.NestedClasses() {
		fmt.Fprintf(out, "  %s\n", nested)
	}
}

func checkRanges(session *fir.Session, logger zerolog.Logger, ranges []string, light bool, out io.Writer) error {
	var statements []fir.Statement
	for _, expr := range ranges {
		call, err := parseRange(expr, light)
		if err != nil {
			return err
		}
		statements = append(statements, call)
	}

	collector := diagnostics.NewCollector(logger)
	checkers.Run(statements, checkers.NewCheckerContext(session, logger), collector, checkers.EmptyRange)

	reported := make(map[int]bool)
	for _, d := range collector.Diagnostics() {
		for i, stmt := range statements {
			if stmt.Source() == d.Source {
				reported[i] = true
			}
		}
	}
	for i, expr := range ranges {
		if reported[i] {
			fmt.Fprintf(out, "%s: %s\n", expr, diagnostics.EmptyRange.Message)
		} else {
			fmt.Fprintf(out, "%s: ok\n", expr)
		}
	}
	return nil
}
