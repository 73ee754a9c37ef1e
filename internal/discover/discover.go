// Package discover loads Go packages and finds the named types the typearg
// CLI and report builder operate on.
//
// Loading is memoized per (dir, patterns) so repeated lookups against the
// same packages pay the go/packages cost once.
package discover

import (
	"fmt"
	"go/types"
	"log/slog"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/broady/typearg/lookup"
)

// Loader loads packages on demand.
type Loader struct {
	// Dir is the working directory for pattern resolution. Empty means the
	// process working directory.
	Dir string

	// Logger receives load diagnostics. Nil means slog.Default.
	Logger *slog.Logger

	cache *lookup.Cache[*Result]
}

// NewLoader returns a Loader resolving patterns relative to dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir, cache: lookup.New[*Result]()}
}

// Result holds the loaded packages for one pattern set.
type Result struct {
	Pkgs []*packages.Package
}

// Load loads the packages matching patterns.
//
// Patterns follow go command semantics: ".", an import path, or a relative
// or absolute directory path.
func (l *Loader) Load(patterns ...string) (*Result, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no package patterns specified")
	}
	key := l.Dir + "\x00" + strings.Join(patterns, "\x00")
	return l.cache.Get(key, func() (*Result, error) {
		return l.load(patterns)
	})
}

func (l *Loader) load(patterns []string) (*Result, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles |
			packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir: l.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found matching %q", patterns)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}

	l.logger().Debug("loaded packages", "patterns", patterns, "count", len(pkgs))
	return &Result{Pkgs: pkgs}, nil
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// LookupType finds a named type by name across the loaded packages. The
// name may be qualified with a package name ("pkg.Type") to disambiguate.
func (r *Result) LookupType(name string) (*types.TypeName, error) {
	pkgName, bare := splitQualified(name)
	for _, pkg := range r.Pkgs {
		if pkgName != "" && pkg.Types.Name() != pkgName {
			continue
		}
		obj := pkg.Types.Scope().Lookup(bare)
		if obj == nil {
			continue
		}
		if tn, ok := obj.(*types.TypeName); ok {
			return tn, nil
		}
	}
	return nil, fmt.Errorf("type %s not found in loaded packages", name)
}

// ExportedTypes lists the exported named types of every loaded package in
// scope order.
func (r *Result) ExportedTypes() []*types.TypeName {
	var out []*types.TypeName
	for _, pkg := range r.Pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			if !obj.Exported() {
				continue
			}
			if tn, ok := obj.(*types.TypeName); ok {
				out = append(out, tn)
			}
		}
	}
	return out
}

func splitQualified(name string) (pkg, bare string) {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
