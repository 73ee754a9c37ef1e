// Package testsrc type-checks Go source fragments in memory so tests can
// build go/types values without touching the filesystem.
package testsrc

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

// Check parses and type-checks src as a single-file package named after its
// package clause, failing the test on any parse or type error.
func Check(t *testing.T, src string) *types.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", src, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check(file.Name.Name, fset, []*ast.File{file}, nil)
	if err != nil {
		t.Fatalf("type check: %v", err)
	}
	return pkg
}

// TypeOf looks up the named type in pkg's scope, failing the test when the
// name is missing or not a type.
func TypeOf(t *testing.T, pkg *types.Package, name string) types.Type {
	t.Helper()

	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		t.Fatalf("type %s not found in package %s", name, pkg.Name())
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		t.Fatalf("%s is a %T, not a type", name, obj)
	}
	return tn.Type()
}

// Named is TypeOf narrowed to *types.Named.
func Named(t *testing.T, pkg *types.Package, name string) *types.Named {
	t.Helper()

	named, ok := TypeOf(t, pkg, name).(*types.Named)
	if !ok {
		t.Fatalf("%s is not a named type", name)
	}
	return named
}

// Func looks up a package-level function, failing the test when missing.
func Func(t *testing.T, pkg *types.Package, name string) *types.Func {
	t.Helper()

	obj := pkg.Scope().Lookup(name)
	fn, ok := obj.(*types.Func)
	if !ok {
		t.Fatalf("func %s not found in package %s", name, pkg.Name())
	}
	return fn
}
