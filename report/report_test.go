package report

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/typearg"
	"github.com/broady/typearg/internal/testsrc"
)

const src = `package fixture

type Element[T any] interface{ Get() T }

type Box[T any] struct {
	Element[T]
	Value T
}

type StringBox struct{ Box[string] }

type Open[U any] struct{ Box[U] }

type Loose struct{ ID int }
`

func TestDescribe(t *testing.T) {
	pkg := testsrc.Check(t, src)

	info := Describe(typearg.From(testsrc.Named(t, pkg, "Box")))
	assert.Equal(t, "Box", info.Name)
	assert.Equal(t, "fixture", info.Package)
	assert.Equal(t, "Class", info.Kind)
	assert.Equal(t, []string{"T"}, info.TypeParams)

	nilInfo := Describe(typearg.From(nil))
	assert.Equal(t, "<nil>", nilInfo.Name)
	assert.Equal(t, "Unknown", nilInfo.Kind)

	basic := Describe(typearg.From(types.Typ[types.String]))
	assert.Equal(t, "string", basic.Name)
	assert.Empty(t, basic.Package)
}

func TestResolve_Related(t *testing.T) {
	pkg := testsrc.Check(t, src)
	sb := testsrc.Named(t, pkg, "StringBox")
	box := testsrc.Named(t, pkg, "Box")

	rep := Resolve(typearg.From(sb), box)
	require.True(t, rep.Related)
	require.Len(t, rep.Bindings, 1)
	assert.Equal(t, Binding{Param: "T", Argument: "string", Resolved: true}, rep.Bindings[0])
	assert.Empty(t, rep.Warnings)
}

func TestResolve_TransitiveInterface(t *testing.T) {
	pkg := testsrc.Check(t, src)
	sb := testsrc.Named(t, pkg, "StringBox")
	elem := testsrc.Named(t, pkg, "Element")

	rep := Resolve(typearg.From(sb), elem)
	require.True(t, rep.Related)
	require.Len(t, rep.Bindings, 1)
	assert.Equal(t, "string", rep.Bindings[0].Argument)
}

func TestResolve_Partial(t *testing.T) {
	pkg := testsrc.Check(t, src)
	open := testsrc.Named(t, pkg, "Open")
	box := testsrc.Named(t, pkg, "Box")

	rep := Resolve(typearg.From(open), box)
	require.True(t, rep.Related)
	require.Len(t, rep.Bindings, 1)
	assert.False(t, rep.Bindings[0].Resolved)
	require.Len(t, rep.Warnings, 1)
	assert.Equal(t, "PARTIAL_RESOLUTION", rep.Warnings[0].Code)
}

func TestResolve_Unrelated(t *testing.T) {
	pkg := testsrc.Check(t, src)
	loose := testsrc.Named(t, pkg, "Loose")
	box := testsrc.Named(t, pkg, "Box")

	rep := Resolve(typearg.From(loose), box)
	assert.False(t, rep.Related)
	assert.Empty(t, rep.Bindings)
	require.Len(t, rep.Warnings, 1)
	assert.Equal(t, "NOT_RELATED", rep.Warnings[0].Code)
}
