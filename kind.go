// Package typearg resolves generic type arguments across Go's embedding
// hierarchy.
//
// Struct embedding is treated as Go's inheritance analog: the first embedded
// field of a named struct plays the superclass role, the remaining embedded
// fields (and, for interface types, the embedded interfaces) play the
// interface list. Given a type several levels down such a hierarchy, the
// package answers what concrete types it binds to an ancestor's declared
// type parameters.
package typearg

import "go/types"

// Kind classifies the shape of a reflective type value.
type Kind int

const (
	// KindUnknown is the absorbing classification for nil and any shape the
	// classifier does not recognize. All capability operations on it yield
	// empty results.
	KindUnknown Kind = iota

	// KindClass is a fully resolved type: a named type without type
	// arguments, a basic type, or a slice/array of concrete element type.
	KindClass

	// KindInstance is an instantiation of a generic named type, such as
	// Box[string].
	KindInstance

	// KindTypeParam is a declared type parameter, such as T in Box[T].
	KindTypeParam

	// KindUnion is a union constraint term, such as ~int | string.
	KindUnion

	// KindGenericArray is a slice or array whose element type involves a
	// type parameter, such as []T.
	KindGenericArray
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "Class"
	case KindInstance:
		return "Instance"
	case KindTypeParam:
		return "TypeParam"
	case KindUnion:
		return "Union"
	case KindGenericArray:
		return "GenericArray"
	default:
		return "Unknown"
	}
}

// kindOps is the capability set each kind implements: raw type extraction,
// supertype extraction, interface extraction, and generic parameter
// bindings. Implementations assert the shape their kind promises; invoking
// an operation on a value of the wrong kind fails with a type assertion
// panic, signaling that the caller bypassed classification.
type kindOps interface {
	rawType(t types.Type) types.Type
	superType(t types.Type) types.Type
	interfaces(t types.Type) []types.Type
	genericTypes(t types.Type) []types.Type
}

var kindTable = [...]kindOps{
	KindUnknown:      unknownOps{},
	KindClass:        classOps{},
	KindInstance:     instanceOps{},
	KindTypeParam:    typeParamOps{},
	KindUnion:        unionOps{},
	KindGenericArray: genericArrayOps{},
}

func (k Kind) ops() kindOps { return kindTable[k] }

// unknownOps yields empty results for every operation.
type unknownOps struct{}

func (unknownOps) rawType(types.Type) types.Type        { return nil }
func (unknownOps) superType(types.Type) types.Type      { return nil }
func (unknownOps) interfaces(types.Type) []types.Type   { return nil }
func (unknownOps) genericTypes(types.Type) []types.Type { return nil }

// classOps covers fully resolved types: named types without arguments,
// basics, and concrete slices/arrays.
type classOps struct{}

func (classOps) rawType(t types.Type) types.Type {
	if named, ok := normalize(t).(*types.Named); ok {
		return named.Origin()
	}
	return normalize(t)
}

func (classOps) superType(t types.Type) types.Type {
	named, ok := normalize(t).(*types.Named)
	if !ok {
		return nil
	}
	return namedSuperType(named)
}

func (classOps) interfaces(t types.Type) []types.Type {
	named, ok := normalize(t).(*types.Named)
	if !ok {
		return nil
	}
	return namedInterfaces(named)
}

func (classOps) genericTypes(t types.Type) []types.Type {
	named, ok := normalize(t).(*types.Named)
	if !ok {
		return nil
	}
	// A generic origin used without arguments binds nothing: one nil entry
	// per declared parameter.
	n := named.TypeParams().Len()
	if n == 0 {
		return nil
	}
	return make([]types.Type, n)
}

// instanceOps covers instantiations of generic named types. Every operation
// asserts the instantiated shape.
type instanceOps struct{}

func (instanceOps) rawType(t types.Type) types.Type {
	return normalize(t).(*types.Named).Origin()
}

func (instanceOps) superType(t types.Type) types.Type {
	inst := normalize(t).(*types.Named)
	return namedSuperType(inst.Origin())
}

func (instanceOps) interfaces(t types.Type) []types.Type {
	inst := normalize(t).(*types.Named)
	return namedInterfaces(inst.Origin())
}

func (instanceOps) genericTypes(t types.Type) []types.Type {
	inst := normalize(t).(*types.Named)
	return typeList(inst.TypeArgs())
}

type typeParamOps struct{ unknownOps }

type unionOps struct{ unknownOps }

type genericArrayOps struct{ unknownOps }

// namedSuperType returns the type occupying named's superclass slot: the
// first embedded field of a struct type. Interface and non-struct types
// have no supertype.
func namedSuperType(named *types.Named) types.Type {
	if _, ok := named.Underlying().(*types.Interface); ok {
		return nil
	}
	emb := embeddedTypes(named)
	if len(emb) == 0 {
		return nil
	}
	return emb[0]
}

// namedInterfaces returns named's interface list: all embedded interfaces
// for an interface type, and every embedded field past the superclass slot
// for a struct type.
func namedInterfaces(named *types.Named) []types.Type {
	emb := embeddedTypes(named)
	if _, ok := named.Underlying().(*types.Interface); ok {
		return emb
	}
	if len(emb) <= 1 {
		return nil
	}
	return emb[1:]
}

// embeddedTypes returns the types embedded by a named struct or interface in
// declaration order, with pointer indirection stripped.
func embeddedTypes(named *types.Named) []types.Type {
	switch u := named.Underlying().(type) {
	case *types.Struct:
		var out []types.Type
		for i := 0; i < u.NumFields(); i++ {
			f := u.Field(i)
			if !f.Embedded() {
				continue
			}
			ft := f.Type()
			if ptr, ok := types.Unalias(ft).(*types.Pointer); ok {
				ft = ptr.Elem()
			}
			out = append(out, ft)
		}
		return out

	case *types.Interface:
		var out []types.Type
		for i := 0; i < u.NumEmbeddeds(); i++ {
			out = append(out, u.EmbeddedType(i))
		}
		return out
	}
	return nil
}

// typeList copies a go/types TypeList into a plain slice.
func typeList(l *types.TypeList) []types.Type {
	if l.Len() == 0 {
		return nil
	}
	out := make([]types.Type, l.Len())
	for i := range out {
		out[i] = l.At(i)
	}
	return out
}
