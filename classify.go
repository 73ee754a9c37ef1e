package typearg

import "go/types"

// Classify reports the Kind of t.
//
// Classification is total and pure: nil and unrecognized shapes (bare
// interfaces, anonymous structs, maps, channels, functions) classify as
// KindUnknown rather than failing. Aliases and pointer indirection are
// stripped first, so *Box[string] classifies the same as Box[string].
func Classify(t types.Type) Kind {
	if t == nil {
		return KindUnknown
	}
	switch typ := normalize(t).(type) {
	case *types.Named:
		if typ.TypeArgs().Len() > 0 {
			return KindInstance
		}
		return KindClass

	case *types.Basic:
		return KindClass

	case *types.TypeParam:
		return KindTypeParam

	case *types.Union:
		return KindUnion

	case *types.Slice:
		if involvesTypeParam(typ.Elem()) {
			return KindGenericArray
		}
		return KindClass

	case *types.Array:
		if involvesTypeParam(typ.Elem()) {
			return KindGenericArray
		}
		return KindClass
	}
	return KindUnknown
}

// normalize strips aliases and pointer indirection. Embedding *Base and Base
// produce the same hierarchy, so the classifier and the resolver treat them
// identically.
func normalize(t types.Type) types.Type {
	t = types.Unalias(t)
	for {
		ptr, ok := t.(*types.Pointer)
		if !ok {
			return t
		}
		t = types.Unalias(ptr.Elem())
	}
}

// involvesTypeParam reports whether t mentions a type parameter anywhere in
// its structure.
func involvesTypeParam(t types.Type) bool {
	switch typ := types.Unalias(t).(type) {
	case *types.TypeParam:
		return true
	case *types.Pointer:
		return involvesTypeParam(typ.Elem())
	case *types.Slice:
		return involvesTypeParam(typ.Elem())
	case *types.Array:
		return involvesTypeParam(typ.Elem())
	case *types.Map:
		return involvesTypeParam(typ.Key()) || involvesTypeParam(typ.Elem())
	case *types.Chan:
		return involvesTypeParam(typ.Elem())
	case *types.Named:
		for i := 0; i < typ.TypeArgs().Len(); i++ {
			if involvesTypeParam(typ.TypeArgs().At(i)) {
				return true
			}
		}
	}
	return false
}
