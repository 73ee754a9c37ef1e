package typearg

import "go/types"

// ResolveTypeArguments determines what types sub binds to target's declared
// type parameters, walking sub's embedding hierarchy until a node whose
// origin is target is found. The result is index-aligned with target's type
// parameter list; positions sub leaves unbound (a generic origin used
// without arguments somewhere along the path) are nil.
//
// An empty result means no generic relationship was found: nil inputs, a
// non-named target, or a target unreachable from sub. That is not an error
// condition.
//
// A type reachable through multiple embedding paths resolves through the
// first path discovered: the superclass slot before the remaining embedded
// types, in declaration order. Conflicting bindings on later paths are not
// detected.
func ResolveTypeArguments(sub, target types.Type) []types.Type {
	args, _ := resolveTypeArguments(sub, target)
	return args
}

// resolveTypeArguments additionally reports whether target was reachable at
// all, distinguishing "related but unparameterized" from "unrelated".
func resolveTypeArguments(sub, target types.Type) ([]types.Type, bool) {
	if sub == nil || target == nil {
		return nil, false
	}
	targetNamed, ok := normalize(target).(*types.Named)
	if !ok {
		return nil, false
	}
	targetOrigin := targetNamed.Origin()

	// Fast path: sub is itself an instantiation of the target.
	if inst, ok := normalize(sub).(*types.Named); ok {
		if inst.TypeArgs().Len() > 0 && inst.Origin().Obj() == targetOrigin.Obj() {
			return typeList(inst.TypeArgs()), true
		}
	}

	w := &walker{
		target:   targetOrigin,
		bindings: make(map[*types.TypeParam]types.Type),
		seen:     make(map[*types.TypeName]bool),
	}
	return w.walk(sub)
}

// walker performs the hierarchy walk, accumulating type parameter bindings
// as instantiated nodes are passed.
type walker struct {
	target   *types.Named
	bindings map[*types.TypeParam]types.Type
	seen     map[*types.TypeName]bool
}

func (w *walker) walk(t types.Type) ([]types.Type, bool) {
	named, ok := normalize(t).(*types.Named)
	if !ok {
		return nil, false
	}
	origin := named.Origin()
	if w.seen[origin.Obj()] {
		// Mutually embedded pointer types form cycles; each origin is
		// visited once.
		return nil, false
	}
	w.seen[origin.Obj()] = true

	w.bind(named)
	if origin.Obj() == w.target.Obj() {
		return w.emit(origin), true
	}

	if sup := namedSuperType(origin); sup != nil {
		if out, ok := w.walk(sup); ok {
			return out, true
		}
	}
	for _, iface := range namedInterfaces(origin) {
		if out, ok := w.walk(iface); ok {
			return out, true
		}
	}
	return nil, false
}

// bind records the bindings an instantiated node supplies for its origin's
// type parameters. Arguments that are themselves type parameters are first
// resolved through the bindings accumulated further down the hierarchy; an
// argument with no accumulated binding stays nil, propagating unbound
// positions upward.
func (w *walker) bind(named *types.Named) {
	args := named.TypeArgs()
	if args.Len() == 0 {
		return
	}
	params := named.Origin().TypeParams()
	for i := 0; i < args.Len() && i < params.Len(); i++ {
		arg := types.Unalias(args.At(i))
		if tp, ok := arg.(*types.TypeParam); ok {
			arg = w.bindings[tp]
		}
		w.bindings[params.At(i)] = arg
	}
}

// emit reads the accumulated binding for each of the target's parameter
// positions. Unbound positions stay nil.
func (w *walker) emit(origin *types.Named) []types.Type {
	params := origin.TypeParams()
	if params.Len() == 0 {
		return nil
	}
	out := make([]types.Type, params.Len())
	for i := range out {
		out[i] = w.bindings[params.At(i)]
	}
	return out
}
