package typearg

import (
	"fmt"
	"go/types"
	"strings"
)

// Ref is an immutable wrapper pairing a reflective type value with its Kind
// and the Ref it was discovered from. Derivations (SuperType, Interfaces,
// Generics, As) are pure: each call computes a fresh Ref whose source points
// back at the receiver, forming a parent chain up to a root.
//
// A Ref with a nil underlying type always has KindUnknown.
type Ref struct {
	typ    types.Type
	kind   Kind
	source *Ref
}

// None is the sentinel returned by factory lookups that miss: nil type,
// KindUnknown, no source. Callers can keep chaining off it; every
// derivation stays Unknown.
var None = &Ref{kind: KindUnknown}

// From wraps t, classifying it.
func From(t types.Type) *Ref {
	return FromSource(t, Classify(t), nil)
}

// FromKind wraps t with an explicit kind.
func FromKind(t types.Type, kind Kind) *Ref {
	return FromSource(t, kind, nil)
}

// FromSource wraps t with an explicit kind and discovery source. A nil type
// is always KindUnknown regardless of the kind argument.
func FromSource(t types.Type, kind Kind, source *Ref) *Ref {
	if t == nil {
		kind = KindUnknown
	}
	return &Ref{typ: t, kind: kind, source: source}
}

// FromField wraps the type of the named field on t's underlying struct.
// Missing fields and non-struct types yield None rather than an error so
// call sites can chain without checking first.
func FromField(t types.Type, name string) *Ref {
	if t == nil {
		return None
	}
	st, ok := normalize(t).Underlying().(*types.Struct)
	if !ok {
		return None
	}
	for i := 0; i < st.NumFields(); i++ {
		if f := st.Field(i); f.Name() == name {
			return From(f.Type())
		}
	}
	return None
}

// FromResult wraps fn's i-th result type. Out-of-range indexes and
// non-function objects yield None.
func FromResult(fn *types.Func, i int) *Ref {
	sig := signatureOf(fn)
	if sig == nil || i < 0 || i >= sig.Results().Len() {
		return None
	}
	return From(sig.Results().At(i).Type())
}

// FromParam wraps fn's i-th parameter type. Out-of-range indexes and
// non-function objects yield None.
func FromParam(fn *types.Func, i int) *Ref {
	sig := signatureOf(fn)
	if sig == nil || i < 0 || i >= sig.Params().Len() {
		return None
	}
	return From(sig.Params().At(i).Type())
}

func signatureOf(fn *types.Func) *types.Signature {
	if fn == nil {
		return nil
	}
	sig, _ := fn.Type().(*types.Signature)
	return sig
}

// GoType returns the wrapped type. It is nil only when Kind is KindUnknown.
func (r *Ref) GoType() types.Type { return r.typ }

// Kind returns the classification fixed at construction.
func (r *Ref) Kind() Kind { return r.kind }

// Source returns the Ref this one was discovered from, or nil for a root.
func (r *Ref) Source() *Ref { return r.source }

// RootSource walks the source chain to the outermost Ref.
func (r *Ref) RootSource() *Ref {
	root := r
	for root.source != nil {
		root = root.source
	}
	return root
}

// IsRootSource reports whether r has no discovery source.
func (r *Ref) IsRootSource() bool { return r.source == nil }

// Class returns the wrapped type when it is a fully resolved type, else nil.
// Exactly one of Class, Instance, TypeParam, Union, and GenericArray is
// non-nil for any Ref that is not KindUnknown.
func (r *Ref) Class() types.Type {
	if r.kind != KindClass {
		return nil
	}
	return r.typ
}

// Instance returns the wrapped generic instantiation, else nil.
func (r *Ref) Instance() *types.Named {
	if r.kind != KindInstance {
		return nil
	}
	return normalize(r.typ).(*types.Named)
}

// TypeParam returns the wrapped type parameter, else nil.
func (r *Ref) TypeParam() *types.TypeParam {
	if r.kind != KindTypeParam {
		return nil
	}
	return normalize(r.typ).(*types.TypeParam)
}

// Union returns the wrapped union constraint term, else nil.
func (r *Ref) Union() *types.Union {
	if r.kind != KindUnion {
		return nil
	}
	return normalize(r.typ).(*types.Union)
}

// GenericArray returns the wrapped slice or array type whose element
// involves a type parameter, else nil.
func (r *Ref) GenericArray() types.Type {
	if r.kind != KindGenericArray {
		return nil
	}
	return r.typ
}

// RawType returns the origin named type, basic type, or concrete array
// behind r, per r's kind. Nil for kinds without a raw type.
func (r *Ref) RawType() types.Type {
	if r.typ == nil {
		return nil
	}
	return r.kind.ops().rawType(r.typ)
}

// SuperType wraps the type in r's superclass slot, sourced from r. When r
// has no supertype the result is a KindUnknown Ref, still sourced from r.
func (r *Ref) SuperType() *Ref {
	var sup types.Type
	if r.typ != nil {
		sup = r.kind.ops().superType(r.typ)
	}
	return FromSource(sup, Classify(sup), r)
}

// Interfaces wraps r's interface list, each entry sourced from r.
func (r *Ref) Interfaces() []*Ref {
	var ts []types.Type
	if r.typ != nil {
		ts = r.kind.ops().interfaces(r.typ)
	}
	out := make([]*Ref, len(ts))
	for i, t := range ts {
		out[i] = FromSource(t, Classify(t), r)
	}
	return out
}

// Interface returns the i-th entry of Interfaces, or None when out of range.
func (r *Ref) Interface(i int) *Ref {
	ifaces := r.Interfaces()
	if i < 0 || i >= len(ifaces) {
		return None
	}
	return ifaces[i]
}

// Generics wraps the current bindings of r's declared type parameters, each
// sourced from r. An instantiation yields its type arguments; a generic
// origin used without arguments yields one KindUnknown entry per declared
// parameter.
func (r *Ref) Generics() []*Ref {
	var ts []types.Type
	if r.typ != nil {
		ts = r.kind.ops().genericTypes(r.typ)
	}
	out := make([]*Ref, len(ts))
	for i, t := range ts {
		out[i] = FromSource(t, Classify(t), r)
	}
	return out
}

// Generic returns the i-th entry of Generics, or None when out of range.
func (r *Ref) Generic(i int) *Ref {
	gens := r.Generics()
	if i < 0 || i >= len(gens) {
		return None
	}
	return gens[i]
}

// As reinterprets r as its ancestor target, resolving the type arguments r
// binds for it. The result is sourced from r and is KindInstance when every
// argument resolved, otherwise the raw origin as KindClass.
//
// As returns nil when target is not an ancestor (or self) of r, and for
// kinds with no ancestry to navigate (type parameters, unions, generic
// arrays, unknown).
//
// Partially resolved targets come back as the raw origin: go/types cannot
// represent a named type instantiated with missing arguments. Use
// ResolveTypeArguments for positional partial results.
func (r *Ref) As(target *types.Named) *Ref {
	if target == nil || (r.kind != KindClass && r.kind != KindInstance) {
		return nil
	}
	args, found := resolveTypeArguments(r.typ, target)
	if !found {
		return nil
	}
	origin := target.Origin()
	if len(args) > 0 && complete(args) {
		if inst, err := types.Instantiate(nil, origin, args, false); err == nil {
			return FromSource(inst, KindInstance, r)
		}
	}
	return FromSource(origin, KindClass, r)
}

func complete(args []types.Type) bool {
	for _, a := range args {
		if a == nil {
			return false
		}
	}
	return true
}

// Equal reports structural equality over (type, kind, source chain). Two
// equal Refs are interchangeable, supporting caller-side deduplication.
func (r *Ref) Equal(other *Ref) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.kind != other.kind {
		return false
	}
	if (r.typ == nil) != (other.typ == nil) {
		return false
	}
	if r.typ != nil && !types.Identical(r.typ, other.typ) {
		return false
	}
	if r.source == nil || other.source == nil {
		return r.source == other.source
	}
	return r.source.Equal(other.source)
}

// CacheKey returns a stable content key over the (type, kind, source)
// tuple, suitable for memoizing derivations in a lookup.Cache. Equal Refs
// produce equal keys.
func (r *Ref) CacheKey() string {
	var b strings.Builder
	for cur := r; cur != nil; cur = cur.source {
		if cur != r {
			b.WriteString(" <- ")
		}
		b.WriteString(cur.kind.String())
		b.WriteByte(':')
		if cur.typ != nil {
			b.WriteString(types.TypeString(cur.typ, nil))
		} else {
			b.WriteString("<nil>")
		}
	}
	return b.String()
}

func (r *Ref) String() string {
	if r.typ == nil {
		return fmt.Sprintf("%s(<nil>)", r.kind)
	}
	return fmt.Sprintf("%s(%s)", r.kind, types.TypeString(r.typ, nil))
}
