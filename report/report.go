// Package report describes classification and resolution results in a
// serializable form for tooling output.
package report

import (
	"fmt"
	"go/types"

	"github.com/broady/typearg"
)

// TypeInfo identifies a type and its declared parameters.
type TypeInfo struct {
	// Name is the type's declared name, or its full string form for
	// unnamed types.
	Name string `json:"name"`

	// Package is the declaring package path. Empty for builtin and
	// unnamed types.
	Package string `json:"package,omitempty"`

	// Kind is the classification, as reported by typearg.Classify.
	Kind string `json:"kind"`

	// TypeParams are the names of the declared type parameters, in order.
	TypeParams []string `json:"typeParams,omitempty"`
}

// Binding pairs a target type parameter with the argument resolved for it.
type Binding struct {
	// Param is the type parameter name as declared on the target.
	Param string `json:"param"`

	// Argument is the resolved type in Go syntax. Empty when unresolved.
	Argument string `json:"argument,omitempty"`

	// Resolved is false when the subject leaves this position unbound.
	Resolved bool `json:"resolved"`
}

// Warning is a non-fatal observation made while building a report.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// Report captures one resolution of a subject type against a target
// ancestor.
type Report struct {
	Subject  TypeInfo  `json:"subject"`
	Target   TypeInfo  `json:"target"`
	Related  bool      `json:"related"`
	Bindings []Binding `json:"bindings,omitempty"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// AddWarning appends a warning to the report.
func (r *Report) AddWarning(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

// Describe summarizes a wrapped type.
func Describe(ref *typearg.Ref) TypeInfo {
	info := TypeInfo{Kind: ref.Kind().String()}

	t := ref.GoType()
	if t == nil {
		info.Name = "<nil>"
		return info
	}

	raw := ref.RawType()
	if named, ok := raw.(*types.Named); ok {
		obj := named.Obj()
		info.Name = obj.Name()
		if obj.Pkg() != nil {
			info.Package = obj.Pkg().Path()
		}
		params := named.TypeParams()
		for i := 0; i < params.Len(); i++ {
			info.TypeParams = append(info.TypeParams, params.At(i).Obj().Name())
		}
		return info
	}

	info.Name = types.TypeString(t, nil)
	return info
}

// Resolve builds a report for subject reinterpreted as target.
func Resolve(subject *typearg.Ref, target *types.Named) *Report {
	rep := &Report{
		Subject: Describe(subject),
		Target:  Describe(typearg.From(target)),
	}

	as := subject.As(target)
	if as == nil {
		rep.AddWarning(Warning{
			Code:    "NOT_RELATED",
			Message: fmt.Sprintf("%s does not reach %s through its embedding hierarchy", rep.Subject.Name, rep.Target.Name),
		})
		return rep
	}
	rep.Related = true

	args := typearg.ResolveTypeArguments(subject.GoType(), target)
	params := target.Origin().TypeParams()
	unresolved := 0
	for i := 0; i < params.Len(); i++ {
		b := Binding{Param: params.At(i).Obj().Name()}
		if i < len(args) && args[i] != nil {
			b.Argument = types.TypeString(args[i], nil)
			b.Resolved = true
		} else {
			unresolved++
		}
		rep.Bindings = append(rep.Bindings, b)
	}

	if unresolved > 0 {
		rep.AddWarning(Warning{
			Code:    "PARTIAL_RESOLUTION",
			Message: fmt.Sprintf("%d of %d type parameter(s) left unbound", unresolved, params.Len()),
		})
	}
	return rep
}
