// Package inspect implements the "typearg inspect" subcommand.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/broady/typearg"
	"github.com/broady/typearg/internal/discover"
	"github.com/broady/typearg/report"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Cmd struct {
	Type    string `arg:"" help:"Named type to inspect (optionally package-qualified, e.g. api.User)." validate:"required"`
	Package string `help:"Package pattern to load (go command semantics)." short:"p" default:"." validate:"required"`
	Format  string `help:"Output format." short:"f" default:"text" enum:"text,json" validate:"oneof=text json"`
}

func (c *Cmd) Run() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	loader := discover.NewLoader("")
	result, err := loader.Load(c.Package)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	tn, err := result.LookupType(c.Type)
	if err != nil {
		return err
	}

	ref := typearg.From(tn.Type())
	if c.Format == "json" {
		return printJSON(ref)
	}
	return printText(ref)
}

type inspection struct {
	Type       report.TypeInfo   `json:"type"`
	Super      *report.TypeInfo  `json:"super,omitempty"`
	Interfaces []report.TypeInfo `json:"interfaces,omitempty"`
	Generics   []report.TypeInfo `json:"generics,omitempty"`
}

func describe(ref *typearg.Ref) inspection {
	out := inspection{Type: report.Describe(ref)}
	if sup := ref.SuperType(); sup.Kind() != typearg.KindUnknown {
		info := report.Describe(sup)
		out.Super = &info
	}
	for _, iface := range ref.Interfaces() {
		out.Interfaces = append(out.Interfaces, report.Describe(iface))
	}
	for _, gen := range ref.Generics() {
		out.Generics = append(out.Generics, report.Describe(gen))
	}
	return out
}

func printJSON(ref *typearg.Ref) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(describe(ref))
}

func printText(ref *typearg.Ref) error {
	ins := describe(ref)
	fmt.Printf("Type: %s (%s)\n", qualified(ins.Type), ins.Type.Kind)
	if len(ins.Type.TypeParams) > 0 {
		fmt.Printf("Type parameters: %v\n", ins.Type.TypeParams)
	}
	if ins.Super != nil {
		fmt.Printf("Super: %s (%s)\n", qualified(*ins.Super), ins.Super.Kind)
	}
	for _, iface := range ins.Interfaces {
		fmt.Printf("Interface: %s (%s)\n", qualified(iface), iface.Kind)
	}
	for i, gen := range ins.Generics {
		fmt.Printf("Generic[%d]: %s (%s)\n", i, qualified(gen), gen.Kind)
	}
	return nil
}

func qualified(info report.TypeInfo) string {
	if info.Package == "" {
		return info.Name
	}
	return info.Package + "." + info.Name
}
