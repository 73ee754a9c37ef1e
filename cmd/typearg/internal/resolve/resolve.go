// Package resolve implements the "typearg resolve" subcommand.
package resolve

import (
	"encoding/json"
	"fmt"
	"go/types"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/broady/typearg"
	"github.com/broady/typearg/internal/discover"
	"github.com/broady/typearg/report"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Cmd struct {
	Type     string `arg:"" help:"Subject type (optionally package-qualified)." validate:"required"`
	Ancestor string `arg:"" help:"Target ancestor whose type parameters to resolve." validate:"required"`
	Package  string `help:"Package pattern to load (go command semantics)." short:"p" default:"." validate:"required"`
	Format   string `help:"Output format." short:"f" default:"text" enum:"text,json" validate:"oneof=text json"`
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

	subject, err := result.LookupType(c.Type)
	if err != nil {
		return err
	}
	ancestor, err := result.LookupType(c.Ancestor)
	if err != nil {
		return err
	}
	target, ok := ancestor.Type().(*types.Named)
	if !ok {
		return fmt.Errorf("ancestor %s is not a named type", c.Ancestor)
	}

	rep := report.Resolve(typearg.From(subject.Type()), target)
	if c.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return printText(rep)
}

func printText(rep *report.Report) error {
	if !rep.Related {
		fmt.Printf("%s is not related to %s\n", rep.Subject.Name, rep.Target.Name)
	} else if len(rep.Bindings) == 0 {
		fmt.Printf("%s reaches %s (no type parameters)\n", rep.Subject.Name, rep.Target.Name)
	} else {
		fmt.Printf("%s as %s:\n", rep.Subject.Name, rep.Target.Name)
		for _, b := range rep.Bindings {
			arg := b.Argument
			if !b.Resolved {
				arg = "<unbound>"
			}
			fmt.Printf("  %s = %s\n", b.Param, arg)
		}
	}
	for _, w := range rep.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.Code, w.Message)
	}
	return nil
}
