package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/broady/typearg/cmd/typearg/internal/inspect"
	"github.com/broady/typearg/cmd/typearg/internal/resolve"
)

type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Inspect inspect.Cmd `cmd:"" help:"Classify a named type and print its hierarchy."`
	Resolve resolve.Cmd `cmd:"" help:"Resolve the type arguments a type binds for an ancestor."`
	Version VersionCmd  `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	_, err := os.Stdout.WriteString(Version() + "\n")
	return err
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("typearg"),
		kong.Description("Generic type argument resolution over Go's embedding hierarchy."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
