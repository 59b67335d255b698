// Command swaggen generates Swagger 2.0 documents from a compiled IR
// file and a generation target.
//
// Generate a single merged document:
//
//	swaggen gen api.ir.json target.yaml
//
// Generate one self-contained document per namespace:
//
//	swaggen gen api.ir.json target.yaml --out docs/
//
// with split: true set in the target.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/idlkit/swaggen"
)

var version = "dev"

type CLI struct {
	Gen     GenCmd     `cmd:"" help:"Generate Swagger documents from a compiled IR file."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(version)
	return nil
}

type GenCmd struct {
	IR      string `arg:"" help:"Path to the compiled IR JSON file."`
	Target  string `arg:"" help:"Path to the generation target YAML file."`
	Out     string `help:"Output directory." short:"o" default:"."`
	Verbose bool   `help:"Enable debug logging." short:"v"`
}

func (c *GenCmd) Run() error {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	api, err := swaggen.LoadAPI(c.IR)
	if err != nil {
		return err
	}
	target, err := swaggen.LoadTarget(c.Target)
	if err != nil {
		return err
	}
	opts, err := target.Options()
	if err != nil {
		return err
	}
	opts = append(opts, swaggen.WithLogger(logger))
	gen := swaggen.New(opts...)

	if target.Split {
		return c.generateSplit(gen, api, target, logger)
	}
	return c.generateMerged(gen, api, target, logger)
}

// generateMerged emits one document covering the target's namespaces
// (or the whole Api when none are listed).
func (c *GenCmd) generateMerged(gen *swaggen.Generator, api *swaggen.Api, target *swaggen.Target, logger *slog.Logger) error {
	var doc *swaggen.Document
	var err error
	switch len(target.Namespaces) {
	case 0:
		doc, err = gen.Generate(api)
	case 1:
		doc, err = gen.GenerateNamespace(api, target.Namespaces[0])
	default:
		doc, err = gen.GenerateNamespaces(api, target.Namespaces)
	}
	if err != nil {
		return err
	}

	out := filepath.Join(c.Out, target.Output)
	if err := swaggen.WriteFile(out, doc); err != nil {
		return err
	}
	logger.Debug("wrote document", "path", out)
	return nil
}

// generateSplit emits one document per listed namespace, each covering
// that namespace's import closure. Each pass owns its own registry, so
// failures in one namespace leave the others' outputs untouched.
func (c *GenCmd) generateSplit(gen *swaggen.Generator, api *swaggen.Api, target *swaggen.Target, logger *slog.Logger) error {
	names := target.Namespaces
	if len(names) == 0 {
		for _, ns := range api.Namespaces() {
			names = append(names, ns.Name)
		}
	}
	for _, name := range names {
		doc, err := gen.GenerateNamespace(api, name)
		if err != nil {
			return err
		}
		out := filepath.Join(c.Out, name+".json")
		if err := swaggen.WriteFile(out, doc); err != nil {
			return err
		}
		logger.Debug("wrote document", "namespace", name, "path", out)
	}
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("swaggen"),
		kong.Description("Swagger 2.0 backend for compiled IDL APIs."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
