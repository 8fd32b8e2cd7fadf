// Package main provides argbind-gen, which turns a schema file into a typed
// options struct.
//
// Usage:
//
//	argbind-gen --schema schema.yaml [--out file.go] [--package name]
//	            [--type Name] [--module path] [--check] [--verbose]
//	argbind-gen --schema schema.hcl --from-struct Name [--pkg dir]
//
// Schema files are YAML or HCL. With --check the schema is only validated.
// Without --out the file is written next to the schema, named after the
// type ("Greet" becomes greet_options.go).
//
// With --from-struct the direction is reversed: the named struct is loaded
// from the package in --pkg (default: the schema's directory) and the
// schema file is written from its fields.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"argbind"
	"argbind/internal/analyze"
	"argbind/internal/diagnostic"
	"argbind/internal/gen"
	"argbind/internal/schemafile"
	"argbind/options"
	"argbind/symbol"
)

var cliSchema = options.Schema{
	{Name: "schema", Type: symbol.RequiredPath},
	{Name: "out", Type: symbol.OptionalPath},
	{Name: "package", Type: symbol.OptionalString},
	{Name: "type", Type: symbol.OptionalString},
	{Name: "module", Type: symbol.OptionalString},
	{Name: "fromStruct", Type: symbol.OptionalString},
	{Name: "pkg", Type: symbol.OptionalPath},
	{Name: "check", Type: symbol.OptionalBoolean},
	{Name: "verbose", Type: symbol.OptionalBoolean},
}

func main() {
	// failures are printed and exit the process from inside argbind
	_ = run(context.Background(), argbind.Config{}, os.Stderr)
}

// run wires the generator into argbind. logOut receives progress logs.
func run(ctx context.Context, config argbind.Config, logOut io.Writer) error {
	c := &command{logOut: logOut}

	return argbind.Run(ctx, cliSchema, argbind.Func(c.generate), config)
}

type command struct {
	logOut io.Writer
}

func (c *command) logger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        c.logOut,
		NoColor:    !isTerminal(c.logOut),
		TimeFormat: time.Kitchen,
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (c *command) generate(_ context.Context, opts options.Values, args ...string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))
	}

	logger := c.logger(opts.Bool("verbose"))

	schemaPath := opts.Path("schema")

	if typeName, ok := opts.LookupString("fromStruct"); ok {
		return c.export(logger, opts, schemaPath, typeName)
	}

	logger.Debug().Str("schema", schemaPath.String()).Msg("loading schema")

	file, err := schemafile.LoadFile(schemaPath.String())
	if err != nil {
		return err
	}

	schema, diags := schemafile.Resolve(file)
	logWarnings(logger, diags)

	if err := diags.Err(); err != nil {
		return fmt.Errorf("invalid schema %s: %w", schemaPath.Base(), err)
	}

	if opts.Bool("check") {
		logger.Info().Int("options", len(schema)).Msg("schema is valid")
		return nil
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.PackageName = opts.String("package")
	cfg.TypeName = opts.String("type")
	cfg.OutputDir = schemaPath.Dir().String()

	if module, ok := opts.LookupString("module"); ok {
		cfg.ModulePath = module
	}

	out, err := gen.NewGenerator(cfg).Generate(file, schema)
	if err != nil {
		return fmt.Errorf("generating %s: %w", schemaPath.Base(), err)
	}

	target := filepath.Join(cfg.OutputDir, out.Filename)
	if p, ok := opts.LookupPath("out"); ok {
		target = p.String()
	}

	if err := gen.WriteFile(out, target); err != nil {
		return err
	}

	logger.Info().Str("file", target).Int("options", len(schema)).Msg("generated")

	return nil
}

// export writes the schema file derived from a Go struct.
func (c *command) export(logger zerolog.Logger, opts options.Values, schemaPath options.Path, typeName string) error {
	dir := schemaPath.Dir()
	if p, ok := opts.LookupPath("pkg"); ok {
		dir = p
	}

	logger.Debug().Str("dir", dir.String()).Str("type", typeName).Msg("loading struct")

	info, err := analyze.NewAnalyzer(dir.String()).LoadStruct(".", typeName)
	if err != nil {
		return err
	}

	file, diags := analyze.ToSchemaFile(info)
	logWarnings(logger, diags)

	if p, ok := opts.LookupString("package"); ok {
		file.Package = p
	}

	if t, ok := opts.LookupString("type"); ok {
		file.Type = t
	}

	file.Path = schemaPath.String()

	schema, resolved := schemafile.Resolve(file)
	if err := resolved.Err(); err != nil {
		return fmt.Errorf("struct %s does not make a valid schema: %w", info.ID, err)
	}

	if opts.Bool("check") {
		logger.Info().Int("options", len(schema)).Msg("struct is a valid schema")
		return nil
	}

	if err := schemafile.WriteFile(schemaPath.String(), file); err != nil {
		return err
	}

	logger.Info().Str("file", schemaPath.String()).Int("options", len(schema)).Msg("wrote schema")

	return nil
}

func logWarnings(logger zerolog.Logger, diags *diagnostic.Diagnostics) {
	for _, w := range diags.Warnings {
		logger.Warn().Str("code", w.Code).Str("option", w.Option).Msg(w.Message)
	}
}
