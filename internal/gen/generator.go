package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"path/filepath"
	"strings"

	"argbind/internal/casing"
	"argbind/internal/schemafile"
	"argbind/options"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package declared in the schema file.
	PackageName string
	// TypeName overrides the type declared in the schema file.
	TypeName string
	// ModulePath is the import path of the argbind module.
	ModulePath string
	// OutputDir receives an .unformatted.go sidecar when formatting fails.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ModulePath:       "argbind",
		GenerateComments: true,
	}
}

// Generator renders typed options for a resolved schema.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.ModulePath == "" {
		config.ModulePath = DefaultGeneratorConfig().ModulePath
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "greet_options.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate is shorthand for NewGenerator(config).Generate(file, schema).
func Generate(file *schemafile.File, schema options.Schema, config GeneratorConfig) (*GeneratedFile, error) {
	return NewGenerator(config).Generate(file, schema)
}

// Generate renders the typed options for schema. file supplies the package
// and type names unless the config overrides them.
func (g *Generator) Generate(file *schemafile.File, schema options.Schema) (*GeneratedFile, error) {
	if file == nil {
		return nil, errors.New("schema file is nil")
	}

	data, err := g.buildTemplateData(file, schema)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := optionsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) buildTemplateData(file *schemafile.File, schema options.Schema) (*templateData, error) {
	pkg := file.Package
	if g.config.PackageName != "" {
		pkg = g.config.PackageName
	}

	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}

	name := file.Type
	if g.config.TypeName != "" {
		name = g.config.TypeName
	}

	typeName := casing.Pascal(name)
	if !token.IsIdentifier(typeName) || !token.IsExported(typeName) {
		return nil, fmt.Errorf("invalid type name %q", name)
	}

	data := &templateData{
		PackageName:      pkg,
		TypeName:         typeName,
		Filename:         filename(typeName),
		GenerateComments: g.config.GenerateComments,
		Imports:          []string{g.config.ModulePath + "/options"},
	}

	if file.Path != "" {
		data.Source = filepath.Base(file.Path)
	}

	if len(schema) > 0 {
		data.Imports = append(data.Imports, g.config.ModulePath+"/symbol")
	}

	descriptions := make(map[string]string, len(file.Options))
	for _, o := range file.Options {
		descriptions[o.Name] = o.Description
	}

	owners := make(map[string]string, len(schema))

	for _, f := range schema {
		fd, err := buildField(f, descriptions[f.Name])
		if err != nil {
			return nil, err
		}

		if other, ok := owners[fd.Field]; ok {
			return nil, fmt.Errorf("options %q and %q both map to field %s", other, f.Name, fd.Field)
		}

		owners[fd.Field] = f.Name
		data.Fields = append(data.Fields, fd)
	}

	return data, nil
}

func buildField(f options.Field, description string) (fieldData, error) {
	if !f.Type.IsValid() {
		return fieldData{}, &options.SymbolError{Key: f.Name, Type: f.Type}
	}

	field := casing.Pascal(f.Name)
	if !token.IsIdentifier(field) || !token.IsExported(field) {
		return fieldData{}, fmt.Errorf("option %q does not make an exported Go field name", f.Name)
	}

	kind := goKinds[f.Type.Kind()]

	getter := kind.lookup
	if f.Type.Required() {
		getter = kind.get
	}

	return fieldData{
		Key:         f.Name,
		Flag:        options.FlagName(f.Name),
		Field:       field,
		Symbol:      "symbol." + casing.Pascal(f.Type.String()),
		GoType:      kind.goType,
		Required:    f.Type.Required(),
		Getter:      getter,
		Description: cleanDescription(description),
	}, nil
}

// filename turns "GreetCommand" into "greet_command_options.go".
func filename(typeName string) string {
	return strings.ToLower(strings.Join(casing.Words(typeName), "_")) + "_options.go"
}

func cleanDescription(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimRight(s, ".")
}
