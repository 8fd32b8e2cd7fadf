package schemafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// File is a schema file as written, before validation.
type File struct {
	// Path is where the file was loaded from.
	Path string `yaml:"-"`
	// Package is the Go package generated code belongs to.
	Package string `yaml:"package"`
	// Type is the base name of the generated identifiers.
	Type string `yaml:"type"`
	// Options in definition order.
	Options []Option `yaml:"options"`
}

// Option is one schema entry. Type holds a TypeSymbol display name such as
// "optionalPath".
type Option struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
}

type hclFile struct {
	Package string      `hcl:"package,optional"`
	Type    string      `hcl:"type,optional"`
	Options []hclOption `hcl:"option,block"`
}

type hclOption struct {
	Name        string `hcl:"name,label"`
	Type        string `hcl:"type"`
	Description string `hcl:"description,optional"`
}

// LoadFile reads and parses the schema file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	f, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	f.Path = path

	return f, nil
}

// Parse decodes data, choosing the syntax from the extension of name.
func Parse(name string, data []byte) (*File, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".hcl":
		return ParseHCL(name, data)
	default:
		return nil, fmt.Errorf("unsupported schema file extension %q (want .yaml, .yml or .hcl)", filepath.Ext(name))
	}
}

// ParseYAML decodes a YAML schema.
func ParseYAML(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	return &f, nil
}

// ParseHCL decodes an HCL schema. name is used in error positions and must
// end in ".hcl".
func ParseHCL(name string, data []byte) (*File, error) {
	var raw hclFile

	if err := hclsimple.Decode(filepath.Base(name), data, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schema HCL: %w", err)
	}

	f := &File{
		Package: raw.Package,
		Type:    raw.Type,
		Options: make([]Option, len(raw.Options)),
	}

	for i, o := range raw.Options {
		f.Options[i] = Option(o)
	}

	return f, nil
}

// Marshal encodes f, choosing the syntax from the extension of name.
func Marshal(name string, f *File) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return MarshalYAML(f)
	case ".hcl":
		return MarshalHCL(f), nil
	default:
		return nil, fmt.Errorf("unsupported schema file extension %q (want .yaml, .yml or .hcl)", filepath.Ext(name))
	}
}

// WriteFile encodes f and writes it to path.
func WriteFile(path string, f *File) error {
	data, err := Marshal(path, f)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}

// MarshalYAML renders f back to YAML.
func MarshalYAML(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// MarshalHCL renders f as HCL, one option block per option.
func MarshalHCL(f *File) []byte {
	out := hclwrite.NewEmptyFile()
	body := out.Body()

	body.SetAttributeValue("package", cty.StringVal(f.Package))
	body.SetAttributeValue("type", cty.StringVal(f.Type))

	for _, o := range f.Options {
		body.AppendNewline()

		block := body.AppendNewBlock("option", []string{o.Name}).Body()
		block.SetAttributeValue("type", cty.StringVal(o.Type))

		if o.Description != "" {
			block.SetAttributeValue("description", cty.StringVal(o.Description))
		}
	}

	return hclwrite.Format(out.Bytes())
}
