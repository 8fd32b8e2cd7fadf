package schemafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argbind/options"
	"argbind/symbol"
)

var greetSchema = options.Schema{
	{Name: "name", Type: symbol.RequiredString},
	{Name: "times", Type: symbol.OptionalNumber},
	{Name: "loud", Type: symbol.OptionalBoolean},
	{Name: "outputPath", Type: symbol.OptionalPath},
}

func TestLoadFile(t *testing.T) {
	for _, name := range []string{"greet.yaml", "greet.hcl"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join("testdata", name)

			f, err := LoadFile(path)
			require.NoError(t, err)

			assert.Equal(t, path, f.Path)
			assert.Equal(t, "greet", f.Package)
			assert.Equal(t, "Greet", f.Type)
			require.Len(t, f.Options, 4)
			assert.Equal(t, "who to greet", f.Options[0].Description)

			schema, diags := Resolve(f)
			require.True(t, diags.IsValid(), "unexpected errors: %v", diags.Errors)
			assert.Empty(t, diags.Warnings)
			assert.Equal(t, greetSchema, schema)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read schema file")
}

func TestParse_UnsupportedExtension(t *testing.T) {
	_, err := Parse("schema.toml", nil)
	assert.ErrorContains(t, err, `unsupported schema file extension ".toml"`)
}

func TestParse_BadSyntax(t *testing.T) {
	_, err := Parse("s.yaml", []byte("options: [\n"))
	assert.ErrorContains(t, err, "failed to parse schema YAML")

	_, err = Parse("s.hcl", []byte(`option "x" {`))
	assert.ErrorContains(t, err, "failed to parse schema HCL")
}

func TestResolve_Diagnostics(t *testing.T) {
	src := `
package: my-pkg
type: ""
options:
  - name: SOME_THING
    type: optionalNumber
    description: shouty
  - name: count
    type: requiredInt
    description: not a real type
  - name: count
    type: requiredNumber
  - name: ""
    type: requiredString
  - name: inputPath
    type: requiredPath
`
	f, err := ParseYAML([]byte(src))
	require.NoError(t, err)

	schema, diags := Resolve(f)
	require.False(t, diags.IsValid())

	codes := map[string]string{}
	for _, d := range diags.Errors {
		codes[d.Code] = d.Option
	}

	assert.Equal(t, map[string]string{
		"invalid_package":       "",
		"missing_type":          "",
		"option_not_camel_case": "SOME_THING",
		"unknown_type":          "count",
		"duplicate_option":      "count",
		"empty_option_name":     "",
	}, codes)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "missing_description", diags.Warnings[0].Code)
	assert.Equal(t, "inputPath", diags.Warnings[0].Option)

	// the schema keeps what could be resolved, in order
	assert.Equal(t, []string{"SOME_THING", "inputPath"}, schema.Names())
	assert.ErrorContains(t, diags.Err(), `did you mean "someThing"?`)
	assert.ErrorContains(t, diags.Err(), `unknown type "requiredInt"`)

	_, diags = Resolve(&File{Package: "p", Type: "T", Options: []Option{
		{Name: "x", Type: "optionalBool", Description: "x"},
	}})
	assert.ErrorContains(t, diags.Err(), `unknown type "optionalBool", did you mean "optionalBoolean"?`)
}

func TestResolve_AmbiguousFlags(t *testing.T) {
	f := &File{
		Package: "p",
		Type:    "T",
		Options: []Option{
			{Name: "ab", Type: "optionalString", Description: "x"},
			{Name: "aB", Type: "optionalString", Description: "y"},
		},
	}

	_, diags := Resolve(f)
	require.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "ambiguous_flag", diags.Warnings[0].Code)
}

func TestResolve_Nil(t *testing.T) {
	_, diags := Resolve(nil)
	assert.False(t, diags.IsValid())
}

func TestMarshalYAML_RoundTrip(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "greet.hcl"))
	require.NoError(t, err)

	data, err := MarshalYAML(f)
	require.NoError(t, err)

	back, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, f.Options, back.Options)
}

func TestMarshalHCL_RoundTrip(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "greet.yaml"))
	require.NoError(t, err)

	data := MarshalHCL(f)
	assert.Contains(t, string(data), `option "outputPath" {`)

	back, err := ParseHCL("greet.hcl", data)
	require.NoError(t, err)

	assert.Equal(t, f.Package, back.Package)
	assert.Equal(t, f.Type, back.Type)
	assert.Equal(t, f.Options, back.Options)
}

func TestWriteFile(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "greet.yaml"))
	require.NoError(t, err)

	dir := t.TempDir()

	for _, name := range []string{"out.yaml", "out.hcl"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteFile(path, f))

			back, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, f.Options, back.Options)
		})
	}

	err = WriteFile(filepath.Join(dir, "out.json"), f)
	assert.ErrorContains(t, err, "unsupported schema file extension")

	_, err = os.Stat(filepath.Join(dir, "out.json"))
	assert.True(t, os.IsNotExist(err))
}
