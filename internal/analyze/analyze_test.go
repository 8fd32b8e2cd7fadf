package analyze

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argbind/internal/schemafile"
	"argbind/symbol"
)

func loadDeploy(t *testing.T) *StructInfo {
	t.Helper()

	info, err := NewAnalyzer("").LoadStruct("./testdata/cli", "Deploy")
	require.NoError(t, err)

	return info
}

func TestAnalyzer_LoadStruct(t *testing.T) {
	info := loadDeploy(t)

	assert.Equal(t, "cli", info.PkgName)
	assert.Equal(t, "argbind/internal/analyze/testdata/cli.Deploy", info.ID.String())

	var names []string
	for _, f := range info.Fields {
		names = append(names, f.Name)
	}

	// secret is unexported
	assert.Equal(t, []string{"Target", "Replicas", "DryRun", "Manifest", "Timeout", "Labels", "Internal"}, names)

	assert.Equal(t, "Target environment.", info.Fields[0].Doc)
	assert.Equal(t, "how long to wait", info.Fields[4].Doc)
	assert.Equal(t, 4, info.Fields[4].Index)
}

func TestAnalyzer_LoadStruct_Errors(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		typeName string
		wantErr  string
	}{
		{name: "missing type", pattern: "./testdata/cli", typeName: "Nope", wantErr: "type argbind/internal/analyze/testdata/cli.Nope not found"},
		{name: "not a struct", pattern: "./testdata/cli", typeName: "NotAStruct", wantErr: "is not a struct"},
		{name: "unexported", pattern: "./testdata/cli", typeName: "secret", wantErr: "not found"},
		{name: "bad package", pattern: "./testdata/missing", typeName: "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnalyzer("").LoadStruct(tt.pattern, tt.typeName)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestToSchemaFile(t *testing.T) {
	f, diags := ToSchemaFile(loadDeploy(t))

	assert.Equal(t, "cli", f.Package)
	assert.Equal(t, "Deploy", f.Type)
	assert.Equal(t, []schemafile.Option{
		{Name: "target", Type: "requiredString", Description: "Target environment."},
		{Name: "replicas", Type: "optionalNumber"},
		{Name: "plan", Type: "optionalBoolean", Description: "print the plan only"},
		{Name: "manifest", Type: "requiredPath"},
		{Name: "timeout", Type: "optionalNumber", Description: "how long to wait"},
	}, f.Options)

	require.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "unsupported_field", diags.Warnings[0].Code)
	assert.Equal(t, "labels", diags.Warnings[0].Option)

	// the derived file resolves cleanly apart from missing descriptions
	_, resolved := schemafile.Resolve(f)
	assert.True(t, resolved.IsValid())
}

func TestSymbolOf(t *testing.T) {
	tests := []struct {
		name string
		typ  types.Type
		want symbol.TypeSymbol
		ok   bool
	}{
		{name: "string", typ: types.Typ[types.String], want: symbol.RequiredString, ok: true},
		{name: "int64", typ: types.Typ[types.Int64], want: symbol.RequiredNumber, ok: true},
		{name: "*float32", typ: types.NewPointer(types.Typ[types.Float32]), want: symbol.OptionalNumber, ok: true},
		{name: "*bool", typ: types.NewPointer(types.Typ[types.Bool]), want: symbol.OptionalBoolean, ok: true},
		{name: "complex", typ: types.Typ[types.Complex128]},
		{name: "slice", typ: types.NewSlice(types.Typ[types.String])},
		{name: "**string", typ: types.NewPointer(types.NewPointer(types.Typ[types.String]))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SymbolOf(tt.typ)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldInfo_OptionName(t *testing.T) {
	tests := []struct {
		field  FieldInfo
		want   string
		wantOK bool
	}{
		{field: FieldInfo{Name: "OutputDir"}, want: "outputDir", wantOK: true},
		{field: FieldInfo{Name: "URL"}, want: "url", wantOK: true},
		{field: FieldInfo{Name: "X", Tag: `argbind:"why"`}, want: "why", wantOK: true},
		{field: FieldInfo{Name: "X", Tag: `argbind:"-"`}},
	}

	for _, tt := range tests {
		t.Run(tt.field.Name, func(t *testing.T) {
			got, ok := tt.field.OptionName()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
