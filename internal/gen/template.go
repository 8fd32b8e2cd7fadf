package gen

import (
	"text/template"

	"argbind/symbol"
)

// templateData holds all data needed for the options template.
type templateData struct {
	Source           string
	PackageName      string
	TypeName         string
	Filename         string
	Imports          []string
	GenerateComments bool
	Fields           []fieldData
}

// fieldData describes one option and its struct field.
type fieldData struct {
	Key         string
	Flag        string
	Field       string
	Symbol      string
	GoType      string
	Required    bool
	Getter      string
	Description string
}

// goKind is how a value kind appears in generated code.
type goKind struct {
	goType string
	get    string
	lookup string
}

var goKinds = [symbol.KindTotal]goKind{
	symbol.KindString:  {goType: "string", get: "String", lookup: "LookupString"},
	symbol.KindNumber:  {goType: "float64", get: "Number", lookup: "LookupNumber"},
	symbol.KindBoolean: {goType: "bool", get: "Bool", lookup: "LookupBool"},
	symbol.KindPath:    {goType: "options.Path", get: "Path", lookup: "LookupPath"},
}

var optionsTemplate = template.Must(template.New("options").Parse(`// Code generated by argbind-gen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	"{{.}}"
{{end}})

{{if .GenerateComments}}// {{.TypeName}}Schema declares the options of {{.TypeName}}Options.
{{end}}var {{.TypeName}}Schema = options.Schema{
{{range .Fields}}	{Name: {{printf "%q" .Key}}, Type: {{.Symbol}}},
{{end}}}

{{if .GenerateComments}}// {{.TypeName}}Options is the typed form of values checked against {{.TypeName}}Schema.
// Optional options that were not specified are nil.
{{end}}type {{.TypeName}}Options struct {
{{range .Fields}}{{if $.GenerateComments}}	// {{.Field}} is set by {{.Flag}}{{if .Description}}: {{.Description}}{{end}}.
{{end}}	{{.Field}} {{if not .Required}}*{{end}}{{.GoType}}
{{end}}}

{{if .GenerateComments}}// New{{.TypeName}}Options copies v into a {{.TypeName}}Options. v must have
// passed options.Check against {{.TypeName}}Schema.
{{end}}func New{{.TypeName}}Options(v options.Values) {{.TypeName}}Options {
	var o {{.TypeName}}Options
{{range .Fields}}{{if .Required}}
	o.{{.Field}} = v.{{.Getter}}({{printf "%q" .Key}})
{{else}}
	if x, ok := v.{{.Getter}}({{printf "%q" .Key}}); ok {
		o.{{.Field}} = &x
	}
{{end}}{{end}}
	return o
}
`))
