package schemafile

import (
	"fmt"
	"go/token"

	"argbind/internal/casing"
	"argbind/internal/diagnostic"
	"argbind/internal/match"
	"argbind/options"
	"argbind/symbol"
)

// Resolve validates f and builds its schema. Every problem is reported;
// the schema is only meaningful when the diagnostics are valid.
func Resolve(f *File) (options.Schema, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "schema file is nil", "", "")
		return nil, res
	}

	file := f.Path

	switch {
	case f.Package == "":
		res.AddError("missing_package", "package name is empty", file, "")
	case !token.IsIdentifier(f.Package):
		res.AddError("invalid_package", fmt.Sprintf("package name %q is not a Go identifier", f.Package), file, "")
	}

	switch {
	case f.Type == "":
		res.AddError("missing_type", "type name is empty", file, "")
	case !token.IsIdentifier(casing.Pascal(f.Type)):
		res.AddError("invalid_type", fmt.Sprintf("type name %q does not make a Go identifier", f.Type), file, "")
	}

	if len(f.Options) == 0 {
		res.AddWarning("no_options", "schema declares no options", file, "")
	}

	schema := make(options.Schema, 0, len(f.Options))
	seen := map[string]struct{}{}
	folded := map[string]string{}

	for i, o := range f.Options {
		if o.Name == "" {
			res.AddError("empty_option_name", fmt.Sprintf("option #%d has no name", i+1), file, "")
			continue
		}

		if _, ok := seen[o.Name]; ok {
			res.AddError("duplicate_option", fmt.Sprintf("option %q is declared twice", o.Name), file, o.Name)
			continue
		}

		seen[o.Name] = struct{}{}

		if !casing.IsCamel(o.Name) {
			res.AddError("option_not_camel_case",
				fmt.Sprintf("option keys must be in camelCase, did you mean %q?", casing.Camel(o.Name)), file, o.Name)
		}

		if other, ok := folded[casing.Fold(o.Name)]; ok {
			res.AddWarning("ambiguous_flag",
				fmt.Sprintf("flags for %q and %q differ only in case or separators", other, o.Name), file, o.Name)
		} else {
			folded[casing.Fold(o.Name)] = o.Name
		}

		sym, ok := symbol.Parse(o.Type)
		if !ok {
			res.AddError("unknown_type", unknownType(o.Type), file, o.Name)
			continue
		}

		if o.Description == "" {
			res.AddWarning("missing_description", "option has no description", file, o.Name)
		}

		schema = append(schema, options.Field{Name: o.Name, Type: sym})
	}

	return schema, res
}

func unknownType(name string) string {
	symbols := symbol.All()

	names := make([]string, len(symbols))
	for i, s := range symbols {
		names[i] = s.String()
	}

	if guess, ok := match.Suggest(name, names); ok {
		return fmt.Sprintf("unknown type %q, did you mean %q?", name, guess)
	}

	return fmt.Sprintf("unknown type %q", name)
}
