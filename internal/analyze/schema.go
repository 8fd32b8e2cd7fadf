package analyze

import (
	"fmt"
	"go/types"
	"path"

	"argbind/internal/diagnostic"
	"argbind/internal/schemafile"
	"argbind/symbol"
)

// ToSchemaFile turns info into a schema file. Fields whose type has no
// matching symbol are skipped with an unsupported_field warning; embedded
// fields are skipped the same way.
func ToSchemaFile(info *StructInfo) (*schemafile.File, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}

	f := &schemafile.File{
		Package: info.PkgName,
		Type:    info.ID.Name,
	}

	for i := range info.Fields {
		field := &info.Fields[i]

		name, ok := field.OptionName()
		if !ok {
			continue
		}

		sym, ok := SymbolOf(field.Type)
		if !ok || field.Embedded {
			res.AddWarning("unsupported_field",
				fmt.Sprintf("field %s of type %s has no option type", field.Name, field.Type), "", name)

			continue
		}

		f.Options = append(f.Options, schemafile.Option{
			Name:        name,
			Type:        sym.String(),
			Description: field.Description(),
		})
	}

	return f, res
}

// SymbolOf maps a Go type to the type symbol it stores. A pointer makes the
// option optional.
func SymbolOf(t types.Type) (symbol.TypeSymbol, bool) {
	required := true

	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
		required = false
	}

	kind, ok := kindOf(types.Unalias(t))
	if !ok {
		return 0, false
	}

	return symbol.Of(kind, required), true
}

func kindOf(t types.Type) (symbol.Kind, bool) {
	if named, ok := t.(*types.Named); ok && isOptionsPath(named.Obj()) {
		return symbol.KindPath, true
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0, false
	}

	switch info := basic.Info(); {
	case info&types.IsBoolean != 0:
		return symbol.KindBoolean, true
	case info&types.IsString != 0:
		return symbol.KindString, true
	case info&(types.IsInteger|types.IsFloat) != 0:
		return symbol.KindNumber, true
	default:
		return 0, false
	}
}

// isOptionsPath matches options.Path from any copy of the argbind module.
func isOptionsPath(obj *types.TypeName) bool {
	return obj.Name() == "Path" && obj.Pkg() != nil && path.Base(obj.Pkg().Path()) == "options"
}
