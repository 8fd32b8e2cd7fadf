package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads structs from Go packages.
type Analyzer struct {
	dir string
}

// NewAnalyzer creates an Analyzer that resolves package patterns relative
// to dir. An empty dir means the working directory.
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{dir: dir}
}

// LoadStruct loads the package matched by pattern (e.g. "./cli") and
// returns the exported struct named typeName.
func (a *Analyzer) LoadStruct(pattern, typeName string) (*StructInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(pkgs))
	}

	pkg := pkgs[0]

	var errs []error
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	return a.processStruct(pkg, typeName)
}

func (a *Analyzer) processStruct(pkg *packages.Package, typeName string) (*StructInfo, error) {
	id := TypeID{PkgPath: pkg.PkgPath, Name: typeName}

	obj, ok := pkg.Types.Scope().Lookup(typeName).(*types.TypeName)
	if !ok || !obj.Exported() {
		return nil, fmt.Errorf("type %s not found", id)
	}

	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("type %s is not a struct", id)
	}

	docs := fieldDocs(pkg.Syntax, typeName)

	info := &StructInfo{
		ID:      id,
		PkgName: pkg.Name,
	}

	for i := range st.NumFields() {
		field := st.Field(i)

		if !field.Exported() {
			continue
		}

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Type:     field.Type(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Doc:      docs[field.Name()],
			Embedded: field.Embedded(),
			Index:    i,
		})
	}

	return info, nil
}

// fieldDocs collects the comments of typeName's fields from the syntax trees.
func fieldDocs(files []*ast.File, typeName string) map[string]string {
	docs := map[string]string{}

	for _, file := range files {
		ast.Inspect(file, func(n ast.Node) bool {
			spec, ok := n.(*ast.TypeSpec)
			if !ok || spec.Name.Name != typeName {
				return true
			}

			st, ok := spec.Type.(*ast.StructType)
			if !ok {
				return false
			}

			for _, field := range st.Fields.List {
				text := field.Doc.Text()
				if text == "" {
					text = field.Comment.Text()
				}

				for _, name := range field.Names {
					docs[name.Name] = strings.TrimSpace(text)
				}
			}

			return false
		})
	}

	return docs
}
