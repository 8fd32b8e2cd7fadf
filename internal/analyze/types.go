package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"argbind/internal/casing"
)

// Struct tag keys read from fields.
const (
	NameTag        = "argbind"
	DescriptionTag = "desc"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "example.com/app/cli"
	Name    string // e.g., "Deploy"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// StructInfo describes a named struct type.
type StructInfo struct {
	ID      TypeID
	PkgName string      // Package name, as in its package clause
	Fields  []FieldInfo // Exported fields in declaration order
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Type     types.Type        // Field type
	Tag      reflect.StructTag // Raw struct tag
	Doc      string            // Doc comment, or the line comment when there is none
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// OptionName returns the option key for the field: the argbind tag when set,
// otherwise the field name in camelCase. ok is false for `argbind:"-"`.
func (f *FieldInfo) OptionName() (name string, ok bool) {
	tag := f.Tag.Get(NameTag)
	if tag == "-" {
		return "", false
	}

	if tag != "" {
		return tag, true
	}

	return casing.Camel(f.Name), true
}

// Description returns the desc tag, falling back to the field's comment.
func (f *FieldInfo) Description() string {
	if d := f.Tag.Get(DescriptionTag); d != "" {
		return d
	}

	return strings.Join(strings.Fields(f.Doc), " ")
}
