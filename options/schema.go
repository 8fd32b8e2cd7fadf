package options

import (
	"argbind/internal/casing"
	"argbind/symbol"
)

// Field is a single schema entry.
type Field struct {
	Name string
	Type symbol.TypeSymbol
}

// Schema lists the options a program accepts. Slice order is the
// definition order every check walks in.
type Schema []Field

// Lookup returns the tag for name.
func (s Schema) Lookup(name string) (symbol.TypeSymbol, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Type, true
		}
	}

	return 0, false
}

// Names returns the option names in definition order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}

	return names
}

// FlagName returns the flag a user types for the option name:
// "-k" for single-character names, "--kebab-case" otherwise.
func FlagName(name string) string {
	if len([]rune(name)) == 1 {
		return "-" + name
	}

	return "--" + casing.Kebab(name)
}
