package options

import (
	"argbind/symbol"
)

// Hints maps option names to the value kind their raw text is coerced to.
type Hints map[string]symbol.Kind

// DeriveHints returns one hint per schema field. Only the value kind of a
// tag matters; requiredness is dropped.
func DeriveHints(schema Schema) (Hints, error) {
	hints := make(Hints, len(schema))

	for _, f := range schema {
		if !f.Type.IsValid() {
			return nil, &SymbolError{Key: f.Name, Type: f.Type}
		}

		hints[f.Name] = f.Type.Kind()
	}

	return hints, nil
}
