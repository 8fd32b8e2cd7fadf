package options

import (
	"argbind/internal/casing"
	"argbind/symbol"
)

// Check validates values against schema. It returns the first problem found,
// checking in three passes over the schema in definition order:
//
//  1. every key must be camelCase (*NamingError);
//  2. every required option must be present and non-nil (*MissingError);
//  3. every present option must match its tag's kind (*TypeError).
//
// Naming runs first because it does not depend on input. Presence runs as a
// full pass before types, so a missing later option is reported ahead of a
// wrongly typed earlier one. A present but wrongly typed required option is
// always a *TypeError.
func Check(schema Schema, values Values) error {
	if err := CheckNames(schema); err != nil {
		return err
	}

	for _, f := range schema {
		if f.Type.Required() && !values.Has(f.Name) {
			return &MissingError{Key: f.Name}
		}
	}

	for _, f := range schema {
		if !f.Type.IsValid() {
			return &SymbolError{Key: f.Name, Type: f.Type}
		}

		val, ok := values.Lookup(f.Name)
		if !ok {
			// only optional fields get here: required ones failed the presence pass
			continue
		}

		if !matches(f.Type.Kind(), val) {
			return &TypeError{Key: f.Name, Want: f.Type, Value: val}
		}
	}

	return nil
}

// CheckNames is the naming pass of Check on its own: it returns a
// *NamingError for the first key that is not camelCase. It needs no input, so
// callers run it before touching argv.
func CheckNames(schema Schema) error {
	for _, f := range schema {
		if !casing.IsCamel(f.Name) {
			return &NamingError{Key: f.Name}
		}
	}

	return nil
}

func matches(kind symbol.Kind, val any) bool {
	switch kind {
	case symbol.KindString:
		_, ok := val.(string)
		return ok
	case symbol.KindNumber:
		return isNumber(val)
	case symbol.KindBoolean:
		_, ok := val.(bool)
		return ok
	case symbol.KindPath:
		_, ok := val.(Path)
		return ok
	default:
		return false
	}
}
