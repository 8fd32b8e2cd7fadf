package options

import (
	"errors"
	"fmt"
	"strconv"

	"argbind/symbol"
)

var (
	// ErrNamingConvention marks a schema key that is not camelCase.
	ErrNamingConvention = errors.New("option key is not camelCase")
	// ErrRequiredMissing marks a required option that was not specified.
	ErrRequiredMissing = errors.New("required option missing")
	// ErrTypeMismatch marks an option value of the wrong kind.
	ErrTypeMismatch = errors.New("option has the wrong type")
	// ErrUnknownSymbol marks a schema field whose tag is not one of the eight symbols.
	ErrUnknownSymbol = errors.New("unknown type symbol")
)

// NamingError reports a schema key that is not camelCase.
type NamingError struct {
	Key string
}

func (e *NamingError) Error() string {
	return "All option keys must be in camelCase. This one wasn't: " + strconv.Quote(e.Key)
}

func (e *NamingError) Unwrap() error { return ErrNamingConvention }

// MissingError reports a required option that was absent.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("'%s' is required, but it wasn't specified. Please specify it using %s.",
		e.Key, FlagName(e.Key))
}

func (e *MissingError) Unwrap() error { return ErrRequiredMissing }

// TypeError reports an option whose value does not match its tag.
type TypeError struct {
	Key   string
	Want  symbol.TypeSymbol
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("'%s' has the wrong type: should have been '%s', but got: %v", e.Key, e.Want, e.Value)
}

func (e *TypeError) Unwrap() error { return ErrTypeMismatch }

// SymbolError reports a schema field tagged with an invalid TypeSymbol.
// It is a programming error in the schema, not a user input problem.
type SymbolError struct {
	Key  string
	Type symbol.TypeSymbol
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("option %q has an unknown type symbol %s", e.Key, e.Type)
}

func (e *SymbolError) Unwrap() error { return ErrUnknownSymbol }
