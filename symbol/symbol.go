package symbol

//go:generate go tool stringer -type=TypeSymbol -linecomment -output=symbol_string.go

// TypeSymbol tags a schema option with its requiredness and value kind.
// The four required tags come first, followed by the four optional ones,
// both groups in Kind order.
type TypeSymbol int

const (
	_ TypeSymbol = iota // skip zero value, use it as a default (invalid) value for TypeSymbol

	RequiredString  // requiredString
	RequiredNumber  // requiredNumber
	RequiredBoolean // requiredBoolean
	RequiredPath    // requiredPath
	OptionalString  // optionalString
	OptionalNumber  // optionalNumber
	OptionalBoolean // optionalBoolean
	OptionalPath    // optionalPath

	// SymbolTotal is the number of valid symbols plus one for the invalid zero value.
	SymbolTotal = int(iota)
)

const kindsPerGroup = KindTotal - 1

// IsValid reports whether s is one of the eight tags.
func (s TypeSymbol) IsValid() bool {
	return s > 0 && int(s) < SymbolTotal
}

// Required reports whether an option tagged with s must be supplied.
func (s TypeSymbol) Required() bool {
	return s.IsValid() && int(s) <= kindsPerGroup
}

// Kind returns the value kind of s, or the invalid zero Kind for an invalid s.
func (s TypeSymbol) Kind() Kind {
	if !s.IsValid() {
		return 0
	}

	return Kind((int(s)-1)%kindsPerGroup + 1)
}

// Of returns the tag with the given kind and requiredness.
// It returns the invalid zero TypeSymbol when kind is invalid.
func Of(kind Kind, required bool) TypeSymbol {
	if !kind.IsValid() {
		return 0
	}

	if required {
		return TypeSymbol(kind)
	}

	return TypeSymbol(int(kind) + kindsPerGroup)
}

// All returns the eight tags in declaration order.
func All() []TypeSymbol {
	res := make([]TypeSymbol, 0, SymbolTotal-1)
	for s := TypeSymbol(1); int(s) < SymbolTotal; s++ {
		res = append(res, s)
	}

	return res
}

// Parse resolves a display name such as "optionalNumber" to its tag.
func Parse(name string) (TypeSymbol, bool) {
	for _, s := range All() {
		if s.String() == name {
			return s, true
		}
	}

	return 0, false
}
