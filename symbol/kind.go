package symbol

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the value kind denoted by a TypeSymbol, independent of requiredness.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindString  // string
	KindNumber  // number
	KindBoolean // boolean
	KindPath    // path

	// KindTotal is the number of valid kinds plus one for the invalid zero value.
	KindTotal = int(iota)
)

// IsValid reports whether k is one of the four value kinds.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// Kinds returns the valid kinds in declaration order.
func Kinds() []Kind {
	res := make([]Kind, 0, KindTotal-1)
	for k := Kind(1); int(k) < KindTotal; k++ {
		res = append(res, k)
	}

	return res
}
