package render

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var inspector = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                4,
}

// Inspect returns a type-annotated, side-effect free rendering of v,
// such as `(string) (len=4) "boom"`.
func Inspect(v any) string {
	return strings.TrimRight(inspector.Sdump(v), "\n")
}
