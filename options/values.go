package options

import (
	"math"
)

// Values maps option names to parsed values. Absent keys and nil values
// both mean "not specified".
type Values map[string]any

// Draft is the tokenizer's output: option values that have not been
// checked yet, and the positional arguments left over.
type Draft struct {
	Values Values
	Args   []string
}

// Lookup returns the value for name if it is present and non-nil.
func (v Values) Lookup(name string) (any, bool) {
	val, ok := v[name]
	if !ok || val == nil {
		return nil, false
	}

	return val, true
}

// Has reports whether name was specified.
func (v Values) Has(name string) bool {
	_, ok := v.Lookup(name)
	return ok
}

// LookupString returns a string value.
func (v Values) LookupString(name string) (string, bool) {
	val, ok := v.Lookup(name)
	if !ok {
		return "", false
	}

	s, ok := val.(string)

	return s, ok
}

// String returns a string value or "".
func (v Values) String(name string) string {
	s, _ := v.LookupString(name)
	return s
}

// LookupNumber returns a numeric value widened to float64.
func (v Values) LookupNumber(name string) (float64, bool) {
	val, ok := v.Lookup(name)
	if !ok {
		return 0, false
	}

	return toFloat(val)
}

// Number returns a numeric value or 0.
func (v Values) Number(name string) float64 {
	n, _ := v.LookupNumber(name)
	return n
}

// LookupBool returns a boolean value.
func (v Values) LookupBool(name string) (bool, bool) {
	val, ok := v.Lookup(name)
	if !ok {
		return false, false
	}

	b, ok := val.(bool)

	return b, ok
}

// Bool returns a boolean value or false.
func (v Values) Bool(name string) bool {
	b, _ := v.LookupBool(name)
	return b
}

// LookupPath returns a path value.
func (v Values) LookupPath(name string) (Path, bool) {
	val, ok := v.Lookup(name)
	if !ok {
		return "", false
	}

	p, ok := val.(Path)

	return p, ok
}

// Path returns a path value or "".
func (v Values) Path(name string) Path {
	p, _ := v.LookupPath(name)
	return p
}

// toFloat widens any Go integer or float to float64.
func toFloat(val any) (float64, bool) {
	switch n := val.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func isNumber(val any) bool {
	n, ok := toFloat(val)
	return ok && !math.IsNaN(n)
}
