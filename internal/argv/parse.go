package argv

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"argbind/internal/casing"
	"argbind/internal/match"
	"argbind/options"
	"argbind/symbol"
)

// Config controls tokenizer behavior.
type Config struct {
	// Dir is the base directory relative path values are resolved against.
	Dir string
	// Passthrough keeps unrecognized flags as positional arguments instead
	// of failing with ErrUnknownFlag.
	Passthrough bool
}

// Parser resolves flags against a fixed set of hints.
type Parser struct {
	config Config
	hints  options.Hints
	folded map[string][]string
}

// NewParser creates a Parser for hints.
func NewParser(hints options.Hints, config Config) *Parser {
	folded := make(map[string][]string, len(hints))
	for _, name := range slices.Sorted(maps.Keys(hints)) {
		key := casing.Fold(name)
		folded[key] = append(folded[key], name)
	}

	return &Parser{
		config: config,
		hints:  hints,
		folded: folded,
	}
}

// Parse tokenizes raw with a one-off Parser.
func Parse(raw []string, hints options.Hints, config Config) (*options.Draft, error) {
	return NewParser(hints, config).Parse(raw)
}

// Parse tokenizes raw into option values and positional arguments.
func (p *Parser) Parse(raw []string) (*options.Draft, error) {
	draft := &options.Draft{
		Values: options.Values{},
		Args:   []string{},
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		if arg == "--" {
			draft.Args = append(draft.Args, raw[i+1:]...)
			break
		}

		if !isFlag(arg) {
			draft.Args = append(draft.Args, arg)
			continue
		}

		key, value, hasValue := splitFlag(arg)

		name, candidates := p.resolve(key)
		if name == "" {
			if len(candidates) > 1 {
				return nil, &Error{Flag: arg, Err: ErrAmbiguousFlag, Candidates: flagNames(candidates)}
			}

			if p.config.Passthrough {
				draft.Args = append(draft.Args, arg)
				continue
			}

			return nil, &Error{Flag: arg, Err: ErrUnknownFlag, Suggestion: p.suggest(key)}
		}

		kind := p.hints[name]

		if kind == symbol.KindBoolean {
			b, consumed, err := parseBool(raw, i, value, hasValue)
			if err != nil {
				return nil, &Error{Flag: arg, Err: err}
			}

			draft.Values[name] = b
			i += consumed

			continue
		}

		if !hasValue {
			if i+1 >= len(raw) {
				return nil, &Error{Flag: arg, Err: ErrMissingValue}
			}

			value = raw[i+1]
			i++
		}

		draft.Values[name] = p.coerce(kind, value)
	}

	return draft, nil
}

// resolve maps a flag key to a hint name, by exact match first and then by
// case- and separator-insensitive match. When several names fold to the key
// the name is empty and candidates lists them in sorted order.
func (p *Parser) resolve(key string) (name string, candidates []string) {
	if _, ok := p.hints[key]; ok {
		return key, nil
	}

	candidates = p.folded[casing.Fold(key)]
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	return "", candidates
}

func flagNames(names []string) []string {
	flags := make([]string, len(names))
	for i, name := range names {
		flags[i] = options.FlagName(name)
	}

	return flags
}

// suggest returns the flag spelling closest to an unknown key, or "".
func (p *Parser) suggest(key string) string {
	names := make([]string, 0, len(p.hints))
	for name := range p.hints {
		names = append(names, name)
	}

	name, ok := match.Suggest(key, names)
	if !ok {
		return ""
	}

	return options.FlagName(name)
}

func (p *Parser) coerce(kind symbol.Kind, value string) any {
	switch kind {
	case symbol.KindNumber:
		return parseNumber(value)
	case symbol.KindPath:
		return options.ResolvePath(p.config.Dir, value)
	default:
		return value
	}
}

// parseBool reads a boolean flag. A bare flag is true unless the next token
// is the literal "false", which is consumed.
func parseBool(raw []string, i int, value string, hasValue bool) (b bool, consumed int, err error) {
	if hasValue {
		parsed, perr := strconv.ParseBool(value)
		if perr != nil {
			return false, 0, ErrInvalidBool
		}

		return parsed, 0, nil
	}

	if i+1 < len(raw) && raw[i+1] == "false" {
		return false, 1, nil
	}

	return true, 0, nil
}

// parseNumber converts text to a float64. Text that is not a number yields
// NaN rather than an error so the checker can report it against the option.
// Only decimal literals and 0x/0o/0b integers count: "inf", "nan" and hex
// floats such as "0x1p3" are not numbers.
func parseNumber(value string) float64 {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0
	}

	if hasIntPrefix(s) {
		if n, err := strconv.ParseInt(s, 0, 64); err == nil {
			return float64(n)
		}

		return math.NaN()
	}

	if !isDecimal(s) {
		return math.NaN()
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return math.NaN()
}

// isDecimal reports whether s only uses the runes of a decimal float literal.
func isDecimal(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789.eE+-", r)
	}) < 0
}

func hasIntPrefix(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if len(s) < 2 || s[0] != '0' {
		return false
	}

	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	default:
		return false
	}
}

// isFlag reports whether arg names a flag. A lone "-" and negative numbers
// are positional.
func isFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}

	_, err := strconv.ParseFloat(arg, 64)

	return err != nil
}

func splitFlag(arg string) (key, value string, hasValue bool) {
	arg = strings.TrimPrefix(arg, "-")
	arg = strings.TrimPrefix(arg, "-")

	if idx := strings.Index(arg, "="); idx >= 0 {
		return arg[:idx], arg[idx+1:], true
	}

	return arg, "", false
}
