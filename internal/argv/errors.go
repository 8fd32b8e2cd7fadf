package argv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownFlag is returned for a flag that matches no hint.
	ErrUnknownFlag = errors.New("unrecognized flag")
	// ErrAmbiguousFlag is returned for a spelling that folds to several hints
	// and matches none of them exactly.
	ErrAmbiguousFlag = errors.New("ambiguous flag")
	// ErrMissingValue is returned for a valued flag at the end of argv.
	ErrMissingValue = errors.New("flag requires a value")
	// ErrInvalidBool is returned for a --flag=value boolean that does not parse.
	ErrInvalidBool = errors.New("invalid boolean value")
)

// Error reports a tokenization problem with a single flag.
type Error struct {
	Flag string
	Err  error
	// Suggestion is the closest known flag for ErrUnknownFlag, if any.
	Suggestion string
	// Candidates are the flags an ErrAmbiguousFlag spelling could mean.
	Candidates []string
}

func (e *Error) Error() string {
	if len(e.Candidates) > 0 {
		return fmt.Sprintf("%v: %s (could be %s)", e.Err, e.Flag, strings.Join(e.Candidates, ", "))
	}

	if e.Suggestion != "" {
		return fmt.Sprintf("%v: %s (did you mean %s?)", e.Err, e.Flag, e.Suggestion)
	}

	return fmt.Sprintf("%v: %s", e.Err, e.Flag)
}

func (e *Error) Unwrap() error { return e.Err }
