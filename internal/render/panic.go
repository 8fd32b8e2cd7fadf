package render

import (
	"errors"
	"runtime"
	"strings"
)

// maxFrames bounds how deep a captured stack goes.
const maxFrames = 64

// Frame is one captured stack frame.
type Frame struct {
	Function string
	File     string
	Line     int
}

// StackTracer is implemented by errors that know where they were raised.
type StackTracer interface {
	StackTrace() []Frame
}

// Panic is a recovered panic value together with the stack it unwound.
type Panic struct {
	Value any
	Stack []Frame
}

// Capture records the stack of the panic being recovered. It must be called
// from the deferred function that called recover. Frames belonging to the
// runtime's panic machinery are dropped, and the stack is cut before the
// first frame whose function is named stop.
func Capture(value any, stop string) *Panic {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var all []Frame

	for {
		f, more := frames.Next()
		all = append(all, Frame{Function: f.Function, File: f.File, Line: f.Line})

		if !more {
			break
		}
	}

	return &Panic{Value: value, Stack: trimStack(all, stop)}
}

// trimStack drops everything up to and including the runtime panic frames,
// then everything from stop onwards.
func trimStack(all []Frame, stop string) []Frame {
	start := 0

	for i, f := range all {
		if isRuntime(f) {
			start = i
			break
		}
	}

	for start < len(all) && isRuntime(all[start]) {
		start++
	}

	var res []Frame

	for _, f := range all[start:] {
		if stop != "" && f.Function == stop {
			break
		}

		res = append(res, f)
	}

	return res
}

func isRuntime(f Frame) bool {
	return strings.HasPrefix(f.Function, "runtime.")
}

func (p *Panic) Error() string {
	if err, ok := p.Value.(error); ok {
		return err.Error()
	}

	return NonError{Value: p.Value}.Error()
}

// Unwrap returns the panic value when it is an error.
func (p *Panic) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}

// StackTrace implements StackTracer.
func (p *Panic) StackTrace() []Frame {
	return p.Stack
}

// NonError wraps a failure value that is not an error, such as a string
// passed to panic.
type NonError struct {
	Value any
}

func (e NonError) Error() string {
	return "Non-error value was thrown: " + Inspect(e.Value)
}

// IsNonError reports whether err is, or wraps, a NonError.
func IsNonError(err error) bool {
	var ne NonError
	return errors.As(err, &ne)
}
