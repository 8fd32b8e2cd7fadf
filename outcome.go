package argbind

import (
	"context"

	"argbind/internal/render"
	"argbind/options"
)

// Main is a program entry point. It receives the validated options and the
// positional arguments, and reports how it finished through an Outcome.
type Main func(ctx context.Context, opts options.Values, args ...string) Outcome

// Outcome is what an entry point hands back: either a result that is already
// known, or a channel that delivers it later.
type Outcome struct {
	err     error
	pending <-chan error
}

// Return reports an immediate result. A nil err is success.
func Return(err error) Outcome {
	return Outcome{err: err}
}

// Await reports a result that arrives on ch. The first value received
// settles the run; a closed channel counts as success.
func Await(ch <-chan error) Outcome {
	return Outcome{pending: ch}
}

// Spawn runs fn on its own goroutine and reports its result when it returns.
// A panic in fn is recovered and reported as a failure.
func Spawn(fn func() error) Outcome {
	ch := make(chan error, 1)

	go func() {
		ch <- runSpawned(fn)
	}()

	return Await(ch)
}

// Func adapts a plain function into a Main that always finishes
// synchronously.
func Func(fn func(ctx context.Context, opts options.Values, args ...string) error) Main {
	return func(ctx context.Context, opts options.Values, args ...string) Outcome {
		return Return(fn(ctx, opts, args...))
	}
}

// IsPending reports whether the outcome is still to be settled.
func (o Outcome) IsPending() bool {
	return o.pending != nil
}

func runSpawned(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = render.Capture(r, runSpawnedName)
		}
	}()

	return fn()
}

// callMain invokes main, turning a panic into a *render.Panic.
func callMain(ctx context.Context, main Main, opts options.Values, args []string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Return(render.Capture(r, callMainName))
		}
	}()

	return main(ctx, opts, args...)
}

// Function names where captured panic stacks are cut, so that traces end at
// the user's code rather than in the orchestrator.
const (
	callMainName   = "argbind.callMain"
	runSpawnedName = "argbind.runSpawned"
)
