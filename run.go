package argbind

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"argbind/internal/argv"
	"argbind/internal/render"
	"argbind/options"
)

// ErrNoEntryPoint is reported when Run is given a nil Main.
var ErrNoEntryPoint = errors.New("argbind: nil entry point")

// Run parses and validates the arguments described by config, calls main,
// and blocks until main's outcome is settled. It returns nil on success and
// the failure otherwise; by then the failure has already been printed and
// Exit(1) called.
func Run(ctx context.Context, schema options.Schema, main Main, config Config) error {
	return <-Start(ctx, schema, main, config)
}

// Start performs the same lifecycle as Run without waiting for a pending
// outcome. Parsing, validation and the call to main happen before Start
// returns. The returned channel receives exactly one value: nil on success,
// or the failure.
//
// On failure PrintError and Exit(1) are called before the channel receives
// the error. A pending outcome that succeeds calls Exit(0) before the
// channel receives nil; an immediate success never calls Exit.
func Start(ctx context.Context, schema options.Schema, main Main, config Config) <-chan error {
	r := &runner{done: make(chan error, 1)}

	cfg, err := config.withDefaults()
	r.config = cfg
	r.renderer = cfg.renderer()
	r.logger = cfg.Logger.With().Str("run", uuid.NewString()).Logger()

	if err != nil {
		r.fail(err)
		return r.done
	}

	if main == nil {
		r.fail(ErrNoEntryPoint)
		return r.done
	}

	draft, err := r.prepare(schema)
	if err != nil {
		r.fail(err)
		return r.done
	}

	r.logger.Debug().Int("args", len(draft.Args)).Msg("invoking entry point")

	out := callMain(ctx, main, draft.Values, draft.Args)
	if !out.IsPending() {
		if out.err != nil {
			r.fail(out.err)
			return r.done
		}

		r.logger.Debug().Msg("entry point returned")
		r.done <- nil

		return r.done
	}

	r.logger.Debug().Msg("awaiting entry point completion")

	go r.await(out.pending)

	return r.done
}

type runner struct {
	config   Config
	renderer *render.Renderer
	logger   zerolog.Logger
	done     chan error
}

// prepare checks schema names, derives hints, tokenizes argv and checks the
// result.
func (r *runner) prepare(schema options.Schema) (*options.Draft, error) {
	if err := options.CheckNames(schema); err != nil {
		return nil, err
	}

	r.logger.Debug().Strs("argv", r.config.Argv).Msg("parsing arguments")

	hints, err := options.DeriveHints(schema)
	if err != nil {
		return nil, err
	}

	draft, err := argv.Parse(r.config.Argv, hints, argv.Config{
		Dir:         r.config.Dir,
		Passthrough: r.config.Passthrough,
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug().Int("options", len(draft.Values)).Msg("validating options")

	if err := options.Check(schema, draft.Values); err != nil {
		return nil, err
	}

	return draft, nil
}

func (r *runner) await(pending <-chan error) {
	// a closed channel yields nil: success
	err := <-pending
	if err != nil {
		r.fail(err)
		return
	}

	r.logger.Debug().Msg("entry point completed")
	r.config.Exit(ExitSuccess)
	r.done <- nil
}

func (r *runner) fail(err error) {
	r.logger.Error().Err(err).Msg("run failed")
	r.config.PrintError(r.renderer.Format(err))
	r.config.Exit(ExitFailure)
	r.done <- err
}
