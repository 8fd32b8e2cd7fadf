package argbind

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"argbind/internal/render"
)

// ColorMode selects whether rendered errors use ANSI colors.
type ColorMode int

const (
	// ColorAuto colors output when stderr is a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on.
	ColorAlways
	// ColorNever forces colors off.
	ColorNever
)

// LogLevelEnv names the environment variable that sets the default logger's
// level ("debug", "info", ...). When it is unset the default logger
// discards everything.
const LogLevelEnv = "ARGBIND_LOG_LEVEL"

// Config holds the collaborators and settings of a run. The zero value
// talks to the real process: os.Args, stderr and os.Exit.
type Config struct {
	// Argv is the token sequence to parse. Nil means os.Args[1:].
	Argv []string
	// PrintError receives each formatted failure. Nil prints to stderr.
	PrintError func(formatted string)
	// Exit receives the exit code. Nil means os.Exit.
	Exit func(code int)
	// Passthrough keeps unrecognized flags as positional arguments.
	Passthrough bool
	// Dir resolves relative path options. Empty means the working directory.
	Dir string
	// Color controls ANSI colors in rendered failures.
	Color ColorMode
	// Logger receives lifecycle events. Nil builds one from LogLevelEnv.
	Logger *zerolog.Logger
}

// withDefaults fills every unset field from the process.
func (c Config) withDefaults() (Config, error) {
	if c.Argv == nil {
		c.Argv = os.Args[1:]
	}

	if c.PrintError == nil {
		c.PrintError = func(formatted string) {
			fmt.Fprintln(os.Stderr, formatted)
		}
	}

	if c.Exit == nil {
		c.Exit = os.Exit
	}

	if c.Logger == nil {
		logger := DefaultLogger()
		c.Logger = &logger
	}

	if c.Dir == "" {
		dir, err := os.Getwd()
		if err != nil {
			return c, fmt.Errorf("resolving working directory: %w", err)
		}

		c.Dir = dir
	}

	return c, nil
}

func (c Config) renderer() *render.Renderer {
	cfg := render.DefaultConfig()
	cfg.Dir = c.Dir
	cfg.Color = c.useColor()

	return render.New(cfg)
}

func (c Config) useColor() bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}

		fd := os.Stderr.Fd()

		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

// DefaultLogger returns a console logger on stderr at the level named by
// LogLevelEnv, or a disabled logger when the variable is unset or invalid.
func DefaultLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv(LogLevelEnv))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.Nop()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Logger()
}
