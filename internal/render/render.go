package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Config holds renderer settings.
type Config struct {
	// Color enables ANSI colors.
	Color bool
	// Dir is the directory preview paths are shown relative to.
	Dir string
	// Before and After are the number of source lines shown around the
	// failing line in a code preview.
	Before int
	After  int
}

// DefaultConfig returns the default renderer configuration.
// Dir is the working directory; when it cannot be determined Dir stays empty
// and source previews are headed by absolute paths.
func DefaultConfig() Config {
	cfg := Config{
		Color:  !color.NoColor,
		Before: 2,
		After:  3,
	}

	if dir, err := os.Getwd(); err == nil {
		cfg.Dir = dir
	}

	return cfg
}

// Renderer formats failure values.
type Renderer struct {
	config Config

	title    *color.Color
	location *color.Color
	marker   *color.Color
	faint    *color.Color
}

// New creates a Renderer.
func New(config Config) *Renderer {
	r := &Renderer{
		config:   config,
		title:    color.New(color.FgRed, color.Bold),
		location: color.New(color.FgCyan),
		marker:   color.New(color.FgRed, color.Bold),
		faint:    color.New(color.Faint),
	}

	for _, c := range []*color.Color{r.title, r.location, r.marker, r.faint} {
		if config.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// Format renders any failure value.
func Format(v any) string {
	return New(DefaultConfig()).Format(v)
}

// Format renders v. Values that are not errors are wrapped in NonError.
// When v carries a stack whose top frame can be previewed, the preview is
// placed between the first line and the rest, separated by blank lines.
func (r *Renderer) Format(v any) string {
	err, ok := v.(error)
	if !ok || err == nil {
		return r.Format(NonError{Value: v})
	}

	var stack []Frame

	var st StackTracer
	if errors.As(err, &st) {
		stack = st.StackTrace()
	}

	base := r.base(err, stack)

	if len(stack) == 0 {
		return base
	}

	preview, ok := r.preview(stack[0])
	if !ok {
		return base
	}

	lines := strings.Split(base, "\n")
	out := append([]string{lines[0], "", preview, ""}, lines[1:]...)

	return strings.Join(out, "\n")
}

func (r *Renderer) base(err error, stack []Frame) string {
	var b strings.Builder

	b.WriteString(r.title.Sprint("Error:"))
	b.WriteString(" ")
	b.WriteString(err.Error())

	for _, f := range stack {
		b.WriteString("\n")
		b.WriteString(r.faint.Sprintf("    at %s (%s:%d)", f.Function, f.File, f.Line))
	}

	return b.String()
}

// preview renders the source lines around f, or reports false when the file
// cannot be read or the line is out of range.
func (r *Renderer) preview(f Frame) (string, bool) {
	if f.File == "" || f.Line <= 0 {
		return "", false
	}

	src, err := os.ReadFile(f.File)
	if err != nil {
		return "", false
	}

	lines := strings.Split(string(src), "\n")
	if f.Line > len(lines) {
		return "", false
	}

	first := max(1, f.Line-r.config.Before)
	last := min(len(lines), f.Line+r.config.After)
	width := len(fmt.Sprint(last))

	var b strings.Builder

	b.WriteString(r.location.Sprintf("%s:%d", r.displayPath(f.File), f.Line))

	for n := first; n <= last; n++ {
		mark := " "
		if n == f.Line {
			mark = r.marker.Sprint(">")
		}

		text := strings.ReplaceAll(strings.TrimRight(lines[n-1], "\r"), "\t", "    ")
		fmt.Fprintf(&b, "\n%-*d %s | %s", width, n, mark, text)
	}

	return b.String(), true
}

// displayPath shows files below the configured directory as ./relative paths.
func (r *Renderer) displayPath(file string) string {
	if r.config.Dir == "" {
		return file
	}

	rel, err := filepath.Rel(r.config.Dir, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return file
	}

	return "./" + filepath.ToSlash(rel)
}
