package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(t *testing.T) *Renderer {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	return New(Config{Dir: dir, Before: 2, After: 3})
}

// capturePanic panics with v and returns what Capture saw.
func capturePanic(v any) (p *Panic) {
	defer func() {
		p = Capture(recover(), "argbind/internal/render.capturePanic")
	}()

	panicker(v)

	return nil
}

func panicker(v any) {
	panic(v) // the preview points here
}

func TestFormat_PlainError(t *testing.T) {
	assert.Equal(t, "Error: bad!!!", plain(t).Format(errors.New("bad!!!")))
}

func TestFormat_WrappedError(t *testing.T) {
	err := fmt.Errorf("loading: %w", errors.New("gone"))
	assert.Equal(t, "Error: loading: gone", plain(t).Format(err))
}

func TestFormat_NonErrorValues(t *testing.T) {
	tests := []struct {
		value    any
		expected string
	}{
		{"boom", `Error: Non-error value was thrown: (string) (len=4) "boom"`},
		{42, `Error: Non-error value was thrown: (int) 42`},
		{nil, `Error: Non-error value was thrown: <nil>`},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.value), func(t *testing.T) {
			assert.Equal(t, tt.expected, plain(t).Format(tt.value))
		})
	}
}

func TestFormat_PanicWithPreview(t *testing.T) {
	p := capturePanic(errors.New("kaboom"))
	require.NotNil(t, p)
	require.NotEmpty(t, p.Stack)
	assert.Equal(t, "argbind/internal/render.panicker", p.Stack[0].Function)

	out := plain(t).Format(p)
	lines := strings.Split(out, "\n")

	require.Greater(t, len(lines), 4)
	assert.Equal(t, "Error: kaboom", lines[0])
	assert.Equal(t, "", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "./render_test.go:"), lines[2])
	assert.Contains(t, out, "> |     panic(v) // the preview points here")
	assert.Contains(t, out, "    at argbind/internal/render.panicker (")
	assert.NotContains(t, out, "runtime.gopanic")
	assert.NotContains(t, out, "capturePanic (", "frames from stop onwards are cut")
}

func TestFormat_PanicWithNonError(t *testing.T) {
	p := capturePanic("boom")

	assert.Nil(t, p.Unwrap())
	assert.True(t, IsNonError(NonError{Value: 1}))
	assert.True(t, strings.HasPrefix(plain(t).Format(p), `Error: Non-error value was thrown: (string) (len=4) "boom"`))
}

func TestFormat_PanicUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	p := capturePanic(sentinel)

	assert.ErrorIs(t, p, sentinel)
}

func TestFormat_UnreadableSource(t *testing.T) {
	p := &Panic{
		Value: errors.New("lost"),
		Stack: []Frame{{Function: "main.main", File: filepath.Join(t.TempDir(), "missing.go"), Line: 3}},
	}

	out := plain(t).Format(p)
	assert.True(t, strings.HasPrefix(out, "Error: lost\n    at main.main ("), out)
	assert.NotContains(t, out, "\n\n")
}

func TestDefaultConfig_Dir(t *testing.T) {
	dir, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, dir, DefaultConfig().Dir)
}

func TestDisplayPath(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "src", "app", "main.go")

	// no base directory: the path is shown as is
	assert.Equal(t, abs, New(Config{}).displayPath(abs))

	base := filepath.Join(string(filepath.Separator), "src")
	assert.Equal(t, "./app/main.go", New(Config{Dir: base}).displayPath(abs))
	assert.Equal(t, abs, New(Config{Dir: filepath.Join(base, "other")}).displayPath(abs))
}

func TestFormat_PreviewWindow(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "src.go")

	var src []string
	for i := 1; i <= 12; i++ {
		src = append(src, fmt.Sprintf("line%d", i))
	}

	require.NoError(t, os.WriteFile(file, []byte(strings.Join(src, "\n")), 0o644))

	r := New(Config{Dir: dir, Before: 2, After: 3})
	preview, ok := r.preview(Frame{File: file, Line: 10})
	require.True(t, ok)

	assert.Equal(t, strings.Join([]string{
		"./src.go:10",
		"8    | line8",
		"9    | line9",
		"10 > | line10",
		"11   | line11",
		"12   | line12",
	}, "\n"), preview)

	_, ok = r.preview(Frame{File: file, Line: 40})
	assert.False(t, ok)
}

func TestFormat_Color(t *testing.T) {
	r := New(Config{Color: true})
	out := r.Format(errors.New("red"))

	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "red")
}

func TestTrimStack(t *testing.T) {
	all := []Frame{
		{Function: "app.recoverer.func1"},
		{Function: "runtime.gopanic"},
		{Function: "runtime.panicmem"},
		{Function: "app.broken"},
		{Function: "app.caller"},
		{Function: "app.stop"},
		{Function: "app.outer"},
	}

	got := trimStack(all, "app.stop")
	assert.Equal(t, []Frame{{Function: "app.broken"}, {Function: "app.caller"}}, got)

	// no runtime frames: nothing to skip
	got = trimStack([]Frame{{Function: "a"}, {Function: "b"}}, "")
	assert.Len(t, got, 2)
}
