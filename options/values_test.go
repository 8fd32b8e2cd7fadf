package options_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"argbind/options"
)

func ExampleFlagName() {
	fmt.Println(options.FlagName("v"))
	fmt.Println(options.FlagName("inputPath"))
	fmt.Println(options.FlagName("ayeBeeCeeDee"))
	// Output:
	// -v
	// --input-path
	// --aye-bee-cee-dee
}

func TestValues_Accessors(t *testing.T) {
	t.Parallel()

	v := options.Values{
		"name":  "world",
		"times": 3.0,
		"count": 4,
		"loud":  true,
		"in":    options.Path("/tmp/in.txt"),
		"gone":  nil,
	}

	assert.Equal(t, "world", v.String("name"))
	assert.InDelta(t, 3.0, v.Number("times"), 0)
	assert.InDelta(t, 4.0, v.Number("count"), 0)
	assert.True(t, v.Bool("loud"))
	assert.Equal(t, options.Path("/tmp/in.txt"), v.Path("in"))

	_, ok := v.LookupString("gone")
	assert.False(t, ok)
	assert.False(t, v.Has("gone"))
	assert.False(t, v.Has("missing"))
	assert.True(t, v.Has("loud"))

	// wrong kind reads as absent
	_, ok = v.LookupNumber("name")
	assert.False(t, ok)
	assert.Equal(t, "", v.String("times"))
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	dir := filepath.FromSlash("/work/dir")

	assert.Equal(t, options.Path(filepath.Join(dir, "myfile.txt")), options.ResolvePath(dir, "myfile.txt"))
	assert.Equal(t, options.Path(filepath.Join(dir, "b")), options.ResolvePath(dir, "a/../b"))

	abs := filepath.FromSlash("/etc/hosts")
	if filepath.IsAbs(abs) {
		assert.Equal(t, options.Path(abs), options.ResolvePath(dir, abs))
	}

	p := options.ResolvePath(dir, "sub/file.go")
	assert.Equal(t, "file.go", p.Base())
	assert.Equal(t, filepath.Join("sub", "file.go"), p.Rel(dir))
}

func TestSchema_Lookup(t *testing.T) {
	t.Parallel()

	s := options.Schema{{Name: "a"}, {Name: "b"}}
	assert.Equal(t, []string{"a", "b"}, s.Names())

	_, ok := s.Lookup("c")
	assert.False(t, ok)
}
