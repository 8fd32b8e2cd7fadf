package options

import (
	"path/filepath"
)

// Path is an option value of kind path: a cleaned absolute filesystem path.
type Path string

// ResolvePath joins raw onto dir unless raw is already absolute.
func ResolvePath(dir, raw string) Path {
	if filepath.IsAbs(raw) {
		return Path(filepath.Clean(raw))
	}

	return Path(filepath.Join(dir, raw))
}

func (p Path) String() string { return string(p) }

// Base returns the last element of the path.
func (p Path) Base() string { return filepath.Base(string(p)) }

// Dir returns all but the last element of the path.
func (p Path) Dir() Path { return Path(filepath.Dir(string(p))) }

// Rel returns the path relative to base, falling back to the absolute path.
func (p Path) Rel(base string) string {
	rel, err := filepath.Rel(base, string(p))
	if err != nil {
		return string(p)
	}

	return rel
}
