package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted leaves the template output next to the intended file
// so a gofmt failure can be inspected. Best effort.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
