package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes file to outputPath, creating the parent directory if it
// doesn't exist. An empty outputPath means file.Filename in the current
// directory.
func WriteFile(file *GeneratedFile, outputPath string) error {
	if outputPath == "" {
		outputPath = file.Filename
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", outputPath, err)
	}

	return nil
}
