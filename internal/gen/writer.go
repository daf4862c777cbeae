package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes the generated constants file into outputDir, creating the
// directory when needed, and returns the path written.
func WriteFile(file *GeneratedFile, outputDir string) (string, error) {
	path, err := writeInto(outputDir, file.Filename, file.Content)
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", file.Filename, err)
	}

	return path, nil
}

// writeDebugUnformatted keeps a render that go/format rejected next to the
// intended output, under a name the go tool ignores. Best-effort: the caller
// already reports the format error.
func writeDebugUnformatted(outputDir, filename string, content []byte) error {
	if outputDir == "" || filename == "" {
		return nil
	}

	_, err := writeInto(outputDir, strings.TrimSuffix(filename, ".go")+".go.unformatted", content)

	return err
}

func writeInto(dir, name string, content []byte) (string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)

	return path, os.WriteFile(path, content, filePerm)
}
