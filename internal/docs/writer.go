package docs

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteArtifact creates parent directories and persists content at path.
// Existing files are overwritten.
func WriteArtifact(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
