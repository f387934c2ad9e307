package docs

import (
	"bufio"
	"bytes"
	"context"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// skipDirs contains directory names excluded from scanning.
var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"build":        true,
	"dist":         true,
	"target":       true,
}

// ListSources returns the Java source files to process, as paths relative to
// dir. In changed-only mode the list comes from git; otherwise the whole
// tree is walked.
func ListSources(ctx context.Context, dir string, changedOnly bool) ([]string, error) {
	if changedOnly {
		return changedFiles(ctx, dir)
	}
	return allJavaFiles(dir)
}

// allJavaFiles walks dir collecting every .java file outside skipDirs.
func allJavaFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("eldocs scanner: skipping path %q: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".java" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	return paths, err
}

// changedFiles runs "git diff --name-only HEAD~1 HEAD" in dir and returns
// the .java files that still exist. Requires dir to be inside a git
// repository with at least two commits.
func changedFiles(ctx context.Context, dir string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--name-only", "HEAD~1", "HEAD")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	var paths []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasSuffix(line, ".java") {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, line)); err != nil {
			continue // deleted in the last commit
		}
		paths = append(paths, filepath.FromSlash(line))
	}
	return paths, scanner.Err()
}
