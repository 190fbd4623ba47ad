package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirSource merges every *.json array under a directory into one snapshot.
// Files are read in lexical path order, so record order is stable.
type DirSource struct {
	Path string
}

func (s DirSource) Fetch(ctx context.Context) ([]byte, error) {
	files, err := discoverPackageFiles(s.Path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no package files under %s", s.Path)
	}

	var merged []json.RawMessage
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read packages: %w", err)
		}
		var records []json.RawMessage
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		merged = append(merged, records...)
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("merge packages: %w", err)
	}
	return data, nil
}

func (s DirSource) String() string {
	return s.Path
}

func discoverPackageFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
