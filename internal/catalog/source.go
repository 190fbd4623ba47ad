package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/memory"
)

const (
	DefaultLocation = "data/packages.json"
	gitPrefix       = "git+"
	defaultTimeout  = 30 * time.Second
)

// Source is where the snapshot is read from. Fetch is called once per load.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// NewSource picks a source from a location string:
//
//	data/packages.json                      local file
//	data/                                   every *.json file in a directory
//	https://example.com/packages.json       single HTTP GET
//	git+https://host/repo.git#data/x.json   in-memory clone, file at path
func NewSource(location string) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultLocation
	}

	switch {
	case strings.HasPrefix(location, gitPrefix):
		repo, path, _ := strings.Cut(strings.TrimPrefix(location, gitPrefix), "#")
		if repo == "" {
			return nil, fmt.Errorf("git source %q has no repository", location)
		}
		if path == "" {
			path = DefaultLocation
		}
		return GitSource{URL: repo, Path: path}, nil
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return HTTPSource{URL: location}, nil
	case isDir(location):
		return DirSource{Path: location}, nil
	default:
		return FileSource{Path: location}, nil
	}
}

type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read packages: %w", err)
	}
	return data, nil
}

func (s FileSource) String() string {
	return s.Path
}

type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch packages: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch packages: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}

func (s HTTPSource) String() string {
	return s.URL
}

// GitSource clones a repository into memory and reads one file from the
// default branch. Nothing is written to disk.
type GitSource struct {
	URL  string
	Path string
}

func (s GitSource) Fetch(ctx context.Context) ([]byte, error) {
	fs := memfs.New()
	_, err := git.CloneContext(ctx, memory.NewStorage(), fs, &git.CloneOptions{
		URL:          s.URL,
		SingleBranch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("clone %s: %w", s.URL, err)
	}

	f, err := fs.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return data, nil
}

func (s GitSource) String() string {
	return gitPrefix + s.URL + "#" + s.Path
}
