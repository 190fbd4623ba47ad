// Package testutil provides fixtures for catalog snapshots and config homes.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// SamplePackagesJSON is a small snapshot covering every region/budget pairing
// the tests rely on. Lisbon carries a numeric days value and no image.
const SamplePackagesJSON = `[
  {"id": 1, "title": "Bali Escape", "region": "Asia", "budget": "low", "price": 899, "days": "7 Days", "image": "https://img.test/bali.jpg", "tags": ["Beach", "Culture"]},
  {"id": 2, "title": "Paris Romance", "region": "Europe", "budget": "high", "price": 2499, "days": "5 Days", "image": "https://img.test/paris.jpg", "tags": ["City"]},
  {"id": 3, "title": "Kyoto Temples", "region": "Asia", "budget": "mid", "price": 1599.5, "days": "6 Days", "image": "https://img.test/kyoto.jpg", "tags": ["Culture"]},
  {"id": 4, "title": "Lisbon Weekend", "region": "Europe", "budget": "low", "price": 599, "days": 3, "image": ""}
]`

// WriteCatalogFile writes content to data/packages.json under dir and returns the path.
func WriteCatalogFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "data", "packages.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}

// CreateCatalogRepo creates a git repository with content committed at relPath.
func CreateCatalogRepo(t *testing.T, relPath, content string) string {
	t.Helper()
	repoPath := t.TempDir()

	repo, err := git.PlainInit(repoPath, false)
	if err != nil {
		t.Fatalf("failed to init git repo: %v", err)
	}

	target := filepath.Join(repoPath, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create catalog dir: %v", err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}
	if _, err := wt.Add(relPath); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}
	_, err = wt.Commit("Add catalog", &git.CommitOptions{
		Author: &object.Signature{Name: "tripdeck", Email: "tests@tripdeck.test", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}

	return repoPath
}

// SetupConfigHome points the XDG config and state homes at a temp dir for the
// duration of the test and returns it.
func SetupConfigHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	originalConfigHome := xdg.ConfigHome
	originalStateHome := xdg.StateHome
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))

	// xdg reads env vars at init time
	xdg.ConfigHome = filepath.Join(tmpDir, "config")
	xdg.StateHome = filepath.Join(tmpDir, "state")

	t.Cleanup(func() {
		xdg.ConfigHome = originalConfigHome
		xdg.StateHome = originalStateHome
	})
	return tmpDir
}
