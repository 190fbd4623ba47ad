package xdginit

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

func init() {
	// On Darwin (macOS), prefer ~/.config and ~/.local/state for CLI tools
	// instead of ~/Library/Application Support, unless the XDG vars are set
	if runtime.GOOS != "darwin" {
		return
	}
	if os.Getenv("XDG_CONFIG_HOME") == "" {
		xdg.ConfigHome = filepath.Join(xdg.Home, ".config")
	}
	if os.Getenv("XDG_STATE_HOME") == "" {
		xdg.StateHome = filepath.Join(xdg.Home, ".local", "state")
	}
}
