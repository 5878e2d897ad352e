//go:build aix || dragonfly || freebsd || (js && wasm) || nacl || linux || netbsd || openbsd || solaris
// +build aix dragonfly freebsd js,wasm nacl linux netbsd openbsd solaris

package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// XDG style: ~/.config/dssparse and ~/.cache/logs/dssparse
func dirName(tag string) string {
	return strings.ToLower(tag)
}

func configFallback(home string) string {
	return filepath.Join(home, ".config")
}

func logBase(home string) string {
	if c, err := os.UserCacheDir(); err == nil {
		return filepath.Join(c, "logs")
	}
	return home
}
