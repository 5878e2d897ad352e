package cli

import (
	"os"
	"path/filepath"
)

// %AppData%\DSSPARSE and %LocalAppData%\Logs\DSSPARSE
func dirName(tag string) string {
	return tag
}

func configFallback(home string) string {
	return home
}

func logBase(home string) string {
	if c, err := os.UserCacheDir(); err == nil {
		return filepath.Join(c, "Logs")
	}
	return home
}
