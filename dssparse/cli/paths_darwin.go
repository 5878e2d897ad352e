package cli

import "path/filepath"

// ~/Library/Application Support/DSSPARSE and ~/Library/Logs/DSSPARSE
func dirName(tag string) string {
	return tag
}

func configFallback(home string) string {
	return filepath.Join(home, "Library", "Application Support")
}

func logBase(home string) string {
	if home == "" {
		return ""
	}
	return filepath.Join(home, "Library", "Logs")
}
