package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string // searched for files given by plain name, e.g. --vars
	LogDir() string    // holds trace files given by plain name, e.g. --logfile
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string // "" if unknown
}

var _ AppPaths = appPaths{}

func appHome(appTag string) (appPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return appPaths{tag: appTag, home: home}, err
}

func (a appPaths) ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		if a.home == "" {
			return ""
		}
		base = configFallback(a.home)
	}
	return filepath.Join(base, dirName(a.tag))
}

func (a appPaths) LogDir() string {
	base := logBase(a.home)
	if base == "" {
		return ""
	}
	return filepath.Join(base, dirName(a.tag))
}

// openAppFile opens a file by name. A plain file name not present in the
// working directory is searched for in the configuration directory of paths.
func openAppFile(name string, paths AppPaths) (*os.File, error) {
	f, err := os.Open(name)
	if err == nil || !os.IsNotExist(err) || filepath.Base(name) != name || paths == nil {
		return f, err
	}
	if dir := paths.ConfigDir(); dir != "" {
		if cf, cerr := os.Open(filepath.Join(dir, name)); cerr == nil {
			return cf, nil
		}
	}
	return nil, err
}

// traceDestination turns a --logfile value into a trace destination URL.
// URLs and the literals stdout/stderr are kept, absolute paths become file
// URLs, and plain names are placed into the log directory of paths.
func traceDestination(logname string, paths AppPaths) string {
	switch {
	case logname == "", strings.EqualFold(logname, "stderr"), strings.EqualFold(logname, "stdout"):
		return logname
	case strings.Contains(logname, ":/"):
		return logname
	case filepath.IsAbs(logname):
		return "file://" + filepath.ToSlash(logname)
	case filepath.Base(logname) == logname && paths != nil && paths.LogDir() != "":
		return "file://" + filepath.ToSlash(filepath.Join(paths.LogDir(), logname))
	}
	abs, err := filepath.Abs(logname)
	if err != nil {
		return "file://" + filepath.ToSlash(logname)
	}
	return "file://" + filepath.ToSlash(abs)
}
