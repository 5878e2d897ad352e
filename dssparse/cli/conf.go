package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/dssparse"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/appender"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate dssparse configuration with an application-key of 'DSSPARSE' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "DSSPARSE", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		dssparse.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		dssparse.Exit(1)
	}
	dssparse.Configuration = k // push the configuration to app-global scope
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		konf.Set("tracing.destination", traceDestination(logname, locateLogFile()))
	}
	return err
}

// traceKeys lists the tracers of this application.
var traceKeys = []string{"dss.parser", "dss.rpn", "dss.variables", "dss.cli"}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	tracing.Infof("searching for trace redirection")
	dest := konf.GetString("tracing.destination")
	if dest != "" {
		dest = traceDestination(dest, locateLogFile())
		// all tracers share one handle, dssparse.Tracefile
		konf.Set("tracing.destination", "")
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	if dest != "" {
		w, err := openTracefile(dest)
		if err != nil {
			return fmt.Errorf("re-directing trace output failed: %w", err)
		}
		trace2go.Root().SetOutput(w)
		for _, key := range traceKeys {
			tracing.Select(key).SetOutput(w)
		}
	}
	tracing.Infof(rootCmd.Long)
	return nil
}

// openTracefile opens a trace destination. Files are published as
// dssparse.Tracefile, to be closed by dssparse.Exit. Stdout and stderr are
// returned as they are.
func openTracefile(dest string) (io.Writer, error) {
	w, err := appender.Destination(dest)
	if err != nil {
		return nil, err
	}
	if w != os.Stdout && w != os.Stderr {
		if dssparse.Tracefile != nil {
			dssparse.Tracefile.Close()
		}
		dssparse.Tracefile = w
	}
	return w, nil
}

func locateLogFile() AppPaths {
	paths, err := DefaultAppPaths("DSSPARSE")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}

// varsKey names a YAML file with predefined variables.
const varsKey = "vars"

// loadVariables predefines the session's variables from the file configured
// with key 'vars'. Relative names not found in the working directory are
// looked up in the application's configuration directory.
func loadVariables(session *dssparse.Session, k *koanf.Koanf) error {
	if k == nil || k.String(varsKey) == "" {
		return nil
	}
	paths, err := DefaultAppPaths("DSSPARSE")
	if err != nil {
		paths = nil
	}
	f, err := openAppFile(k.String(varsKey), paths)
	if err != nil {
		return fmt.Errorf("cannot open variables file: %w", err)
	}
	defer f.Close()
	n, err := session.Vars.Load(f)
	if err != nil {
		return err
	}
	tracer().Infof("predefined %d variables from %s", n, f.Name())
	return nil
}
