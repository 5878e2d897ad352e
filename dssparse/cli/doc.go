package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'dss.cli'
func tracer() tracing.Trace {
	return tracing.Select("dss.cli")
}
