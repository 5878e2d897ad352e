// Command dssparse tokenizes DSS command lines, interactively or in batch mode.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/dssparse"
	"github.com/npillmayer/dssparse/dssparse/cli"
)

func main() {
	var stop context.CancelFunc
	dssparse.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	cli.Execute()
	stop()
	dssparse.Exit(0) // closes the trace file, if any
}
