// Package cli implements the dssparse command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/dssparse"
	"github.com/npillmayer/dssparse/dssparse/ui/termui"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const version = "0.1 experimental"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dssparse",
	Short: "A tokenizer for DSS command lines with inline math",
	Long: `Welcome to dssparse V0.1 (experimental)

dssparse splits DSS command lines into parameters, substitutes @variables
and evaluates inline math given as quoted RPN expressions.

dssparse is able to run in interactive mode or execute one or more commands in
batch-mode.  If run in interactive mode, it will prompt for user input in a
terminal REPL.

`,
	Run: runDssCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	if rootCmd.Execute() != nil {
		dssparse.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().String("vars", "", "YAML file with predefined variables")
	rootCmd.Flags().StringArrayP("command", "c", nil, "Command line to tokenize (batch mode)")
}

// runDssCmd executes -c command lines, if any, and enters the REPL if there
// have been none or if -i is set.
func runDssCmd(cmd *cobra.Command, args []string) {
	intp := newInterpreter(dssparse.NewSession(), os.Stdout)
	if err := loadVariables(intp.session, dssparse.Configuration); err != nil {
		tracing.Errorf(err.Error())
		dssparse.Exit(1)
	}
	commands, _ := cmd.Flags().GetStringArray("command")
	interactive, _ := cmd.Flags().GetBool("interactive")
	failed := false
	for _, line := range commands {
		tracer().Debugf("batch command %q", line)
		if err := intp.Eval(line); err != nil {
			fmt.Fprintf(os.Stderr, "interpreter error: %s\n", err.Error())
			failed = true
		}
	}
	if len(commands) > 0 && !interactive {
		if failed {
			dssparse.Exit(1)
		}
		return
	}
	runDssCmdIntpr(intp)
}

func runDssCmdIntpr(intp *interpreter) {
	tracing.Infof("dssparse interpreter called")
	dcmd := &dssCmdIntpr{interpreter: intp}
	dcmd.BaseREPL = termui.NewBaseREPL("dssparse", version,
		readline.PcItem("define"),
		readline.PcItem("show",
			readline.PcItem("variables"),
			readline.PcItem("stack"),
		),
		readline.PcItem("calc"),
	)
	dcmd.Interpreter = dcmd
	dcmd.Helper = func(w io.Writer) {
		io.WriteString(w, `
dssparse will interpret the following statements:

  define @name <value>     : define a variable
  show variables           : list all variables
  show stack               : display the inline math register stack
  calc <rpn-expression>    : evaluate inline math, result goes to @result
  <command line>           : split a DSS command line into parameters

`)
	}
	stdout, _ := dcmd.Outputs()
	intp.out = stdout
	dcmd.Prompt(true)
}

type dssCmdIntpr struct {
	*termui.BaseREPL
	*interpreter
}

func (dcmd *dssCmdIntpr) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	if err := dcmd.Eval(command); err != nil {
		_, stderr := dcmd.Outputs()
		fmt.Fprintf(stderr, "interpreter error: %s\n", err.Error())
	}
}
