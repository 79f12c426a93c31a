// Package main provides the ivq CLI entry point.
//
// ivq loads interval records from a file into an interval tree and queries it:
//
//	ivq query records.txt --relation contains --start 10 --length 5
//	ivq dump records.yaml
//	ivq dot records.txt | dot -Tsvg > tree.svg
//	ivq check records.txt
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// app holds state shared by all commands.
type app struct {
	cfgFile string
	verbose bool
	config  *Config
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "ivq",
		Short: "Query intervals stored in files",
		Long: `ivq loads interval records into an interval tree and queries them.

Records are read from files in line format (start length [label]) or,
for files ending in .yaml or .yml, from a YAML sequence of records.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.ivq.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "trace at level Info")

	rootCmd.AddCommand(a.queryCmd())
	rootCmd.AddCommand(a.dumpCmd())
	rootCmd.AddCommand(a.dotCmd())
	rootCmd.AddCommand(a.checkCmd())

	return rootCmd
}

// setup loads the configuration and connects tracing to stderr.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	a.config = cfg

	level := tracing.TraceLevelFromString(cfg.TraceLevel)
	if a.verbose && level < tracing.LevelInfo {
		level = tracing.LevelInfo
	}
	adapter := func() tracing.Trace {
		t := gologadapter.New()
		t.SetOutput(cmd.ErrOrStderr())
		t.SetTraceLevel(level)
		return t
	}
	gtrace.CoreTracer = adapter()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(adapter))

	return nil
}
