package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/intervals"
	"github.com/npillmayer/intervals/formatter"
	"github.com/npillmayer/intervals/intervalfile"
	"github.com/spf13/cobra"
)

// Sentinel errors for ivq commands.
var (
	ErrNegativeLength = errors.New("query length must not be negative")
	ErrInvalidTree    = errors.New("tree is invalid")
)

func (a *app) queryCmd() *cobra.Command {
	var relation string

	var start, length int

	var exists, chart bool

	cmd := &cobra.Command{
		Use:   "query <file>",
		Short: "Find records related to a query interval",
		Long: `Find all records standing in a relation to the query interval [start, start+length).

Relations:
  overlaps    record and query share at least one position
  intersects  record and query overlap or touch
  contains    record covers the query completely

Examples:
  ivq query records.txt -s 10 -l 5                 # records overlapping [10,15)
  ivq query records.txt -r contains -s 10 -l 0     # records containing position 10
  ivq query records.txt -r intersects -s 3 -l 1 -e # is there any such record?`,
		Args: cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if relation == "" {
				relation = a.config.Relation
			}

			rel, err := intervals.ParseRelation(relation)
			if err != nil {
				return err
			}

			if length < 0 {
				return ErrNegativeLength
			}

			return a.runQuery(args[0], rel, start, length, exists, chart, cobraCmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&relation, "relation", "r", "", "overlaps, intersects or contains (default from config)")
	cmd.Flags().IntVarP(&start, "start", "s", 0, "start of the query interval")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "length of the query interval")
	cmd.Flags().BoolVarP(&exists, "exists", "e", false, "only report whether a matching record exists")
	cmd.Flags().BoolVarP(&chart, "chart", "c", false, "print a chart of all records, highlighting matches")

	return cmd
}

func (a *app) runQuery(file string, rel intervals.Relation, start, length int,
	exists, chart bool, writer io.Writer) error {
	tree, err := intervalfile.Load(file)
	if err != nil {
		return err
	}

	if exists {
		_, err = fmt.Fprintln(writer, tree.Any(rel, start, length))
		return err
	}

	hits := tree.Query(rel, start, length)
	if chart {
		matched := make(map[intervalfile.Record]bool, len(hits))
		for _, rec := range hits {
			matched[rec] = true
		}

		return a.printChart(tree, writer, func(rec intervalfile.Record) bool {
			return matched[rec]
		})
	}

	for _, rec := range hits {
		if _, err := fmt.Fprintln(writer, rec); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a chart of all records",
		Long: `Print all records as a bar chart, one row per record in order of start position.

Chart width and colors may be configured in the config file (chart.line_width,
chart.label_width, chart.color) or with environment variables IVQ_CHART_*.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			tree, err := intervalfile.Load(args[0])
			if err != nil {
				return err
			}

			return a.printChart(tree, cobraCmd.OutOrStdout(), nil)
		},
	}
}

func (a *app) printChart(tree *intervalfile.Tree, writer io.Writer, hit func(intervalfile.Record) bool) error {
	cfg := &formatter.Config{
		LineWidth:  a.config.Chart.LineWidth,
		LabelWidth: a.config.Chart.LabelWidth,
	}
	if cfg.LineWidth == 0 {
		cfg.LineWidth = formatter.ConfigFromTerminal().LineWidth
	}

	if !a.config.Chart.Color {
		color.NoColor = true
	}

	return formatter.Output(tree, writer, cfg, formatter.NewConsoleFixedWidthFormat(nil),
		formatter.Chart[intervalfile.Record]{
			Label: recordLabel,
			Hit:   hit,
		})
}

func recordLabel(rec intervalfile.Record) string {
	if rec.Label == "" {
		return rec.String()
	}

	return rec.Label
}

func (a *app) dotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <file>",
		Short: "Print the tree in Graphviz DOT format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			tree, err := intervalfile.Load(args[0])
			if err != nil {
				return err
			}

			return intervals.Tree2Dot(tree, cobraCmd.OutOrStdout())
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Verify the structural invariants of the tree built from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			tree, err := intervalfile.Load(args[0])
			if err != nil {
				return err
			}

			if err := tree.Check(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidTree, err)
			}

			_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "%s: %d records, height %d, ok\n",
				args[0], tree.Len(), tree.Height())

			return err
		},
	}
}
