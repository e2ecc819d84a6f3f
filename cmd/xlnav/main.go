// Package main provides the xlnav command, which applies viewport
// navigations to a selection and prints the result.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajack/xlref"
)

type options struct {
	selection     string
	navigations   string
	workbook      string
	sheet         string
	hiddenColumns string
	hiddenRows    string
	compact       bool
	jsonOutput    bool
	verbose       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "xlnav",
		Short: "Apply viewport navigations to a spreadsheet selection",
		Long: `xlnav moves or extends a selection the way arrow and shift-arrow keys do,
skipping hidden columns and rows taken from a workbook or from expressions.

Examples:
  xlnav -s B2 -n "right column,extend-down row"
  xlnav -s "B2:D4 top-left" -n "extend-left column" --hidden-columns "index == 3"
  xlnav -w report.xlsx -s Totals -n "down 100px" --json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.selection, "selection", "s", "A1", `Starting selection with optional anchor, e.g. "B2:C3 top-left"`)
	rootCmd.Flags().StringVarP(&opts.navigations, "navigations", "n", "", `Comma separated navigations, e.g. "right column,extend-down row"`)
	rootCmd.Flags().StringVarP(&opts.workbook, "workbook", "w", "", "xlsx workbook supplying hidden columns/rows, sizes and names")
	rootCmd.Flags().StringVar(&opts.sheet, "sheet", "Sheet1", "Worksheet to read from the workbook")
	rootCmd.Flags().StringVar(&opts.hiddenColumns, "hidden-columns", "", `Expression over index and name hiding columns, e.g. "index in [3, 4]"`)
	rootCmd.Flags().StringVar(&opts.hiddenRows, "hidden-rows", "", `Expression over index hiding rows, e.g. "index % 2 == 0"`)
	rootCmd.Flags().BoolVar(&opts.compact, "compact", false, "Compact the navigations before applying them")
	rootCmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the result as JSON")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging")
	return rootCmd
}

// result is the JSON form of a navigated selection.
type result struct {
	Selection   string                    `json:"selection"`
	Anchor      xlref.ViewportAnchor      `json:"anchor"`
	Navigations xlref.ViewportNavigations `json:"navigations"`
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	start, err := xlref.ParseViewportSelection(opts.selection)
	if err != nil {
		return fmt.Errorf("invalid selection: %w", err)
	}
	navigations, err := xlref.ParseViewportNavigations(opts.navigations)
	if err != nil {
		return fmt.Errorf("invalid navigations: %w", err)
	}
	if opts.compact {
		navigations = navigations.Compact()
	}

	ctx, closeFn, err := navigationContext(opts)
	if err != nil {
		return err
	}
	defer closeFn()

	navigator := xlref.NewNavigator(ctx, xlref.WithLogger(log.StandardLogger()))
	end := navigator.Navigate(start, navigations...)

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result{
			Selection:   end.Selection().String(),
			Anchor:      end.Anchor(),
			Navigations: navigations,
		})
	}
	if opts.compact {
		fmt.Fprintln(out, "navigations:", navigations)
	}
	fmt.Fprintln(out, end)
	return nil
}

// navigationContext reads the workbook when one is given, otherwise builds
// a grid from the hidden column and row expressions.
func navigationContext(opts *options) (xlref.NavigationContext, func(), error) {
	if opts.workbook != "" {
		if opts.hiddenColumns != "" || opts.hiddenRows != "" {
			log.Warn("hidden column and row expressions are ignored with --workbook")
		}
		ctx, f, err := xlref.OpenSheetContext(opts.workbook, opts.sheet)
		if err != nil {
			return nil, nil, err
		}
		log.WithFields(log.Fields{
			"workbook": opts.workbook,
			"sheet":    opts.sheet,
			"labels":   len(ctx.Labels().All()),
		}).Debug("workbook loaded")
		return ctx, func() { f.Close() }, nil
	}

	grid := xlref.Grid{}
	if opts.hiddenColumns != "" {
		p, err := xlref.CompileColumnPredicate(opts.hiddenColumns)
		if err != nil {
			return nil, nil, err
		}
		grid.ColumnHidden = p
	}
	if opts.hiddenRows != "" {
		p, err := xlref.CompileRowPredicate(opts.hiddenRows)
		if err != nil {
			return nil, nil, err
		}
		grid.RowHidden = p
	}
	return grid, func() {}, nil
}
