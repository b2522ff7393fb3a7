package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"cdr.dev/slog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvshape/catalog"
	"github.com/katalvlaran/lvshape/geometry"
	"github.com/katalvlaran/lvshape/internal/xlog"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

type options struct {
	format  string
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "lvshape",
		Short:         "Build validated rectangles and squares",
		Long:          "lvshape constructs shapes from arguments or YAML documents and prints their label and area.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			cmd.SetContext(xlog.Human(cmd.Context(), stderr, opts.verbose))
			return nil
		},
		// No Run — prints help by default.
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.format, "format", "text", "output format: text|json|yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		&cobra.Command{
			Use:   "rectangle WIDTH HEIGHT",
			Short: "Build a rectangle",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := geometry.RectangleOf(parseDimension(args[0]), parseDimension(args[1]))
				if err != nil {
					return err
				}
				return report(cmd, opts.format, []geometry.Shape{r})
			},
		},
		&cobra.Command{
			Use:   "square SIZE",
			Short: "Build a square",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := geometry.SquareOf(parseDimension(args[0]))
				if err != nil {
					return err
				}
				return report(cmd, opts.format, []geometry.Shape{s})
			},
		},
		&cobra.Command{
			Use:   "load FILE",
			Short: "Build every shape listed in a YAML document",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				doc, err := catalog.Load(args[0])
				if err != nil {
					return err
				}
				xlog.Debug(cmd.Context(), "decoded document",
					slog.F("path", args[0]), slog.F("specs", len(doc.Shapes)))

				shapes, err := doc.Build()
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				return report(cmd, opts.format, shapes)
			},
		},
	)

	return root
}

// parseDimension turns a command-line argument into a value for the
// geometry validator. Base-10 integers become int; arguments that are not
// integers are passed through as strings so they fail with KindType.
func parseDimension(arg string) any {
	n, err := strconv.Atoi(arg)
	if err == nil {
		return n
	}
	if !errors.Is(err, strconv.ErrRange) {
		return arg
	}
	// Out of int range: negative stays a range failure, positive an overflow.
	if strings.HasPrefix(arg, "-") {
		return math.MinInt
	}
	return uint64(math.MaxUint64)
}

func report(cmd *cobra.Command, format string, shapes []geometry.Shape) error {
	ctx := cmd.Context()
	defer xlog.Sync(ctx)

	entries, err := catalog.DescribeAll(shapes)
	if err != nil {
		return err
	}
	for _, e := range entries {
		xlog.Debug(ctx, "built shape", slog.F("kind", e.Kind), slog.F("label", e.Label))
	}

	return writeEntries(cmd.OutOrStdout(), format, entries)
}
