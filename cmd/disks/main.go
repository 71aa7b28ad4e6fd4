// Command disks runs the alternating disks algorithms from the command line.
//
//	disks -n 4 -a lawnmower
//	disks --pairs 10 --algorithm all --verbose
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lvdisks/disks"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// algorithmAll selects every known algorithm in turn.
const algorithmAll = "all"

var (
	// logger is built in PersistentPreRunE; tests may preset it.
	logger *zap.Logger
)

// options carries the parsed flags of one invocation.
type options struct {
	pairs     int
	algorithm string
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the disks command with its flags bound to a fresh options.
func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "disks",
		Short: "Sort a row of alternating dark/light disks with adjacent swaps",
		Long: `Builds the alternating row D L D L ... of 2n disks, sorts it so that
all light disks come first, and prints the row before and after together
with the number of adjacent swaps performed.

Algorithms: lawnmower, alternate, all.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.pairs, "pairs", "n", 4, "number of light/dark disk pairs (must be > 0)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", disks.Lawnmower.String(),
		"algorithm to run: "+strings.Join(algorithmNames(), ", "))
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every pass at debug level")

	return cmd
}

// run validates opts, sorts the canonical row and reports each result to w.
func run(w io.Writer, opts *options) error {
	if opts.pairs <= 0 {
		return fmt.Errorf("--pairs must be > 0, got %d", opts.pairs)
	}
	algs, err := selectAlgorithms(opts.algorithm)
	if err != nil {
		return err
	}

	before := disks.NewRow(opts.pairs)
	if !before.IsInitialized() {
		return fmt.Errorf("initial row is not alternating: %s", before)
	}

	for _, alg := range algs {
		log := logger.With(zap.Stringer("algorithm", alg), zap.Int("pairs", opts.pairs))
		log.Debug("sorting", zap.Stringer("before", before))

		res, err := disks.Sort(alg, before, disks.WithOnPass(func(pass int, dir disks.Direction, row disks.Row) {
			log.Debug("pass complete",
				zap.Int("pass", pass),
				zap.Stringer("direction", dir),
				zap.Stringer("row", row),
			)
		}))
		if err != nil {
			return err
		}

		after := res.After()
		fmt.Fprintf(w, "algorithm: %s\n", alg)
		fmt.Fprintf(w, "before:    %s\n", before)
		fmt.Fprintf(w, "after:     %s\n", after)
		fmt.Fprintf(w, "swaps:     %d\n", res.SwapCount())
		fmt.Fprintf(w, "sorted:    %t\n", after.IsSorted())

		if !after.IsSorted() {
			log.Error("row not sorted", zap.Stringer("after", after))
			return fmt.Errorf("%s left the row unsorted: %s", alg, after)
		}
		log.Info("sorted", zap.Int("swaps", res.SwapCount()))
	}

	return nil
}

// selectAlgorithms resolves the --algorithm flag.
func selectAlgorithms(name string) ([]disks.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(name), algorithmAll) {
		return disks.Algorithms(), nil
	}
	alg, err := disks.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	return []disks.Algorithm{alg}, nil
}

// algorithmNames lists the accepted --algorithm values.
func algorithmNames() []string {
	names := make([]string, 0, len(disks.Algorithms())+1)
	for _, a := range disks.Algorithms() {
		names = append(names, a.String())
	}

	return append(names, algorithmAll)
}
