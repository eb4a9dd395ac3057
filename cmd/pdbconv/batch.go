package main

import (
	"os"

	"github.com/andrew-torda/molstruct/pkg/envs"
	"github.com/andrew-torda/molstruct/pkg/pdbconv"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	outDir   string
	nWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch -o outdir file...",
	Short: "batch converts many files at once.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return errors.Wrap(err, "output directory")
		}
		results := pdbconv.Batch(args, outDir, nWorkers)
		for _, r := range results {
			if r.Err != nil {
				color.New(color.FgRed).Fprintf(os.Stderr, "%s: %v\n", r.In, r.Err)
			}
		}
		n := pdbconv.NFailed(results)
		color.Green("%d of %d files converted", len(results)-n, len(results))
		if n > 0 {
			return errFailed{n}
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&outDir, "outdir", "o", ".", "directory for output files")
	batchCmd.Flags().IntVarP(&nWorkers, "jobs", "j", envs.Workers, "files to convert at once")
	rootCmd.AddCommand(batchCmd)
}
