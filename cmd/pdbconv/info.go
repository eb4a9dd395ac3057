package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/molstruct/pkg/pdbconv"
	"github.com/spf13/cobra"
)

var noColor bool

var infoCmd = &cobra.Command{
	Use:   "info file...",
	Short: "info summarises pdb files.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		nbad := 0
		for i, fname := range args {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if len(args) > 1 {
				fmt.Fprintln(w, fname)
			}
			if err := pdbconv.InfoFile(fname, w, !noColor); err != nil {
				fmt.Fprintln(os.Stderr, err)
				nbad++
			}
		}
		if nbad > 0 {
			return errFailed{nbad}
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVar(&noColor, "no-color", false, "plain output")
	rootCmd.AddCommand(infoCmd)
}
