package main

import (
	"github.com/andrew-torda/molstruct/pkg/pdbconv"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "convert reads a pdb file and writes it out again.",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var infile, outfile string
		if len(args) > 0 {
			infile = args[0]
		}
		if len(args) > 1 {
			outfile = args[1]
		}
		return pdbconv.Convert(infile, outfile)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
