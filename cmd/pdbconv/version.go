package main

import (
	"fmt"

	"github.com/andrew-torda/molstruct/pkg/pdbconv"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version shows the pdbconv version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pdbconv", pdbconv.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
