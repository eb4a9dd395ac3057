package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/molstruct/pkg/common"
	"github.com/andrew-torda/molstruct/pkg/envs"
	"github.com/andrew-torda/molstruct/pkg/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	logWhere string
	logLevel string
)

// errFailed is for when the command has already said what went wrong.
type errFailed struct{ n int }

func (e errFailed) Error() string { return fmt.Sprintf("%d failed", e.n) }

// errUsage is a command line that could not be understood, like an
// unknown flag.
type errUsage struct{ error }

var rootCmd = &cobra.Command{
	Use:           "pdbconv",
	Short:         "pdbconv reads, summarises and rewrites pdb files.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init(logWhere, logLevel)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logWhere, "log", envs.LogWhere, `where to log: "stdout" or a file name`)
	pf.StringVar(&logLevel, "log-level", envs.LogLevel, "log level, like debug or warn")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errUsage{err}
	})
}

// execute runs the command line and gives back the exit status.
func execute() int {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return common.ExitSuccess
	}
	if _, ok := err.(errFailed); !ok {
		fmt.Fprintln(os.Stderr, err)
	}
	var ue errUsage
	if errors.As(err, &ue) || (cmd.Args != nil && cmd.Args(cmd, cmd.Flags().Args()) != nil) {
		fmt.Fprintln(os.Stderr, cmd.UsageString())
		return common.ExitUsageError
	}
	return common.ExitFailure
}
