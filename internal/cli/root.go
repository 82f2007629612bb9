package cli

import (
	"context"
	"io"
	"os"

	"github.com/dshills/cmpatch/internal/cmtool"
	"github.com/dshills/cmpatch/internal/objspec"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsageError = 2
)

// app holds the state of a single invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	runner cmtool.Runner

	// exitCode is set by the command handler to control the process exit code.
	exitCode int

	flagCompare        objspec.CompareMode
	flagTool           string
	flagSplit          string
	flagForwardCompare bool
	flagStrict         bool
	flagConfig         string
	flagLogLevel       string
}

// Run executes the root command against the real cm client and returns an
// exit code.
func Run() int {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, cmtool.ExecRunner{})
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, runner cmtool.Runner) int {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		runner: runner,
	}
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return a.exitCode
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmpatch <first> [<second>]",
		Short: "Create a patch from Plastic SCM changesets or branches",
		Long: `cmpatch runs "cm diff" with a structured record format and prints every
record prefixed with "[-]: ".

<first> is the changeset or branch to diff if it is the only argument. If
<second> is given, <first> must be the source changeset and <second> the
destination changeset.`,
		Example: `  cmpatch br:/main/task001
  cmpatch cs:1200
  cmpatch cs:1200 cs:1250 --compare eol`,
		Version:           version,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: completeSpecs,
		RunE:              a.runPatch,
	}
	a.bindFlags(cmd.Flags())
	_ = cmd.RegisterFlagCompletionFunc("compare", completeCompare)
	_ = cmd.RegisterFlagCompletionFunc("split", completeSplit)
	return cmd
}

func completeSpecs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return []string{objspec.BranchPrefix, objspec.ChangesetPrefix}, cobra.ShellCompDirectiveNoSpace
	case 1:
		return []string{objspec.ChangesetPrefix}, cobra.ShellCompDirectiveNoSpace
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

func completeCompare(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(objspec.CompareModes))
	for i, m := range objspec.CompareModes {
		names[i] = string(m)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func completeSplit(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"fields", "lines"}, cobra.ShellCompDirectiveNoFileComp
}
