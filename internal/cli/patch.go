package cli

import (
	"errors"
	"fmt"

	"github.com/dshills/cmpatch/internal/cmtool"
	"github.com/dshills/cmpatch/internal/config"
	"github.com/dshills/cmpatch/internal/logging"
	"github.com/dshills/cmpatch/internal/objspec"
	"github.com/dshills/cmpatch/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) runPatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.flagConfig, a.buildOverrides(cmd.Flags()))
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		a.exitCode = ExitFailure
		return nil
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		a.exitCode = ExitFailure
		return nil
	}
	closeLog, err := logging.Init(cfg.LogFile, level)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		a.exitCode = ExitFailure
		return nil
	}
	defer closeLog()
	log := logging.L()

	req, err := objspec.NewRequest(args, a.flagCompare)
	if err != nil {
		return err
	}
	if err := objspec.Validate(req, cfg.StrictDestination); err != nil {
		fmt.Fprintln(a.stderr, err.Error())
		if objspec.IsFatal(err) {
			a.exitCode = ExitFailure
			return nil
		}
		log.Warn("continuing with unvalidated destination", "second", req.Second)
	}

	split, err := output.GetSplitter(cfg.Split)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		a.exitCode = ExitFailure
		return nil
	}
	if req.Compare != objspec.CompareUnset && !cfg.ForwardCompare {
		log.Debug("compare mode accepted but not forwarded", "compare", req.Compare)
	}

	opts := cmtool.Options{Tool: cfg.Tool, ForwardCompare: cfg.ForwardCompare}
	done := logging.Op("cm diff", "first", req.First, "second", req.Second, "tool", cfg.Tool)
	out, err := cmtool.Diff(cmd.Context(), a.runner, req, opts)
	if err != nil {
		done(err)
		var te *cmtool.ToolError
		detail := err.Error()
		if errors.As(err, &te) {
			detail = te.Output
		}
		_ = output.WriteFailure(a.stderr, detail)
		a.exitCode = ExitFailure
		return nil
	}

	records, skipped := cmtool.ParseRecords(out)
	log.Debug("parsed cm output", "records", len(records), "skipped", skipped)

	n, err := output.WritePatch(a.stdout, out, split)
	done(err, "lines", n)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: writing patch: %v\n", err)
		a.exitCode = ExitFailure
		return nil
	}
	a.exitCode = ExitSuccess
	return nil
}
