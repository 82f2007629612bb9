package cli

import (
	"strconv"

	"github.com/spf13/pflag"
)

func (a *app) bindFlags(fs *pflag.FlagSet) {
	fs.Var(&a.flagCompare, "compare", "Select what blank characters to recognise (none, all, spaces, eol)")
	fs.StringVar(&a.flagTool, "tool", "", "cm client binary (default \"cm\")")
	fs.StringVar(&a.flagSplit, "split", "", "Output tokenization: fields (split on whitespace) or lines")
	fs.BoolVar(&a.flagForwardCompare, "forward-compare", false, "Pass --compare through to cm diff")
	fs.BoolVar(&a.flagStrict, "strict", false, "Stop on an invalid destination spec instead of continuing")
	fs.StringVar(&a.flagConfig, "config", "", "Config file path (default $XDG_CONFIG_HOME/cmpatch/config.json)")
	fs.StringVar(&a.flagLogLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
}

// buildOverrides returns config overrides for the flags set on the command line.
func (a *app) buildOverrides(fs *pflag.FlagSet) map[string]string {
	m := make(map[string]string)
	if fs.Changed("tool") {
		m["tool"] = a.flagTool
	}
	if fs.Changed("split") {
		m["split"] = a.flagSplit
	}
	if fs.Changed("forward-compare") {
		m["forwardCompare"] = strconv.FormatBool(a.flagForwardCompare)
	}
	if fs.Changed("strict") {
		m["strictDestination"] = strconv.FormatBool(a.flagStrict)
	}
	if fs.Changed("log-level") {
		m["logLevel"] = a.flagLogLevel
	}
	return m
}
