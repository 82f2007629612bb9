package cmtool

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/cmpatch/internal/objspec"
)

// DefaultTool is the cm client binary, resolved on PATH.
const DefaultTool = "cm"

// Separator joins the fields of a diff record. It is chosen to be unlikely
// inside paths or type names.
const Separator = "#_#"

// Fields are the record placeholders in output order.
var Fields = []string{
	"{status}",
	"{path}",
	"{revid}",
	"{srccmpath}",
	"{dstcmpath}",
	"{type}",
	"{date}",
}

// DateFormat is the .NET-style pattern cm uses for {date}.
const DateFormat = "yyyy-MM-dd'T'HH:mm:ss"

var (
	// FormatArg is the --format argument passed to cm diff.
	FormatArg = "--format=" + strings.Join(Fields, Separator)
	// DateFormatArg is the --dateformat argument passed to cm diff.
	DateFormatArg = "--dateformat=" + DateFormat
)

// Options controls how the cm invocation is built.
type Options struct {
	// Tool is the cm binary name or path. Empty means DefaultTool.
	Tool string
	// ForwardCompare appends --compare=<mode> when the request has one.
	ForwardCompare bool
}

// ToolError is returned when cm exits with a non-zero status.
type ToolError struct {
	ExitCode int
	Output   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("cm diff exited with status %d", e.ExitCode)
}

// Command returns the full argument vector, tool name first.
func Command(req objspec.Request, opts Options) []string {
	tool := opts.Tool
	if tool == "" {
		tool = DefaultTool
	}
	argv := []string{tool, "diff", FormatArg, DateFormatArg}
	if opts.ForwardCompare && req.Compare != objspec.CompareUnset {
		argv = append(argv, "--compare="+string(req.Compare))
	}
	argv = append(argv, req.First.String())
	if req.HasSecond {
		argv = append(argv, req.Second.String())
	}
	return argv
}

// Diff runs cm diff for req and returns its combined output.
func Diff(ctx context.Context, r Runner, req objspec.Request, opts Options) (string, error) {
	argv := Command(req, opts)
	out, code, err := r.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		return out, fmt.Errorf("running %s: %w", argv[0], err)
	}
	if code != 0 {
		return out, &ToolError{ExitCode: code, Output: out}
	}
	return out, nil
}
