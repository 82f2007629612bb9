package output

import (
	"fmt"
	"io"
	"strings"
)

// Prefix marks every emitted patch line.
const Prefix = "[-]: "

// FailureMessage is printed to stderr when cm fails.
const FailureMessage = "Unable to build patch contents!"

// Splitter cuts captured cm output into the tokens to emit.
type Splitter func(out string) []string

// Splitter names accepted by GetSplitter.
const (
	SplitModeFields = "fields"
	SplitModeLines  = "lines"
)

// SplitFields trims out and splits it on any whitespace. A record whose
// fields contain spaces is emitted as several tokens.
func SplitFields(out string) []string {
	return strings.Fields(out)
}

// SplitLines trims out and splits it on line breaks, dropping blank lines.
func SplitLines(out string) []string {
	var tokens []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		tokens = append(tokens, line)
	}
	return tokens
}

// GetSplitter returns the splitter registered under name. An empty name
// selects SplitFields.
func GetSplitter(name string) (Splitter, error) {
	switch name {
	case "", SplitModeFields:
		return SplitFields, nil
	case SplitModeLines:
		return SplitLines, nil
	default:
		return nil, fmt.Errorf("unsupported split mode: %s", name)
	}
}

// WritePatch writes one prefixed line per token of out and returns the
// number of lines written.
func WritePatch(w io.Writer, out string, split Splitter) (int, error) {
	if split == nil {
		split = SplitFields
	}
	ew := &errWriter{w: w}
	tokens := split(out)
	for _, tok := range tokens {
		ew.printf("%s%s\n", Prefix, tok)
	}
	return len(tokens), ew.err
}

// WriteFailure writes the failure banner, a blank line and the tool output.
func WriteFailure(w io.Writer, toolOutput string) error {
	ew := &errWriter{w: w}
	ew.println(FailureMessage)
	ew.println("")
	ew.println(toolOutput)
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
