package objspec

import (
	"fmt"
	"strings"
)

// Kind identifies what an object spec refers to.
type Kind string

const (
	KindUnknown   Kind = ""
	KindBranch    Kind = "branch"
	KindChangeset Kind = "changeset"
)

// Spec prefixes recognized by cm.
const (
	BranchPrefix    = "br:"
	ChangesetPrefix = "cs:"
)

// ObjectSpec is a raw object specifier such as "br:/main" or "cs:42".
type ObjectSpec string

// Kind returns the kind encoded in the spec prefix.
func (s ObjectSpec) Kind() Kind {
	switch {
	case strings.HasPrefix(string(s), BranchPrefix):
		return KindBranch
	case strings.HasPrefix(string(s), ChangesetPrefix):
		return KindChangeset
	default:
		return KindUnknown
	}
}

func (s ObjectSpec) IsBranch() bool    { return s.Kind() == KindBranch }
func (s ObjectSpec) IsChangeset() bool { return s.Kind() == KindChangeset }

// ID returns the identifier after the prefix, or the whole value when the
// prefix is not recognized.
func (s ObjectSpec) ID() string {
	switch s.Kind() {
	case KindBranch:
		return strings.TrimPrefix(string(s), BranchPrefix)
	case KindChangeset:
		return strings.TrimPrefix(string(s), ChangesetPrefix)
	default:
		return string(s)
	}
}

func (s ObjectSpec) String() string { return string(s) }

// CompareMode selects which blank characters the diff should recognise.
// The zero value means the option was not given.
type CompareMode string

const (
	CompareUnset  CompareMode = ""
	CompareNone   CompareMode = "none"
	CompareAll    CompareMode = "all"
	CompareSpaces CompareMode = "spaces"
	CompareEOL    CompareMode = "eol"
)

// CompareModes lists the accepted values in help order.
var CompareModes = []CompareMode{CompareNone, CompareAll, CompareSpaces, CompareEOL}

// ParseCompareMode returns the mode named by s.
func ParseCompareMode(s string) (CompareMode, error) {
	for _, m := range CompareModes {
		if string(m) == s {
			return m, nil
		}
	}
	names := make([]string, len(CompareModes))
	for i, m := range CompareModes {
		names[i] = string(m)
	}
	return CompareUnset, fmt.Errorf("invalid choice: %q (choose from %s)", s, strings.Join(names, ", "))
}

// String implements pflag.Value.
func (m *CompareMode) String() string { return string(*m) }

// Set implements pflag.Value.
func (m *CompareMode) Set(s string) error {
	v, err := ParseCompareMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements pflag.Value.
func (m *CompareMode) Type() string { return "mode" }

// Request is a diff request as given on the command line.
type Request struct {
	First     ObjectSpec
	Second    ObjectSpec
	HasSecond bool
	Compare   CompareMode
}

// NewRequest builds a Request from one or two positional arguments.
func NewRequest(args []string, compare CompareMode) (Request, error) {
	switch len(args) {
	case 1:
		return Request{First: ObjectSpec(args[0]), Compare: compare}, nil
	case 2:
		return Request{
			First:     ObjectSpec(args[0]),
			Second:    ObjectSpec(args[1]),
			HasSecond: true,
			Compare:   compare,
		}, nil
	default:
		return Request{}, fmt.Errorf("expected 1 or 2 object specs, got %d", len(args))
	}
}
