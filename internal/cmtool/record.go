package cmtool

import (
	"fmt"
	"strings"
)

// Record is one changed item reported by cm diff.
type Record struct {
	Status    string
	Path      string
	RevID     string
	SrcCmPath string
	DstCmPath string
	Type      string
	Date      string
}

// ParseRecord splits a single formatted line into its seven fields.
func ParseRecord(line string) (Record, error) {
	parts := strings.Split(line, Separator)
	if len(parts) != len(Fields) {
		return Record{}, fmt.Errorf("record has %d fields, want %d: %q", len(parts), len(Fields), line)
	}
	return Record{
		Status:    parts[0],
		Path:      parts[1],
		RevID:     parts[2],
		SrcCmPath: parts[3],
		DstCmPath: parts[4],
		Type:      parts[5],
		Date:      parts[6],
	}, nil
}

// String joins the fields back with Separator.
func (r Record) String() string {
	return strings.Join([]string{
		r.Status, r.Path, r.RevID, r.SrcCmPath, r.DstCmPath, r.Type, r.Date,
	}, Separator)
}

// ParseRecords parses every non-empty line of out. Lines that do not hold a
// full record are counted in skipped; the cm client may interleave warnings.
func ParseRecords(out string) (records []Record, skipped int) {
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}
