package cmtool

import "testing"

func TestParseRecord(t *testing.T) {
	line := "A#_#/path/a.txt#_#1#_#x#_#y#_#file#_#2024-01-01T00:00:00"
	rec, err := ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord error: %v", err)
	}
	want := Record{
		Status:    "A",
		Path:      "/path/a.txt",
		RevID:     "1",
		SrcCmPath: "x",
		DstCmPath: "y",
		Type:      "file",
		Date:      "2024-01-01T00:00:00",
	}
	if rec != want {
		t.Errorf("ParseRecord = %+v, want %+v", rec, want)
	}
	if rec.String() != line {
		t.Errorf("String() = %q, want %q", rec.String(), line)
	}
}

func TestParseRecord_EmptyFields(t *testing.T) {
	rec, err := ParseRecord("D#_#/gone.txt#_#-1#_##_##_#file#_#2024-02-03T04:05:06")
	if err != nil {
		t.Fatalf("ParseRecord error: %v", err)
	}
	if rec.SrcCmPath != "" || rec.DstCmPath != "" {
		t.Errorf("expected empty cm paths, got %+v", rec)
	}
}

func TestParseRecord_WrongFieldCount(t *testing.T) {
	for _, line := range []string{"", "A#_#b", "1#_#2#_#3#_#4#_#5#_#6#_#7#_#8"} {
		if _, err := ParseRecord(line); err == nil {
			t.Errorf("ParseRecord(%q) should fail", line)
		}
	}
}

func TestParseRecords(t *testing.T) {
	out := "A#_#/a#_#1#_#x#_#y#_#file#_#d\r\n" +
		"\n" +
		"warning: something\n" +
		"C#_#/b#_#2#_#x#_#y#_#dir#_#d\n"
	recs, skipped := ParseRecords(out)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Date != "d" {
		t.Errorf("CR not stripped: %q", recs[0].Date)
	}
	if recs[1].Type != "dir" {
		t.Errorf("recs[1].Type = %q", recs[1].Type)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}
