package objspec

import "testing"

func TestObjectSpec_Kind(t *testing.T) {
	tests := []struct {
		spec ObjectSpec
		kind Kind
		id   string
	}{
		{"br:/main", KindBranch, "/main"},
		{"cs:42", KindChangeset, "42"},
		{"cs:", KindChangeset, ""},
		{"lb:BL001", KindUnknown, "lb:BL001"},
		{"BR:/main", KindUnknown, "BR:/main"},
		{"", KindUnknown, ""},
	}
	for _, tt := range tests {
		if got := tt.spec.Kind(); got != tt.kind {
			t.Errorf("%q.Kind() = %q, want %q", tt.spec, got, tt.kind)
		}
		if got := tt.spec.ID(); got != tt.id {
			t.Errorf("%q.ID() = %q, want %q", tt.spec, got, tt.id)
		}
	}
}

func TestParseCompareMode(t *testing.T) {
	for _, m := range CompareModes {
		got, err := ParseCompareMode(string(m))
		if err != nil {
			t.Fatalf("ParseCompareMode(%q) error: %v", m, err)
		}
		if got != m {
			t.Errorf("ParseCompareMode(%q) = %q", m, got)
		}
	}
	for _, bad := range []string{"", "tabs", "ALL", "eol "} {
		if _, err := ParseCompareMode(bad); err == nil {
			t.Errorf("ParseCompareMode(%q) should fail", bad)
		}
	}
}

func TestCompareMode_Set(t *testing.T) {
	var m CompareMode
	if err := m.Set("spaces"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if m != CompareSpaces || m.String() != "spaces" {
		t.Errorf("m = %q, want spaces", m)
	}
	if err := m.Set("bogus"); err == nil {
		t.Error("Set(bogus) should fail")
	}
	if m != CompareSpaces {
		t.Errorf("failed Set changed value to %q", m)
	}
}

func TestNewRequest(t *testing.T) {
	req, err := NewRequest([]string{"cs:3"}, CompareUnset)
	if err != nil {
		t.Fatal(err)
	}
	if req.First != "cs:3" || req.HasSecond {
		t.Errorf("single arg request = %+v", req)
	}

	req, err = NewRequest([]string{"cs:3", "cs:7"}, CompareEOL)
	if err != nil {
		t.Fatal(err)
	}
	if req.Second != "cs:7" || !req.HasSecond || req.Compare != CompareEOL {
		t.Errorf("two arg request = %+v", req)
	}

	if _, err := NewRequest(nil, CompareUnset); err == nil {
		t.Error("expected error for zero args")
	}
	if _, err := NewRequest([]string{"a", "b", "c"}, CompareUnset); err == nil {
		t.Error("expected error for three args")
	}
}
