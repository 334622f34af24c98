package bmfont

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKerningPairs(t *testing.T) {
	tests := []struct {
		name    string
		flat    []int
		want    []KerningPair
		wantErr bool
	}{
		{"empty", nil, []KerningPair{}, false},
		{"one pair", []int{65, 66}, []KerningPair{{65, 66}}, false},
		{"two pairs keep order", []int{65, 66, 66, 65}, []KerningPair{{65, 66}, {66, 65}}, false},
		{"odd", []int{65}, nil, true},
		{"odd three", []int{65, 66, 67}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKerningPairs(tt.flat)
			if tt.wantErr {
				if !errors.Is(err, ErrOddKerningList) {
					t.Errorf("err = %v, want ErrOddKerningList", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestKerningPair_NotSymmetric(t *testing.T) {
	kp := NewTable[KerningPair, int]()
	kp.Put(KerningPair{65, 66}, -1)
	if _, ok := kp.Get(KerningPair{66, 65}); ok {
		t.Error("(66, 65) found in a table holding only (65, 66)")
	}
}

func TestTable_NilSafe(t *testing.T) {
	var tbl *Table[int, string]
	if _, ok := tbl.Get(0); ok {
		t.Error("Get on nil table reported found")
	}
	if tbl.Len() != 0 {
		t.Errorf("Len = %d, want 0", tbl.Len())
	}
	for range tbl.All() {
		t.Error("All on nil table yielded an entry")
	}
	if tbl.Keys() != nil {
		t.Error("Keys on nil table is non-nil")
	}
}

func TestTable_InsertionOrder(t *testing.T) {
	tbl := NewTable[int, string]()
	tbl.Put(5, "five")
	tbl.Put(1, "one")
	if !tbl.Put(3, "three") {
		t.Error("Put of new key reported existing")
	}
	if tbl.Put(5, "FIVE") {
		t.Error("Put of existing key reported new")
	}

	var keys []int
	var values []string
	for k, v := range tbl.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	if d := cmp.Diff([]int{5, 1, 3}, keys); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"FIVE", "one", "three"}, values); d != "" {
		t.Errorf("values (-want +got):\n%s", d)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"xml", FormatXML, false},
		{"XML", FormatXML, false},
		{"Text", FormatText, false},
		{"binary", FormatBinary, false},
		{"hjkl", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCharSet(t *testing.T) {
	for _, s := range []string{"ANSI", "ansi", "0", ""} {
		cs, err := ParseCharSet(s)
		if err != nil || cs != 0 {
			t.Errorf("ParseCharSet(%q) = %d, %v", s, cs, err)
		}
	}
	cs, err := ParseCharSet("RUSSIAN")
	if err != nil || cs != 204 || cs.String() != "RUSSIAN" {
		t.Errorf("ParseCharSet(RUSSIAN) = %d (%s), %v", cs, cs, err)
	}
	if CharSet(42).String() != "42" {
		t.Errorf("CharSet(42) = %s", CharSet(42))
	}
	if _, err := ParseCharSet("KLINGON"); err == nil {
		t.Error("ParseCharSet(KLINGON) succeeded")
	}
}
