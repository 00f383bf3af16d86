package tracker

import (
	"bytes"
	"strings"
	"testing"
)

// exportOf encodes a store built from the given holdings, as a merge source.
func exportOf(t *testing.T, holdings map[string]Holding) *bytes.Buffer {
	t.Helper()
	s := NewStore()
	for ticker, h := range holdings {
		if err := s.Add(ticker, h); err != nil {
			t.Fatalf("Add(%s): %v", ticker, err)
		}
	}
	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		t.Fatalf("EncodeStore: %v", err)
	}
	return &buf
}

func TestMergeAddNewOnly(t *testing.T) {
	s := NewStore()
	s.Add("MO", Holding{Name: "mine", Shares: Q(10), TotalInvested: M(1000, "USD")})
	s.SetCash(M(500, "USD"))

	in := exportOf(t, map[string]Holding{
		"MO": {Name: "theirs", Shares: Q(99), TotalInvested: M(9999, "USD")},
		"KO": {Name: "Coca-Cola", Shares: Q(5), TotalInvested: M(300, "USD")},
	})

	report, err := s.Merge(in, AddNewOnly)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if report.Added != 1 || report.Updated != 0 {
		t.Errorf("report = %+v, want 1 added, 0 updated", report)
	}
	if s.Get("MO").Name != "mine" {
		t.Errorf("existing holding must be untouched in add-new-only mode")
	}
	if s.Get("KO") == nil {
		t.Errorf("new holding should be added")
	}
	if !s.Cash.Equal(M(500, "USD")) {
		t.Errorf("merge must not touch cash, got %v", s.Cash)
	}
}

func TestMergeOverwrite(t *testing.T) {
	s := NewStore()
	s.Add("MO", Holding{Name: "mine", Shares: Q(10), TotalInvested: M(1000, "USD")})

	in := exportOf(t, map[string]Holding{
		"MO": {Name: "theirs", Shares: Q(99), TotalInvested: M(9999, "USD")},
		"KO": {Name: "Coca-Cola", Shares: Q(5), TotalInvested: M(300, "USD")},
	})

	report, err := s.Merge(in, Overwrite)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if report.Added != 1 || report.Updated != 1 {
		t.Errorf("report = %+v, want 1 added, 1 updated", report)
	}
	if s.Get("MO").Name != "theirs" {
		t.Errorf("existing holding should be replaced in overwrite mode")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2; merge never deletes", s.Len())
	}
}

func TestMergeMalformed(t *testing.T) {
	s := NewStore()
	s.Add("MO", Holding{Shares: Q(10), TotalInvested: M(1000, "USD")})

	_, err := s.Merge(strings.NewReader("{broken"), Overwrite)
	if err == nil {
		t.Fatalf("malformed input should fail")
	}
	if s.Len() != 1 {
		t.Errorf("a failed merge must not change the store")
	}
}

func TestRestoreStore(t *testing.T) {
	in := exportOf(t, map[string]Holding{
		"KO": {Shares: Q(5), TotalInvested: M(300, "USD")},
	})
	s, err := RestoreStore(in)
	if err != nil {
		t.Fatalf("RestoreStore: %v", err)
	}
	if s.Len() != 1 || s.Get("KO") == nil {
		t.Errorf("restored store should hold exactly the backup content")
	}

	if _, err := RestoreStore(strings.NewReader("nope")); err == nil {
		t.Errorf("malformed backup should be rejected")
	}
}

func TestParseMergeMode(t *testing.T) {
	for _, mode := range []MergeMode{AddNewOnly, Overwrite} {
		got, err := ParseMergeMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseMergeMode(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if _, err := ParseMergeMode("replace-all"); err == nil {
		t.Errorf("unknown mode should fail")
	}
}
