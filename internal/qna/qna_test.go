// ABOUTME: Tests for normalization, JSONL store round-trips, and seed import
// ABOUTME: Uses t.TempDir for isolated store files

package qna

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Siapa Presiden?", "siapa presiden"},
		{"  apa itu KMP!!  ", "apa itu kmp"},
		{"halo", "halo"},
		{"?!.,", ""},
		{"a_b c", "a_b c"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}

	if got := NormalizeCompact("Siapa  Presiden Indonesia?"); got != "siapapresidenindonesia" {
		t.Errorf("NormalizeCompact = %q", got)
	}
}

func TestStore_AddLoad(t *testing.T) {
	t.Parallel()

	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	r1, err := s.Add("siapa presiden", "Joko Widodo")
	if err != nil {
		t.Fatal(err)
	}
	if r1.ID == "" {
		t.Error("Add returned empty ID")
	}
	if _, err := s.Add("apa ibukota indonesia", "Jakarta"); err != nil {
		t.Fatal(err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("Load returned %d records; want 2", len(records))
	}
	if records[0].Question != "siapa presiden" || records[0].Answer != "Joko Widodo" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
}

func TestStore_UpdateAnswer(t *testing.T) {
	t.Parallel()

	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r, err := s.Add("siapa presiden", "SBY")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateAnswer(r.ID, "Joko Widodo"); err != nil {
		t.Fatal(err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Answer != "Joko Widodo" {
		t.Errorf("answer = %q; want updated value", records[0].Answer)
	}

	if err := s.UpdateAnswer("missing-id", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateAnswer(missing) error = %v; want ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r1, _ := s.Add("q1", "a1")
	r2, _ := s.Add("q2", "a2")

	if err := s.Delete(r1.ID); err != nil {
		t.Fatal(err)
	}
	records, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ID != r2.ID {
		t.Errorf("unexpected records after delete: %+v", records)
	}

	if err := s.Delete(r1.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete error = %v; want ErrNotFound", err)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	records, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("missing file should be an empty base, got %d records", len(records))
	}
}

func TestImportSeed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.yaml")
	seed := `- question: siapa presiden
  answer: Joko Widodo
- question: apa ibukota indonesia
  answer: Jakarta
`
	if err := os.WriteFile(seedPath, []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}

	n, err := s.ImportSeed(seedPath)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("imported %d records; want 2", n)
	}

	// A non-empty store is never reseeded.
	n, err = s.ImportSeed(seedPath)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("reseed imported %d records; want 0", n)
	}

	// A missing seed file is silently skipped.
	n, err = s.ImportSeed(filepath.Join(dir, "absent.yaml"))
	if err != nil || n != 0 {
		t.Errorf("missing seed: n=%d err=%v; want 0, nil", n, err)
	}
}
