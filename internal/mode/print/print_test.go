// ABOUTME: Tests for one-shot mode: resolution, store application, and output formats
// ABOUTME: Drives a real store in a temp dir and captures the writer

package print

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tanyabot/tanya-go/internal/match"
	"github.com/tanyabot/tanya-go/internal/qna"
)

func newDeps(t *testing.T) Deps {
	t.Helper()
	store, err := qna.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return Deps{Store: store, Algorithm: match.KMP}
}

func TestRun_TextOutput(t *testing.T) {
	t.Parallel()

	deps := newDeps(t)
	if _, err := deps.Store.Add("siapa presiden", "Joko Widodo"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := RunWithConfig(Config{Out: &buf}, deps, "siapa presiden")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "Joko Widodo" {
		t.Errorf("output = %q; want the stored answer", got)
	}
}

func TestRun_AddPersists(t *testing.T) {
	t.Parallel()

	deps := newDeps(t)

	var buf bytes.Buffer
	err := RunWithConfig(Config{Out: &buf}, deps, "tambah siapa presiden jawab Joko Widodo")
	if err != nil {
		t.Fatal(err)
	}

	records, err := deps.Store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Answer != "Joko Widodo" {
		t.Errorf("store after add: %+v", records)
	}

	// The follow-up query sees the applied add.
	buf.Reset()
	if err := RunWithConfig(Config{Out: &buf}, deps, "siapa presiden"); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "Joko Widodo" {
		t.Errorf("round-trip output = %q", got)
	}
}

func TestRun_UpdateAndDeletePersist(t *testing.T) {
	t.Parallel()

	deps := newDeps(t)
	if _, err := deps.Store.Add("siapa presiden", "SBY"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := RunWithConfig(Config{Out: &buf}, deps, "tambah siapa presiden jawab Joko Widodo"); err != nil {
		t.Fatal(err)
	}
	records, _ := deps.Store.Load()
	if len(records) != 1 || records[0].Answer != "Joko Widodo" {
		t.Fatalf("store after update: %+v", records)
	}

	if err := RunWithConfig(Config{Out: &buf}, deps, "hapus pertanyaan siapa presiden"); err != nil {
		t.Fatal(err)
	}
	records, _ = deps.Store.Load()
	if len(records) != 0 {
		t.Errorf("store after delete: %+v", records)
	}
}

func TestRun_JSONOutput(t *testing.T) {
	t.Parallel()

	deps := newDeps(t)

	var buf bytes.Buffer
	err := RunWithConfig(Config{OutputFormat: "json", Out: &buf}, deps, "berapa 2+3*4")
	if err != nil {
		t.Fatal(err)
	}

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if out["action"] != "none" {
		t.Errorf("action = %v; want none", out["action"])
	}
	if out["display"] != "Hasil dari 2+3*4 adalah 14" {
		t.Errorf("display = %v", out["display"])
	}
}
