// ABOUTME: Tests for settings loading and global/project merge behavior
// ABOUTME: Overrides HOME so global config resolves into a temp directory

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if s.Algorithm != "kmp" {
		t.Errorf("Algorithm = %q; want kmp default", s.Algorithm)
	}
	if s.DataDir == "" {
		t.Error("DataDir default is empty")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	project := t.TempDir()

	writeConfig(t, GlobalConfigFile(), `{"algorithm":"kmp","data_dir":"/global/data"}`)
	writeConfig(t, ProjectConfigFile(project), `{"algorithm":"bm"}`)

	s, err := Load(project)
	if err != nil {
		t.Fatal(err)
	}
	if s.Algorithm != "bm" {
		t.Errorf("Algorithm = %q; project value should win", s.Algorithm)
	}
	if s.DataDir != "/global/data" {
		t.Errorf("DataDir = %q; global value should survive", s.DataDir)
	}
}

func TestLoad_MalformedConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, GlobalConfigFile(), `{not json`)

	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestMerge_NilInputs(t *testing.T) {
	t.Parallel()

	got := merge(nil, &Settings{Algorithm: "bm"})
	if got.Algorithm != "bm" {
		t.Errorf("merge(nil, project) lost project value: %+v", got)
	}

	got = merge(&Settings{Algorithm: "kmp"}, nil)
	if got.Algorithm != "kmp" {
		t.Errorf("merge(global, nil) lost global value: %+v", got)
	}
}
