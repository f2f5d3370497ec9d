package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAliasesDefaults(t *testing.T) {
	a, err := LoadAliases("")
	if err != nil {
		t.Fatalf("LoadAliases: %v", err)
	}
	if len(a.Title) == 0 || len(a.CNR) == 0 {
		t.Errorf("defaults missing: %+v", a)
	}
}

func TestLoadAliasesOverridesAndFills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	yaml := "title:\n  - Matter\n  - matter\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("LoadAliases: %v", err)
	}
	if len(a.Title) != 2 || a.Title[0] != "Matter" {
		t.Errorf("title override lost: %v", a.Title)
	}
	if len(a.CNR) == 0 {
		t.Error("unlisted fields should fall back to defaults")
	}
}

func TestLoadAliasesMissingFileFallsBack(t *testing.T) {
	a, err := LoadAliases("/nonexistent/aliases.yaml")
	if err == nil {
		t.Error("expected an error for a missing file")
	}
	if len(a.Title) == 0 {
		t.Error("defaults should still be returned")
	}
}
