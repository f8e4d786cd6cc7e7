package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fed-sentiment/internal/domain"
)

func TestDefaultManifest(t *testing.T) {
	m := DefaultManifest("/srv/data", "https://example.com/plots/")

	logo, ok := m.Lookup(domain.ArtifactFedLogo)
	if !ok || logo.Location != "https://example.com/plots/FED_logo.png" || logo.Kind != domain.ArtifactImage {
		t.Fatalf("unexpected logo ref: %+v", logo)
	}
	g7, ok := m.Lookup(domain.ArtifactGraph7)
	if !ok || g7.Location != "https://example.com/plots/graph7.png" {
		t.Fatalf("unexpected graph7 ref: %+v", g7)
	}
	final, ok := m.Lookup(domain.ArtifactFinal)
	if !ok || final.Location != filepath.Join("/srv/data", "FED_df_final.csv") || final.Kind != domain.ArtifactTable {
		t.Fatalf("unexpected final ref: %+v", final)
	}
	if len(m) != 11 {
		t.Fatalf("expected 11 artifacts, got %d", len(m))
	}
}

func TestManifestMerge(t *testing.T) {
	m := DefaultManifest("data", "https://example.com")
	raw := []byte(`
artifacts:
  - name: graph1
    location: ./fixtures/graph1.png
  - name: extra_table
    kind: table
    location: ./fixtures/extra.csv
`)
	if err := m.Merge(raw); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	g1, _ := m.Lookup(domain.ArtifactGraph1)
	if g1.Location != "./fixtures/graph1.png" || g1.Kind != domain.ArtifactImage {
		t.Fatalf("override not applied: %+v", g1)
	}
	if g1.IsRemote() {
		t.Fatalf("local override must not be remote")
	}
	if _, ok := m.Lookup("extra_table"); !ok {
		t.Fatalf("expected new artifact to be added")
	}
}

func TestManifestMerge_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "artifacts: [",
		"missing loc":     "artifacts:\n  - name: graph1\n",
		"unknown no kind": "artifacts:\n  - name: nope\n    location: x.csv\n",
		"bad kind":        "artifacts:\n  - name: graph1\n    kind: video\n    location: x.mp4\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			m := DefaultManifest("data", "https://example.com")
			if err := m.Merge([]byte(raw)); !errors.Is(err, ErrManifestInvalid) {
				t.Fatalf("expected ErrManifestInvalid, got %v", err)
			}
		})
	}
}

func TestLoadManifest_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifacts.yaml")
	if err := os.WriteFile(path, []byte("artifacts:\n  - name: statements\n    location: /tmp/s.csv\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	cfg := &Config{ArtifactDataDir: "data", ArtifactBaseURL: "https://example.com", ArtifactManifest: path}
	m, err := LoadManifest(cfg)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	ref, _ := m.Lookup(domain.ArtifactStatements)
	if ref.Location != "/tmp/s.csv" || ref.Kind != domain.ArtifactTable {
		t.Fatalf("unexpected statements ref: %+v", ref)
	}

	cfg.ArtifactManifest = filepath.Join(dir, "missing.yaml")
	if _, err := LoadManifest(cfg); err == nil {
		t.Fatalf("expected error for missing manifest file")
	}
}
