package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"fed-sentiment/internal/domain"
)

// Manifest asocia nombre de artefacto con su ubicacion.
type Manifest map[string]domain.ArtifactRef

var ErrManifestInvalid = errors.New("artifact manifest invalid")

type manifestFile struct {
	Artifacts []domain.ArtifactRef `yaml:"artifacts"`
}

// DefaultManifest arma el manifiesto a partir del directorio de datos y la URL base.
func DefaultManifest(dataDir, baseURL string) Manifest {
	base := strings.TrimRight(baseURL, "/")
	m := Manifest{}
	add := func(name string, kind domain.ArtifactKind, location string) {
		m[name] = domain.ArtifactRef{Name: name, Kind: kind, Location: location}
	}

	add(domain.ArtifactFedLogo, domain.ArtifactImage, base+"/FED_logo.png")
	for i, name := range []string{
		domain.ArtifactGraph1, domain.ArtifactGraph2, domain.ArtifactGraph3, domain.ArtifactGraph4,
		domain.ArtifactGraph5, domain.ArtifactGraph6, domain.ArtifactGraph7,
	} {
		add(name, domain.ArtifactImage, fmt.Sprintf("%s/graph%d.png", base, i+1))
	}

	add(domain.ArtifactStatements, domain.ArtifactTable, filepath.Join(dataDir, "FED_df_data.csv"))
	add(domain.ArtifactCleaned, domain.ArtifactTable, filepath.Join(dataDir, "FED_cleaned_df.csv"))
	add(domain.ArtifactFinal, domain.ArtifactTable, filepath.Join(dataDir, "FED_df_final.csv"))
	return m
}

// LoadManifest parte del manifiesto por defecto y aplica los overrides del archivo YAML, si hay.
func LoadManifest(cfg *Config) (Manifest, error) {
	m := DefaultManifest(cfg.ArtifactDataDir, cfg.ArtifactBaseURL)
	if strings.TrimSpace(cfg.ArtifactManifest) == "" {
		return m, nil
	}
	raw, err := os.ReadFile(cfg.ArtifactManifest)
	if err != nil {
		return nil, fmt.Errorf("read artifact manifest: %w", err)
	}
	if err := m.Merge(raw); err != nil {
		return nil, err
	}
	return m, nil
}

// Merge aplica entradas YAML sobre el manifiesto. Una entrada sin kind conserva el existente.
func (m Manifest) Merge(raw []byte) error {
	var file manifestFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}
	for _, ref := range file.Artifacts {
		ref.Name = strings.TrimSpace(ref.Name)
		ref.Location = strings.TrimSpace(ref.Location)
		if ref.Name == "" || ref.Location == "" {
			return fmt.Errorf("%w: entries need name and location", ErrManifestInvalid)
		}
		if ref.Kind == "" {
			existing, ok := m[ref.Name]
			if !ok {
				return fmt.Errorf("%w: unknown artifact %q needs a kind", ErrManifestInvalid, ref.Name)
			}
			ref.Kind = existing.Kind
		}
		if ref.Kind != domain.ArtifactImage && ref.Kind != domain.ArtifactTable {
			return fmt.Errorf("%w: artifact %q has kind %q", ErrManifestInvalid, ref.Name, ref.Kind)
		}
		m[ref.Name] = ref
	}
	return nil
}

// Lookup devuelve la referencia de un artefacto por nombre.
func (m Manifest) Lookup(name string) (domain.ArtifactRef, bool) {
	ref, ok := m[name]
	return ref, ok
}
