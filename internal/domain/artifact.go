package domain

import (
	"encoding/base64"
	"html/template"
	"strings"
)

// ArtifactKind distingue imagenes de tablas.
type ArtifactKind string

const (
	ArtifactImage ArtifactKind = "image"
	ArtifactTable ArtifactKind = "table"
)

// Nombres de los artefactos que consume el reporte.
const (
	ArtifactFedLogo    = "fed_logo"
	ArtifactStatements = "statements"
	ArtifactCleaned    = "cleaned"
	ArtifactFinal      = "final"
	ArtifactGraph1     = "graph1"
	ArtifactGraph2     = "graph2"
	ArtifactGraph3     = "graph3"
	ArtifactGraph4     = "graph4"
	ArtifactGraph5     = "graph5"
	ArtifactGraph6     = "graph6"
	ArtifactGraph7     = "graph7"
)

// ArtifactRef identifica un recurso externo opaco.
type ArtifactRef struct {
	Name     string       `json:"name" yaml:"name"`
	Kind     ArtifactKind `json:"kind" yaml:"kind"`
	Location string       `json:"location" yaml:"location"`
}

// IsRemote indica si la ubicacion se resuelve por HTTP.
func (r ArtifactRef) IsRemote() bool {
	loc := strings.ToLower(strings.TrimSpace(r.Location))
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
}

// Table es el contenido de un CSV tal cual se leyo.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Empty indica si la tabla no tiene filas de datos.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Image es una imagen recodificada como PNG para mostrarla inline.
type Image struct {
	PNG    []byte `json:"-"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DataURI codifica la imagen para un atributo src inline.
func (i Image) DataURI() template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(i.PNG))
}

// LoadedArtifact es el resultado de resolver un ArtifactRef.
type LoadedArtifact struct {
	Ref   ArtifactRef
	Table *Table
	Image *Image
}
