package domain

import "html/template"

// BlockKind define como se presenta un bloque de una seccion.
type BlockKind string

const (
	BlockProse      BlockKind = "prose"
	BlockTable      BlockKind = "table"
	BlockImage      BlockKind = "image"
	BlockSurvey     BlockKind = "survey"
	BlockRegression BlockKind = "regression"
)

// Block es un elemento de una seccion. Prose ya viene renderizado a HTML.
type Block struct {
	Kind     BlockKind
	Prose    template.HTML
	Artifact string
	Table    *Table
	ImageURI template.URL
}

// Section es una seccion del reporte en orden de lectura.
type Section struct {
	ID     string
	Title  string
	Blocks []Block
}

// Banner es la cabecera con logo, titulo y autores.
type Banner struct {
	Title      string
	Authors    string
	ProjectURL string
	LogoURI    template.URL
}

// SurveyView es lo que necesita la pagina para dibujar la encuesta.
type SurveyView struct {
	Questions []Question
	Values    map[string]string
	Response  *SurveyResponse
}

// Page es la salida de una pasada de render.
type Page struct {
	Banner     Banner
	Sections   []Section
	Survey     SurveyView
	Regression RegressionSummary
}
