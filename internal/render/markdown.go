package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// El texto del reporte es fijo y trae HTML propio (divs justificados, tablas).
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

// Markdown convierte texto markdown a HTML listo para el template.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// MustMarkdown es Markdown para texto constante conocido al compilar.
func MustMarkdown(src string) template.HTML {
	out, err := Markdown(src)
	if err != nil {
		panic(err)
	}
	return out
}
