package render

import (
	"embed"
	"encoding/json"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageTemplateName  = "report.html"
	ErrorTemplateName = "error.html"
)

// PageTemplate parsea los templates HTML del reporte para gin.
func PageTemplate() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"toJSON": toJSON,
	}).ParseFS(templateFS, "templates/*.html")
}

func toJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
