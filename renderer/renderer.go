// Package renderer renders analyses as markdown, for the terminal and the HTML report.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/positions"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"money":   func(v float64) string { return positions.EUR(v).String() },
	"percent": func(v float64) string { return positions.Percent(v).String() },
	"number":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"cell":    escapeCell,
	"label":   label,
}

// escapeCell keeps a value from breaking a markdown table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// label names blank allocation labels.
func label(s string) string {
	if s == "" {
		return "(n/a)"
	}
	return s
}

// renderTemplate renders the main template 'mainFile' that may use the templates 'partials',
// given as name to file.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
