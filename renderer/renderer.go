// Package renderer turns portfolio reports into text and markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/investmate"
)

//go:embed templates/*
var templates embed.FS

// ComplianceText renders the compliance report: a header, one
// "name: value CUR" line per asset and the total zakat.
func ComplianceText(r *investmate.ComplianceReport) string {
	partials := map[string]string{
		"compliance_assets": "templates/compliance_assets.txt",
	}
	return renderTemplate("compliance", "templates/compliance.txt", partials, r)
}

// FinancialText renders the financial report: a header, the column names and
// one ledger record per asset.
func FinancialText(r *investmate.FinancialReport) string {
	return renderTemplate("financial", "templates/financial.txt", nil, r)
}

// renderTemplate renders a main template that depends on several partials.
// An empty partial file name results in an empty template.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
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
