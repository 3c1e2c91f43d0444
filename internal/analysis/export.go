package analysis

import (
	"strings"

	"esgcompass/internal/model"
)

// ExportHeader is the first line of every exported report file.
const ExportHeader = "ESG DIAGNOSTIC REPORT"

// Slugify lowercases a company name and replaces whitespace runs with
// single hyphens, for use in export filenames.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// ExportFilename derives the artifact name for a report:
// <kind>-diagnostic-<slugified-company-name>.txt
func ExportFilename(t model.AssessmentType, companyName string) string {
	return string(t) + "-diagnostic-" + Slugify(companyName) + ".txt"
}

// BuildExport renders the downloadable text artifact for a report: the
// fixed header block followed by the narrative verbatim. The byte layout
// is part of the export contract.
func BuildExport(report *model.AnalysisReport) (filename string, body []byte) {
	var b strings.Builder
	b.WriteString(ExportHeader + "\n\n")
	b.WriteString("Company: " + report.FormData.CompanyName + "\n")
	b.WriteString("Industry: " + report.FormData.Industry + "\n")
	b.WriteString("Size: " + report.FormData.EmployeeCount + " employees\n")
	b.WriteString("\n")
	b.WriteString(report.Narrative)

	return ExportFilename(report.AssessmentType, report.FormData.CompanyName), []byte(b.String())
}
