// Package analysis turns a validated assessment into a narrative report:
// it formats form values into the prompt document, invokes the remote
// analysis function, and builds the downloadable export artifact.
package analysis

import (
	"strings"

	"esgcompass/internal/model"
)

// NoInformation is substituted for every empty optional section. The
// remote analysis function keys off this exact string, so it is part of
// the wire contract, as is the section order below.
const NoInformation = "No information provided"

// FormatForAnalysis renders form values into the fixed plain-text
// document sent as the analysis prompt body. Deterministic: identical
// input yields byte-identical output.
func FormatForAnalysis(v model.FormValues) string {
	var b strings.Builder

	b.WriteString("Company: " + v.CompanyName + "\n")
	b.WriteString("Industry: " + v.Industry + "\n")
	b.WriteString("Size: " + v.EmployeeCount + " employees\n")
	b.WriteString("\n")

	writeSection(&b, "Existing Initiatives", v.ExistingInitiatives)
	writeSection(&b, "Main Goals", v.MainGoals)
	writeSection(&b, "Environmental Practices", v.EnvironmentalPractices)
	writeSection(&b, "Social Responsibility", v.SocialResponsibility)
	writeSection(&b, "Governance", v.Governance)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeSection(b *strings.Builder, header, value string) {
	b.WriteString(header + ":\n")
	if strings.TrimSpace(value) == "" {
		b.WriteString(NoInformation + "\n")
	} else {
		b.WriteString(value + "\n")
	}
	b.WriteString("\n")
}
