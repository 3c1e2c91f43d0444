package analysis

import (
	"context"
	"fmt"
	"strings"
)

// StubNarrator produces a canned narrative when no analysis endpoint is
// configured, so the rest of the flow stays exercisable locally.
type StubNarrator struct{}

// Invoke returns a short deterministic narrative derived from the content.
func (StubNarrator) Invoke(_ context.Context, kind, content, analysisType string) (string, error) {
	missing := strings.Count(content, NoInformation)
	label := kind
	if analysisType != "" {
		label = kind + "/" + analysisType
	}
	return fmt.Sprintf(
		"Stub %s analysis. %d of 5 sections had no information provided. "+
			"Configure the analysis endpoint to receive a real narrative.",
		label, missing), nil
}
