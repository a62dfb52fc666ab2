package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/credlens/credlens/internal/model"
)

// Renderer writes verification results as JSON, Markdown, or a terminal summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a result renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the result as indented JSON to path
func (r *Renderer) RenderJSON(result *model.VerificationResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}

	return nil
}

// RenderMarkdown writes a human-readable report to path
func (r *Renderer) RenderMarkdown(result *model.VerificationResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create markdown file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r.writeMarkdown(f, result)
	return nil
}

// RenderSummary prints a short verdict summary to stdout
func (r *Renderer) RenderSummary(result *model.VerificationResult) {
	fmt.Printf("\nVerdict:    %s\n", result.Prediction)
	fmt.Printf("Confidence: %.0f%%\n", result.Confidence)
	fmt.Printf("Fake score: %.1f  Credible score: %.1f  (%.1f%% fake-leaning)\n",
		result.Score.FakeScore, result.Score.CredibleScore, result.Score.FakePercentage)
	if len(result.Claims) > 0 {
		fmt.Printf("Claims:     %d extracted\n", len(result.Claims))
	}
	fmt.Printf("Scored by:  %s\n", result.Source)
}

func (r *Renderer) writeMarkdown(w io.Writer, result *model.VerificationResult) {
	fmt.Fprintf(w, "# Credibility Report\n\n")
	fmt.Fprintf(w, "**Verdict:** %s  \n", result.Prediction)
	fmt.Fprintf(w, "**Confidence:** %.0f%%  \n", result.Confidence)
	fmt.Fprintf(w, "**Fake-leaning share:** %.1f%%\n\n", result.Score.FakePercentage)

	fmt.Fprintf(w, "## Score Breakdown\n\n")
	fmt.Fprintf(w, "| Side | Score | Indicators |\n|------|-------|------------|\n")
	fmt.Fprintf(w, "| Fake | %.1f | %s |\n", result.Score.FakeScore, indicatorList(result.Score.FakeMatches))
	fmt.Fprintf(w, "| Credible | %.1f | %s |\n\n", result.Score.CredibleScore, indicatorList(result.Score.CredibleMatches))

	fmt.Fprintf(w, "## Word Evidence\n\n")
	if !result.Explanation.Available {
		fmt.Fprintf(w, "_%s_\n\n", result.Explanation.Message)
	} else {
		if len(result.Explanation.TopNegative) > 0 {
			fmt.Fprintf(w, "Fake-leaning:\n\n")
			for _, imp := range result.Explanation.TopNegative {
				fmt.Fprintf(w, "- `%s` (%.1f)\n", imp.Token, imp.Weight)
			}
			fmt.Fprintln(w)
		}
		if len(result.Explanation.TopPositive) > 0 {
			fmt.Fprintf(w, "Credible-leaning:\n\n")
			for _, imp := range result.Explanation.TopPositive {
				fmt.Fprintf(w, "- `%s` (+%.1f)\n", imp.Token, imp.Weight)
			}
			fmt.Fprintln(w)
		}
	}

	if len(result.Claims) > 0 {
		fmt.Fprintf(w, "## Extracted Claims\n\n")
		for _, claim := range result.Claims {
			fmt.Fprintf(w, "%d. [%s] %s\n", claim.ID, claim.Class, claim.Text)
		}
		fmt.Fprintln(w)
	}

	if r.includeFooter {
		fmt.Fprintf(w, "---\n\nGenerated by credlens. Scores describe surface language patterns, not factual accuracy.\n")
	}
}

func indicatorList(matches []model.MatchResult) string {
	if len(matches) == 0 {
		return "none"
	}
	keys := make([]string, len(matches))
	for i, m := range matches {
		keys[i] = m.IndicatorKey
	}
	return strings.Join(keys, ", ")
}
