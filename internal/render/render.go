// Package render shapes engine results for presentation: pretty JSON for
// machine consumers, Markdown summaries for the terminal, the radar-chart
// point projection, and the display-only similarity curve. Nothing here
// feeds back into the engine.
package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

// RenderJSON produces a pretty-printed JSON representation of any engine
// result record.
func RenderJSON(v any) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("render: nil value")
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: json marshal: %w", err)
	}
	return b, nil
}

// DisplaySimilarity applies the presentation curve to a raw similarity:
// sim^1.5, which spreads mid-range results apart for display. Raw
// similarity stays the engine's contract; only rendered output uses this.
func DisplaySimilarity(sim float64) float64 {
	if sim <= 0 {
		return 0
	}
	return math.Pow(sim, 1.5)
}

// RadarPoint is one vertex of the profile radar polygon, on a unit circle
// scaled by the value's normalized score.
type RadarPoint struct {
	Code  string  `json:"code"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// RadarPoints projects a profile onto 19 evenly spaced axes, starting at
// twelve o'clock and proceeding clockwise in catalog order. Radius is
// score/7, so a neutral profile draws a regular polygon at radius 0.5.
func RadarPoints(scores schema.ValueScores) []RadarPoint {
	values := catalog.Values()
	points := make([]RadarPoint, 0, len(values))
	for i, v := range values {
		angle := 2 * math.Pi * float64(i) / float64(len(values))
		r := scores.Get(v.Code) / schema.ScoreMax
		points = append(points, RadarPoint{
			Code:  v.Code,
			Label: v.Label,
			X:     r * math.Sin(angle),
			Y:     r * math.Cos(angle),
		})
	}
	return points
}

// MarkdownSensitivity renders a sensitivity report.
func MarkdownSensitivity(name string, top []schema.CarrierSensitivity) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Carrier Sensitivity — %s\n\n", mdEscape(name))
	sb.WriteString("| Carrier | Sensitivity | Top contributors |\n")
	sb.WriteString("|---|---|---|\n")
	for _, cs := range top {
		var contribs []string
		for _, vc := range cs.TopContributors {
			contribs = append(contribs, fmt.Sprintf("%s (%+.2f)", vc.Code, vc.Contribution))
		}
		fmt.Fprintf(&sb, "| %s | %+.2f | %s |\n",
			mdEscape(cs.Carrier.Name), cs.TotalSensitivity, strings.Join(contribs, ", "))
	}
	sb.WriteString("\n")
	return sb.String()
}

// MarkdownInternalTension renders an internal-tension report.
func MarkdownInternalTension(name string, top []schema.CarrierInternalTension) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Internal Tension — %s\n\n", mdEscape(name))
	sb.WriteString("| Carrier | Range | StdDev | Pulls toward | Pulls against |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, t := range top {
		fmt.Fprintf(&sb, "| %s | %.2f | %.2f | %s (%+.2f) | %s (%+.2f) |\n",
			mdEscape(t.Carrier.Name), t.Range, t.StdDev,
			t.MaxValue.Code, t.MaxValue.Contribution,
			t.MinValue.Code, t.MinValue.Contribution)
	}
	sb.WriteString("\n")
	return sb.String()
}

// MarkdownClarification renders a clarification result.
func MarkdownClarification(res schema.ClarificationResult) string {
	var sb strings.Builder
	sb.WriteString("## Clarification\n\n")
	if !res.CanClarify {
		fmt.Fprintf(&sb, "Cannot clarify: %s (%s)\n", mdEscape(res.Reason), res.ReasonCode)
		return sb.String()
	}
	sb.WriteString("**Undecided values:** ")
	var codes []string
	for _, u := range res.UndecidedValues {
		codes = append(codes, u.Code)
	}
	sb.WriteString(strings.Join(codes, ", "))
	sb.WriteString("\n\n")
	for _, cs := range res.SelectedCarriers {
		fmt.Fprintf(&sb, "### %s (spread %.2f)\n\n", mdEscape(cs.Carrier.Name), cs.Spread)
		if len(cs.HighPolarity) > 0 {
			sb.WriteString("Favors the high pole: ")
			sb.WriteString(joinPolarized(cs.HighPolarity))
			sb.WriteString("\n\n")
		}
		if len(cs.LowPolarity) > 0 {
			sb.WriteString("Favors the low pole: ")
			sb.WriteString(joinPolarized(cs.LowPolarity))
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// MarkdownProfileTension renders a cross-profile tension report.
func MarkdownProfileTension(top []schema.ProfileTensionCarrier) string {
	var sb strings.Builder
	sb.WriteString("## Cross-Profile Tension\n\n")
	sb.WriteString("| Carrier | Tension | Most conflicting pair | Magnitude |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, t := range top {
		fmt.Fprintf(&sb, "| %s | %.2f | %s vs %s | %.2f |\n",
			mdEscape(t.Carrier.Name), t.TensionScore,
			mdEscape(t.ConflictingProfiles[0]), mdEscape(t.ConflictingProfiles[1]),
			t.ConflictMagnitude)
	}
	sb.WriteString("\n")
	return sb.String()
}

// MarkdownArchetypes renders ranked archetype matches with display-curved
// percentages.
func MarkdownArchetypes(matches []schema.ArchetypeMatch) string {
	var sb strings.Builder
	sb.WriteString("## Archetype Matches\n\n")
	sb.WriteString("| Archetype | Category | Match |\n")
	sb.WriteString("|---|---|---|\n")
	for _, m := range matches {
		fmt.Fprintf(&sb, "| %s | %s | %.0f%% |\n",
			mdEscape(m.Archetype.Name), m.Archetype.Category,
			DisplaySimilarity(m.Similarity)*100)
	}
	sb.WriteString("\n")
	return sb.String()
}

func joinPolarized(vs []schema.PolarizedValue) string {
	var parts []string
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s (%+.1f)", v.Code, v.Polarity))
	}
	return strings.Join(parts, ", ")
}

// mdEscape replaces characters that would break Markdown table cells.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
