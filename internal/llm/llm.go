// Package llm generates scenario and comparison text from engine output.
// It handles provider communication, prompt construction, response
// validation, and a single repair attempt. The engine itself never calls
// into this package; the CLI and HTTP layers do, and they treat it as an
// opaque text service.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/polarity"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

// ErrInvalidModelOutput is returned when both the initial and repair
// responses fail validation.
var ErrInvalidModelOutput = errors.New("llm: invalid model output after repair attempt")

// Provider is the interface for LLM backends.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)
}

// NewProvider is the factory for creating LLM providers. It is a
// package-level variable so tests can replace it with a mock without
// modifying the call site. Tests must restore the original value; use
// t.Cleanup to do so safely.
var NewProvider func(providerName, model string) (Provider, error) = defaultNewProvider

// Options configures a generation call.
type Options struct {
	Provider    string
	Model       string
	MaxTokens   int
	Temperature float64
	Debug       bool
}

// ValidationError records a single validation failure on an LLM response.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// GenerateScenario builds a decision scenario around one carrier for a
// profile: the prompt carries the carrier's parameters and the profile's
// strongest polarities on it, the response is validated JSON, and one
// repair attempt is made on failure.
func GenerateScenario(ctx context.Context, prof schema.Profile, carrierID string, opts Options) (*schema.Scenario, error) {
	carrier, err := catalog.CarrierByID(carrierID)
	if err != nil {
		return nil, err
	}
	provider, err := NewProvider(opts.Provider, opts.Model)
	if err != nil {
		return nil, fmt.Errorf("llm: create provider: %w", err)
	}

	sysPrompt := scenarioSystemPrompt
	userPrompt := buildScenarioUserPrompt(prof, carrier)
	debugPrompts(opts, sysPrompt, userPrompt)

	raw, err := provider.Complete(ctx, sysPrompt, userPrompt, opts.MaxTokens, opts.Temperature)
	if err != nil {
		return nil, fmt.Errorf("llm: complete: %w", err)
	}
	scenario, errs := ValidateScenario(raw, carrier.ID)
	if scenario != nil && len(errs) == 0 {
		return scenario, nil
	}

	raw2, err := provider.Complete(ctx, sysPrompt, buildRepairPrompt(userPrompt, raw, errs), opts.MaxTokens, opts.Temperature)
	if err != nil {
		return nil, fmt.Errorf("llm: repair complete: %w", err)
	}
	scenario2, errs2 := ValidateScenario(raw2, carrier.ID)
	if scenario2 != nil && len(errs2) == 0 {
		return scenario2, nil
	}
	return nil, ErrInvalidModelOutput
}

// GenerateComparison builds a comparison narrative for two profiles over
// their highest-tension carriers.
func GenerateComparison(ctx context.Context, a, b schema.Profile, top []schema.ProfileTensionCarrier, opts Options) (*schema.Comparison, error) {
	if len(top) == 0 {
		return nil, fmt.Errorf("llm: no tension carriers to compare on")
	}
	provider, err := NewProvider(opts.Provider, opts.Model)
	if err != nil {
		return nil, fmt.Errorf("llm: create provider: %w", err)
	}

	sysPrompt := comparisonSystemPrompt
	userPrompt := buildComparisonUserPrompt(a, b, top)
	debugPrompts(opts, sysPrompt, userPrompt)

	raw, err := provider.Complete(ctx, sysPrompt, userPrompt, opts.MaxTokens, opts.Temperature)
	if err != nil {
		return nil, fmt.Errorf("llm: complete: %w", err)
	}
	cmp, errs := ValidateComparison(raw)
	if cmp != nil && len(errs) == 0 {
		return cmp, nil
	}

	raw2, err := provider.Complete(ctx, sysPrompt, buildRepairPrompt(userPrompt, raw, errs), opts.MaxTokens, opts.Temperature)
	if err != nil {
		return nil, fmt.Errorf("llm: repair complete: %w", err)
	}
	cmp2, errs2 := ValidateComparison(raw2)
	if cmp2 != nil && len(errs2) == 0 {
		return cmp2, nil
	}
	return nil, ErrInvalidModelOutput
}

func debugPrompts(opts Options, sysPrompt, userPrompt string) {
	if !opts.Debug {
		return
	}
	// Prompts contain only catalog text and score summaries, never user
	// documents, so printing them is safe.
	fmt.Fprintf(os.Stderr, "=== DEBUG: system prompt ===\n%s\n", sysPrompt)
	fmt.Fprintf(os.Stderr, "=== DEBUG: user prompt ===\n%s\n", userPrompt)
}

// fenceRe matches a markdown code fence block (``` or ~~~) with an optional
// language tag and captures the content between the fences.
var fenceRe = regexp.MustCompile("(?s)^(?:`{3}|~{3})[^\\n]*\\n(.*?)(?:`{3}|~{3})\\s*$")

// openFenceRe matches only an opening fence line, for truncated responses.
var openFenceRe = regexp.MustCompile("^(?:`{3}|~{3})[^\\n]*\\n")

// stripMarkdownFences removes leading/trailing markdown code fences that
// models sometimes wrap around JSON output.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	if loc := openFenceRe.FindStringIndex(s); loc != nil {
		return strings.TrimSpace(s[loc[1]:])
	}
	return s
}

// invalidJSONEscapeRe matches a backslash followed by any character that is
// not a valid JSON string escape. Models occasionally emit unescaped
// backslashes inside JSON strings; the sanitizer double-escapes them.
var invalidJSONEscapeRe = regexp.MustCompile(`\\([^"\\/bfnrtu])`)

func fixInvalidJSONEscapes(s string) string {
	return invalidJSONEscapeRe.ReplaceAllString(s, `\\$1`)
}

// ValidateScenario parses and validates a raw scenario response. The
// carrier id is forced to the requested one regardless of what the model
// echoed back. Returns a nil scenario on parse failure; field problems are
// reported alongside the parsed value.
func ValidateScenario(raw, carrierID string) (*schema.Scenario, []ValidationError) {
	var errs []ValidationError
	raw = stripMarkdownFences(raw)

	var sc schema.Scenario
	if err := json.Unmarshal([]byte(raw), &sc); err != nil {
		fixed := fixInvalidJSONEscapes(raw)
		if err2 := json.Unmarshal([]byte(fixed), &sc); err2 != nil {
			return nil, []ValidationError{{Field: "json_parse", Message: err.Error()}}
		}
	}
	sc.CarrierID = carrierID

	if sc.Title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "title is required"})
	}
	if sc.Narrative == "" {
		errs = append(errs, ValidationError{Field: "narrative", Message: "narrative is required"})
	}
	if sc.Question == "" {
		errs = append(errs, ValidationError{Field: "question", Message: "question is required"})
	}
	if len(sc.Options) != 2 {
		errs = append(errs, ValidationError{
			Field:   "options",
			Message: fmt.Sprintf("exactly 2 options required, got %d", len(sc.Options)),
		})
	}
	poles := map[string]int{}
	for i, o := range sc.Options {
		if o.Label == "" || o.Description == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("options[%d]", i),
				Message: "label and description are required",
			})
		}
		switch o.CarrierPole {
		case "low", "high":
			poles[o.CarrierPole]++
		default:
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("options[%d].carrier_pole", i),
				Message: fmt.Sprintf("must be \"low\" or \"high\", got %q", o.CarrierPole),
			})
		}
	}
	if len(sc.Options) == 2 && (poles["low"] != 1 || poles["high"] != 1) {
		errs = append(errs, ValidationError{
			Field:   "options",
			Message: "one option must map to each carrier pole",
		})
	}
	return &sc, errs
}

// ValidateComparison parses and validates a raw comparison response.
func ValidateComparison(raw string) (*schema.Comparison, []ValidationError) {
	var errs []ValidationError
	raw = stripMarkdownFences(raw)

	var cmp schema.Comparison
	if err := json.Unmarshal([]byte(raw), &cmp); err != nil {
		fixed := fixInvalidJSONEscapes(raw)
		if err2 := json.Unmarshal([]byte(fixed), &cmp); err2 != nil {
			return nil, []ValidationError{{Field: "json_parse", Message: err.Error()}}
		}
	}
	if cmp.Summary == "" {
		errs = append(errs, ValidationError{Field: "summary", Message: "summary is required"})
	}
	if len(cmp.Carriers) == 0 {
		errs = append(errs, ValidationError{Field: "carriers", Message: "at least one carrier narrative is required"})
	}
	for i, c := range cmp.Carriers {
		if catalog.CarrierIndex(c.CarrierID) < 0 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("carriers[%d].carrier_id", i),
				Message: fmt.Sprintf("unknown carrier id %q", c.CarrierID),
			})
		}
		if c.Narrative == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("carriers[%d].narrative", i),
				Message: "narrative is required",
			})
		}
	}
	return &cmp, errs
}

const scenarioSystemPrompt = `You are a scenario writer for a values exploration tool.

Output ONLY valid JSON conforming to the schema below. No prose, no markdown, no explanation outside the JSON.

Write a realistic everyday decision scenario built around the given situational dimension. The two options must land cleanly on the dimension's low and high poles and must not name any psychological value explicitly.

Output schema (JSON only):
{
  "title": "...",
  "narrative": "2-4 sentences setting the scene",
  "question": "the decision the reader faces",
  "options": [
    {"label": "...", "description": "...", "carrier_pole": "low"},
    {"label": "...", "description": "...", "carrier_pole": "high"}
  ]
}
`

const comparisonSystemPrompt = `You are a comparison writer for a values exploration tool.

Output ONLY valid JSON conforming to the schema below. No prose, no markdown, no explanation outside the JSON.

For each listed situational dimension, describe in plain language how the two people would experience it differently, grounded in the sensitivity numbers provided. Do not invent dimensions that are not listed.

Output schema (JSON only):
{
  "summary": "2-3 sentence overview of where the two differ most",
  "carriers": [
    {"carrier_id": "<id from the input>", "narrative": "..."}
  ]
}
`

// buildScenarioUserPrompt assembles the scenario prompt: the carrier's
// poles and parameters plus the profile's strongest polarities on it.
func buildScenarioUserPrompt(prof schema.Profile, carrier schema.Carrier) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SITUATIONAL DIMENSION: %s — %s\n", carrier.Name, carrier.Description)
	for _, p := range carrier.Parameters {
		fmt.Fprintf(&sb, "  parameter %s: low=%q high=%q\n", p.Name, p.LowLabel, p.HighLabel)
	}

	sb.WriteString("\nSTRONGEST VALUE POLARITIES ON THIS DIMENSION (for calibration, never name these in the text):\n")
	type vp struct {
		code string
		pol  float64
	}
	var vps []vp
	for _, v := range catalog.Values() {
		p := polarity.GetPolarity(v.Code, carrier.ID)
		if p >= 0.5 || p <= -0.5 {
			vps = append(vps, vp{v.Code, p})
		}
	}
	sort.SliceStable(vps, func(i, j int) bool { return absf(vps[i].pol) > absf(vps[j].pol) })
	for _, e := range vps {
		fmt.Fprintf(&sb, "  %s (%s): %+.1f", e.code, catalog.ValueLabel(e.code), e.pol)
		if r, ok := polarity.Rationale(e.code, carrier.ID); ok {
			fmt.Fprintf(&sb, " — %s", r)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\nREADER PROFILE %q, top-weighted values:\n", prof.Name)
	for _, line := range topWeightLines(prof.Scores, 5) {
		sb.WriteString(line)
	}

	sb.WriteString("\nProduce the JSON scenario now.")
	return sb.String()
}

// buildComparisonUserPrompt assembles the comparison prompt from the top
// tension carriers.
func buildComparisonUserPrompt(a, b schema.Profile, top []schema.ProfileTensionCarrier) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PERSON A %q, top-weighted values:\n", a.Name)
	for _, line := range topWeightLines(a.Scores, 5) {
		sb.WriteString(line)
	}
	fmt.Fprintf(&sb, "\nPERSON B %q, top-weighted values:\n", b.Name)
	for _, line := range topWeightLines(b.Scores, 5) {
		sb.WriteString(line)
	}

	sb.WriteString("\nHIGHEST-TENSION DIMENSIONS:\n")
	for _, t := range top {
		fmt.Fprintf(&sb, "  %s (%s): tension %.2f, A sensitivity %+.2f, B sensitivity %+.2f\n",
			t.Carrier.ID, t.Carrier.Name, t.TensionScore,
			t.Sensitivities[a.Name], t.Sensitivities[b.Name])
	}

	sb.WriteString("\nProduce the JSON comparison now.")
	return sb.String()
}

// topWeightLines lists a profile's k strongest values by |weight|.
func topWeightLines(scores schema.ValueScores, k int) []string {
	type wv struct {
		code string
		w    float64
	}
	var wvs []wv
	for _, v := range catalog.Values() {
		wvs = append(wvs, wv{v.Code, scores.Weight(v.Code)})
	}
	sort.SliceStable(wvs, func(i, j int) bool { return absf(wvs[i].w) > absf(wvs[j].w) })
	if k > len(wvs) {
		k = len(wvs)
	}
	var out []string
	for _, e := range wvs[:k] {
		out = append(out, fmt.Sprintf("  %s (%s): weight %+.2f\n", e.code, catalog.ValueLabel(e.code), e.w))
	}
	return out
}

// buildRepairPrompt constructs the repair message: the original prompt, the
// invalid response, and the validation errors.
func buildRepairPrompt(originalUserPrompt, previousResponse string, errs []ValidationError) string {
	var sb strings.Builder
	sb.WriteString(originalUserPrompt)
	sb.WriteString("\n\nYour previous response was:\n")
	sb.WriteString(previousResponse)
	sb.WriteString("\n\nThat response was invalid. Errors:\n")
	for _, e := range errs {
		fmt.Fprintf(&sb, "  - %s\n", e.Error())
	}
	sb.WriteString("\nPlease output only the corrected JSON conforming to the schema. Do not repeat the error.")
	return sb.String()
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// ── Provider dispatch ─────────────────────────────────────────────────────────

// defaultNewProvider dispatches to the appropriate provider implementation.
func defaultNewProvider(providerName, model string) (Provider, error) {
	switch strings.ToLower(providerName) {
	case "anthropic", "":
		return newAnthropicProvider(model)
	case "openai":
		return newOpenAIProvider(model)
	case "google":
		return newGoogleProvider(model)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", providerName)
	}
}
