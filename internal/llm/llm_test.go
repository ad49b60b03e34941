package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

// mockProvider is a test double for Provider.
type mockProvider struct {
	responses []string // returned in order; last entry is repeated if exhausted
	callCount int
}

func (m *mockProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	i := m.callCount
	if i >= len(m.responses) {
		i = len(m.responses) - 1
	}
	m.callCount++
	return m.responses[i], nil
}

// installMock swaps NewProvider for a mock and restores it on cleanup.
func installMock(t *testing.T, m *mockProvider) {
	t.Helper()
	orig := NewProvider
	NewProvider = func(providerName, model string) (Provider, error) { return m, nil }
	t.Cleanup(func() { NewProvider = orig })
}

const validScenario = `{
  "title": "The Friday Deploy",
  "narrative": "Your team has a release candidate ready late Friday afternoon. Shipping now gets the feature out before the weekend, waiting means a calm Monday rollout.",
  "question": "Do you ship tonight or wait until Monday?",
  "options": [
    {"label": "Ship tonight", "description": "Push the release now and watch the dashboards.", "carrier_pole": "high"},
    {"label": "Wait for Monday", "description": "Hold the release until the full team is back.", "carrier_pole": "low"}
  ]
}`

func TestValidateScenario_Valid(t *testing.T) {
	sc, errs := ValidateScenario(validScenario, "risk")
	if len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if sc.CarrierID != "risk" {
		t.Errorf("CarrierID = %q, want risk (forced)", sc.CarrierID)
	}
	if sc.Title != "The Friday Deploy" {
		t.Errorf("Title = %q", sc.Title)
	}
	if len(sc.Options) != 2 {
		t.Fatalf("Options = %d, want 2", len(sc.Options))
	}
}

func TestValidateScenario_Fenced(t *testing.T) {
	fenced := "```json\n" + validScenario + "\n```"
	sc, errs := ValidateScenario(fenced, "risk")
	if len(errs) != 0 {
		t.Fatalf("fenced JSON rejected: %v", errs)
	}
	if sc.Question == "" {
		t.Error("fenced JSON lost content")
	}
}

func TestValidateScenario_ForcesCarrierID(t *testing.T) {
	echoed := `{"carrier_id": "novelty", "title": "t", "narrative": "n", "question": "q",
		"options": [
			{"label": "a", "description": "d", "carrier_pole": "low"},
			{"label": "b", "description": "d", "carrier_pole": "high"}
		]}`
	sc, errs := ValidateScenario(echoed, "risk")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if sc.CarrierID != "risk" {
		t.Errorf("CarrierID = %q, want requested carrier over model echo", sc.CarrierID)
	}
}

func TestValidateScenario_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"unparseable", `not json at all`},
		{"missing title", `{"narrative": "n", "question": "q", "options": [
			{"label": "a", "description": "d", "carrier_pole": "low"},
			{"label": "b", "description": "d", "carrier_pole": "high"}]}`},
		{"one option", `{"title": "t", "narrative": "n", "question": "q", "options": [
			{"label": "a", "description": "d", "carrier_pole": "low"}]}`},
		{"both options same pole", `{"title": "t", "narrative": "n", "question": "q", "options": [
			{"label": "a", "description": "d", "carrier_pole": "high"},
			{"label": "b", "description": "d", "carrier_pole": "high"}]}`},
		{"bad pole", `{"title": "t", "narrative": "n", "question": "q", "options": [
			{"label": "a", "description": "d", "carrier_pole": "middle"},
			{"label": "b", "description": "d", "carrier_pole": "high"}]}`},
	}
	for _, c := range cases {
		if _, errs := ValidateScenario(c.raw, "risk"); len(errs) == 0 {
			t.Errorf("%s: expected validation errors", c.name)
		}
	}
}

func TestValidateComparison(t *testing.T) {
	valid := `{"summary": "They diverge most on risk.", "carriers": [
		{"carrier_id": "risk", "narrative": "One leans in, the other steps back."}]}`
	cmp, errs := ValidateComparison(valid)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if cmp.Carriers[0].CarrierID != "risk" {
		t.Errorf("CarrierID = %q", cmp.Carriers[0].CarrierID)
	}

	cases := []struct {
		name string
		raw  string
	}{
		{"unknown carrier", `{"summary": "s", "carriers": [{"carrier_id": "vibes", "narrative": "n"}]}`},
		{"no carriers", `{"summary": "s", "carriers": []}`},
		{"no summary", `{"carriers": [{"carrier_id": "risk", "narrative": "n"}]}`},
		{"empty narrative", `{"summary": "s", "carriers": [{"carrier_id": "risk", "narrative": ""}]}`},
	}
	for _, c := range cases {
		if _, errs := ValidateComparison(c.raw); len(errs) == 0 {
			t.Errorf("%s: expected validation errors", c.name)
		}
	}
}

func TestStripMarkdownFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"~~~\n{\"a\":1}\n~~~", `{"a":1}`},
		{"```json\n{\"a\":1}", `{"a":1}`}, // truncated: opening fence only
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, c := range cases {
		if got := stripMarkdownFences(c.in); got != c.want {
			t.Errorf("stripMarkdownFences(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFixInvalidJSONEscapes(t *testing.T) {
	in := `{"narrative": "C:\Users\test"}`
	got := fixInvalidJSONEscapes(in)
	want := `{"narrative": "C:\\Users\\test"}`
	if got != want {
		t.Errorf("fixInvalidJSONEscapes = %q, want %q", got, want)
	}
	// Valid escapes are left alone.
	valid := `{"narrative": "line\none \"two\""}`
	if got := fixInvalidJSONEscapes(valid); got != valid {
		t.Errorf("valid escapes mangled: %q", got)
	}
}

func TestGenerateScenario_FirstTry(t *testing.T) {
	mock := &mockProvider{responses: []string{validScenario}}
	installMock(t, mock)

	prof := schema.Profile{Name: "ana", Scores: catalog.NewNeutralScores()}
	sc, err := GenerateScenario(context.Background(), prof, "risk", Options{})
	if err != nil {
		t.Fatalf("GenerateScenario: %v", err)
	}
	if sc.CarrierID != "risk" {
		t.Errorf("CarrierID = %q, want risk", sc.CarrierID)
	}
	if mock.callCount != 1 {
		t.Errorf("provider called %d times, want 1", mock.callCount)
	}
}

func TestGenerateScenario_RepairRecovers(t *testing.T) {
	mock := &mockProvider{responses: []string{`{"title": "broken"`, validScenario}}
	installMock(t, mock)

	prof := schema.Profile{Name: "ana", Scores: catalog.NewNeutralScores()}
	sc, err := GenerateScenario(context.Background(), prof, "risk", Options{})
	if err != nil {
		t.Fatalf("GenerateScenario after repair: %v", err)
	}
	if sc == nil || sc.Title == "" {
		t.Error("repair attempt did not produce a scenario")
	}
	if mock.callCount != 2 {
		t.Errorf("provider called %d times, want 2", mock.callCount)
	}
}

func TestGenerateScenario_RepairFails(t *testing.T) {
	mock := &mockProvider{responses: []string{`nope`, `still nope`}}
	installMock(t, mock)

	prof := schema.Profile{Name: "ana", Scores: catalog.NewNeutralScores()}
	_, err := GenerateScenario(context.Background(), prof, "risk", Options{})
	if !errors.Is(err, ErrInvalidModelOutput) {
		t.Errorf("err = %v, want ErrInvalidModelOutput", err)
	}
	if mock.callCount != 2 {
		t.Errorf("provider called %d times, want exactly 2", mock.callCount)
	}
}

func TestGenerateScenario_UnknownCarrier(t *testing.T) {
	mock := &mockProvider{responses: []string{validScenario}}
	installMock(t, mock)

	prof := schema.Profile{Name: "ana", Scores: catalog.NewNeutralScores()}
	if _, err := GenerateScenario(context.Background(), prof, "vibes", Options{}); err == nil {
		t.Error("unknown carrier: expected error")
	}
	if mock.callCount != 0 {
		t.Error("provider called despite invalid carrier")
	}
}

func TestGenerateComparison(t *testing.T) {
	mock := &mockProvider{responses: []string{
		`{"summary": "They split on risk.", "carriers": [{"carrier_id": "risk", "narrative": "Opposite instincts."}]}`,
	}}
	installMock(t, mock)

	a := schema.Profile{Name: "ana", Scores: catalog.NewNeutralScores()}
	b := schema.Profile{Name: "ben", Scores: catalog.NewNeutralScores()}
	top := []schema.ProfileTensionCarrier{{
		Carrier:             schema.Carrier{ID: "risk", Name: "Risk"},
		TensionScore:        1.8,
		ConflictingProfiles: [2]string{"ana", "ben"},
		Sensitivities:       map[string]float64{"ana": 0.9, "ben": -0.9},
	}}
	cmp, err := GenerateComparison(context.Background(), a, b, top, Options{})
	if err != nil {
		t.Fatalf("GenerateComparison: %v", err)
	}
	if cmp.Summary == "" || len(cmp.Carriers) != 1 {
		t.Errorf("unexpected comparison: %+v", cmp)
	}

	if _, err := GenerateComparison(context.Background(), a, b, nil, Options{}); err == nil {
		t.Error("empty tension list: expected error")
	}
}

func TestBuildScenarioUserPrompt(t *testing.T) {
	carrier, err := catalog.CarrierByID("risk")
	if err != nil {
		t.Fatal(err)
	}
	scores := catalog.NewNeutralScores()
	scores["STI"] = 7.0
	prompt := buildScenarioUserPrompt(schema.Profile{Name: "ana", Scores: scores}, carrier)
	// Strong risk polarities and the profile name must both appear.
	for _, want := range []string{"STI", "ana"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildRepairPrompt(t *testing.T) {
	prompt := buildRepairPrompt("ORIGINAL", "BAD RESPONSE", []ValidationError{
		{Field: "title", Message: "title is required"},
	})
	for _, want := range []string{"ORIGINAL", "BAD RESPONSE", "title is required"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("repair prompt missing %q", want)
		}
	}
}
