package clarify

import (
	"math"
	"reflect"
	"testing"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

// allHigh returns a confidence map with every value marked high.
func allHigh() map[string]schema.Confidence {
	m := make(map[string]schema.Confidence, catalog.NumValues)
	for _, v := range catalog.Values() {
		m[v.Code] = schema.ConfidenceHigh
	}
	return m
}

func TestAnalyze_AllConfident(t *testing.T) {
	res, err := Analyze(catalog.NewNeutralScores(), allHigh(), 2, 0.5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.CanClarify {
		t.Error("CanClarify = true, want false")
	}
	if res.ReasonCode != schema.ReasonAllConfident {
		t.Errorf("ReasonCode = %q, want ALL_CONFIDENT", res.ReasonCode)
	}
	if len(res.SelectedCarriers) != 0 {
		t.Errorf("SelectedCarriers = %d entries, want 0", len(res.SelectedCarriers))
	}
}

func TestAnalyze_OneUndecided(t *testing.T) {
	conf := allHigh()
	conf["STI"] = schema.ConfidenceMedium
	res, err := Analyze(catalog.NewNeutralScores(), conf, 2, 0.5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.CanClarify {
		t.Error("CanClarify = true, want false")
	}
	if res.ReasonCode != schema.ReasonTooFewUndecided {
		t.Errorf("ReasonCode = %q, want TOO_FEW_UNDECIDED", res.ReasonCode)
	}
	if len(res.UndecidedValues) != 1 || res.UndecidedValues[0].Code != "STI" {
		t.Errorf("UndecidedValues = %v, want [STI]", res.UndecidedValues)
	}
}

// TestAnalyze_EndToEnd runs the canonical scenario: SDA and STI medium,
// HED unspecified, everything else high, maxCarriers=2, minSpread=0.5.
func TestAnalyze_EndToEnd(t *testing.T) {
	conf := allHigh()
	conf["SDA"] = schema.ConfidenceMedium
	conf["STI"] = schema.ConfidenceMedium
	conf["HED"] = schema.ConfidenceUnspecified

	res, err := Analyze(catalog.NewNeutralScores(), conf, 2, 0.5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !res.CanClarify {
		t.Fatalf("CanClarify = false (%s: %s)", res.ReasonCode, res.Reason)
	}

	var codes []string
	for _, u := range res.UndecidedValues {
		codes = append(codes, u.Code)
	}
	if !reflect.DeepEqual(codes, []string{"SDA", "STI", "HED"}) {
		t.Errorf("undecided codes = %v, want [SDA STI HED]", codes)
	}

	if len(res.SelectedCarriers) > 2 {
		t.Errorf("selected %d carriers, want <= 2", len(res.SelectedCarriers))
	}
	for _, cs := range res.SelectedCarriers {
		if cs.Spread < 0.5 {
			t.Errorf("carrier %s selected with spread %v < 0.5", cs.Carrier.ID, cs.Spread)
		}
	}
	for i := 1; i < len(res.SelectedCarriers); i++ {
		if res.SelectedCarriers[i].Spread > res.SelectedCarriers[i-1].Spread {
			t.Error("selected carriers not sorted by spread descending")
		}
	}

	// Over {SDA, STI, HED} the widest spread is tempo: STI +0.6 vs HED -0.6.
	if got := res.SelectedCarriers[0].Carrier.ID; got != "tempo" {
		t.Errorf("top carrier = %s, want tempo", got)
	}
	if got := res.SelectedCarriers[0].Spread; math.Abs(got-1.2) > 1e-9 {
		t.Errorf("top spread = %v, want 1.2", got)
	}
}

func TestAnalyze_NoQualifyingCarrier(t *testing.T) {
	conf := allHigh()
	conf["SDA"] = schema.ConfidenceMedium
	conf["STI"] = schema.ConfidenceMedium
	res, err := Analyze(catalog.NewNeutralScores(), conf, 2, 5.0)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.CanClarify {
		t.Error("CanClarify = true with impossible threshold")
	}
	if res.ReasonCode != schema.ReasonNoQualifyingCarrier {
		t.Errorf("ReasonCode = %q, want NO_QUALIFYING_CARRIER", res.ReasonCode)
	}
}

func TestAnalyze_MissingTagCountsAsUndecided(t *testing.T) {
	// An empty confidence map means nothing was confirmed: all 19 values
	// are undecided.
	undecided := UndecidedValues(catalog.NewNeutralScores(), nil)
	if len(undecided) != catalog.NumValues {
		t.Errorf("untagged profile has %d undecided values, want %d",
			len(undecided), catalog.NumValues)
	}
	for _, u := range undecided {
		if u.Confidence != schema.ConfidenceUnspecified {
			t.Errorf("%s confidence = %q, want unspecified", u.Code, u.Confidence)
		}
	}
}

func TestAnalyze_PolePartition(t *testing.T) {
	conf := allHigh()
	conf["STI"] = schema.ConfidenceMedium
	conf["SEP"] = schema.ConfidenceMedium
	res, err := Analyze(catalog.NewNeutralScores(), conf, 1, 0.5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !res.CanClarify {
		t.Fatalf("CanClarify = false (%s)", res.Reason)
	}
	// STI and SEP oppose hardest on risk: +0.9 vs -0.9.
	top := res.SelectedCarriers[0]
	if top.Carrier.ID != "risk" {
		t.Fatalf("top carrier = %s, want risk", top.Carrier.ID)
	}
	if len(top.HighPolarity) != 1 || top.HighPolarity[0].Code != "STI" {
		t.Errorf("high pole = %v, want [STI]", top.HighPolarity)
	}
	if len(top.LowPolarity) != 1 || top.LowPolarity[0].Code != "SEP" {
		t.Errorf("low pole = %v, want [SEP]", top.LowPolarity)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	conf := allHigh()
	conf["SDA"] = schema.ConfidenceMedium
	conf["STI"] = schema.ConfidenceMedium
	conf["HED"] = schema.ConfidenceUnspecified
	first, err := Analyze(catalog.NewNeutralScores(), conf, 3, 0.4)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Analyze(catalog.NewNeutralScores(), conf, 3, 0.4)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("Analyze is not deterministic for identical inputs")
		}
	}
}

func TestAnalyze_InvalidArgs(t *testing.T) {
	if _, err := Analyze(catalog.NewNeutralScores(), nil, 0, 0.5); err == nil {
		t.Error("maxCarriers 0: expected error")
	}
	if _, err := Analyze(catalog.NewNeutralScores(), nil, 1, -0.1); err == nil {
		t.Error("negative minSpread: expected error")
	}
}
