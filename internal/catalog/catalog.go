// Package catalog holds the two static catalogs the engine is built on: the
// 19 refined Schwartz values and the 12 situational carriers. Both are
// immutable, defined once at process start, and validated in init. Catalog
// order is the canonical tie-break order for every ranking in the engine.
package catalog

import (
	"fmt"

	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

// NumValues and NumCarriers are the fixed catalog sizes. The polarity matrix
// and every dense projection in the engine depend on them.
const (
	NumValues   = 19
	NumCarriers = 12
)

// values is the canonical ordered value catalog.
var values = []schema.SchwartzValue{
	{Code: "SDT", Label: "Self-Direction: Thought", Group: schema.GroupOpenness,
		Description: "Freedom to cultivate one's own ideas and abilities."},
	{Code: "SDA", Label: "Self-Direction: Action", Group: schema.GroupOpenness,
		Description: "Freedom to determine one's own actions."},
	{Code: "STI", Label: "Stimulation", Group: schema.GroupOpenness,
		Description: "Excitement, novelty, and change."},
	{Code: "HED", Label: "Hedonism", Group: schema.GroupOpenness,
		Description: "Pleasure and sensuous gratification."},
	{Code: "ACH", Label: "Achievement", Group: schema.GroupSelfEnhancement,
		Description: "Success according to social standards."},
	{Code: "POD", Label: "Power: Dominance", Group: schema.GroupSelfEnhancement,
		Description: "Power through exercising control over people."},
	{Code: "POR", Label: "Power: Resources", Group: schema.GroupSelfEnhancement,
		Description: "Power through control of material and social resources."},
	{Code: "FAC", Label: "Face", Group: schema.GroupSelfEnhancement,
		Description: "Maintaining one's public image and avoiding humiliation."},
	{Code: "SEP", Label: "Security: Personal", Group: schema.GroupConservation,
		Description: "Safety in one's immediate environment."},
	{Code: "SES", Label: "Security: Societal", Group: schema.GroupConservation,
		Description: "Safety and stability in the wider society."},
	{Code: "TRD", Label: "Tradition", Group: schema.GroupConservation,
		Description: "Maintaining and preserving cultural, family, or religious traditions."},
	{Code: "COR", Label: "Conformity: Rules", Group: schema.GroupConservation,
		Description: "Compliance with rules, laws, and formal obligations."},
	{Code: "COI", Label: "Conformity: Interpersonal", Group: schema.GroupConservation,
		Description: "Avoidance of upsetting or harming other people."},
	{Code: "HUM", Label: "Humility", Group: schema.GroupConservation,
		Description: "Recognizing one's insignificance in the larger scheme of things."},
	{Code: "BEC", Label: "Benevolence: Caring", Group: schema.GroupSelfTranscendence,
		Description: "Devotion to the welfare of in-group members."},
	{Code: "BED", Label: "Benevolence: Dependability", Group: schema.GroupSelfTranscendence,
		Description: "Being a reliable and trustworthy member of the in-group."},
	{Code: "UNC", Label: "Universalism: Concern", Group: schema.GroupSelfTranscendence,
		Description: "Commitment to equality, justice, and protection for all people."},
	{Code: "UNN", Label: "Universalism: Nature", Group: schema.GroupSelfTranscendence,
		Description: "Preservation of the natural environment."},
	{Code: "UNT", Label: "Universalism: Tolerance", Group: schema.GroupSelfTranscendence,
		Description: "Acceptance and understanding of those who are different from oneself."},
}

// carriers is the canonical ordered carrier catalog. Each carrier's
// parameters tune how strongly its poles are presented in generated
// scenarios; they do not affect polarity math.
var carriers = []schema.Carrier{
	{ID: "risk", Name: "Risk / Uncertainty",
		Description: "How much uncertainty and potential for loss the situation carries.",
		Parameters: []schema.CarrierParameter{
			{ID: "stakes", Name: "Stakes", LowLabel: "Recoverable", HighLabel: "Irreversible", DefaultValue: 0.5},
			{ID: "ambiguity", Name: "Ambiguity", LowLabel: "Known odds", HighLabel: "Unknown odds", DefaultValue: 0.5},
		}},
	{ID: "authority", Name: "Control / Authority",
		Description: "How much the situation puts one person in charge of others.",
		Parameters: []schema.CarrierParameter{
			{ID: "span", Name: "Span of control", LowLabel: "Self only", HighLabel: "Many others", DefaultValue: 0.5},
			{ID: "formality", Name: "Formality", LowLabel: "Informal influence", HighLabel: "Formal mandate", DefaultValue: 0.4},
		}},
	{ID: "resources", Name: "Resource Abundance",
		Description: "How much money, material, and backing the situation provides.",
		Parameters: []schema.CarrierParameter{
			{ID: "scale", Name: "Scale", LowLabel: "Shoestring", HighLabel: "Well funded", DefaultValue: 0.5},
		}},
	{ID: "novelty", Name: "Novelty / Change",
		Description: "How unfamiliar the situation is and how fast it changes.",
		Parameters: []schema.CarrierParameter{
			{ID: "pace", Name: "Pace of change", LowLabel: "Settled", HighLabel: "Constant flux", DefaultValue: 0.6},
		}},
	{ID: "structure", Name: "Structure / Rules",
		Description: "How tightly the situation is governed by procedure and precedent.",
		Parameters: []schema.CarrierParameter{
			{ID: "codification", Name: "Codification", LowLabel: "Improvised", HighLabel: "Rule-bound", DefaultValue: 0.5},
			{ID: "enforcement", Name: "Enforcement", LowLabel: "Advisory", HighLabel: "Strict", DefaultValue: 0.4},
		}},
	{ID: "visibility", Name: "Social Visibility",
		Description: "How publicly one's conduct and results are seen and judged.",
		Parameters: []schema.CarrierParameter{
			{ID: "audience", Name: "Audience size", LowLabel: "Private", HighLabel: "Public stage", DefaultValue: 0.5},
		}},
	{ID: "collaboration", Name: "Collaboration Intensity",
		Description: "How much the situation requires close, continuous work with others.",
		Parameters: []schema.CarrierParameter{
			{ID: "coupling", Name: "Coupling", LowLabel: "Solo work", HighLabel: "Tight teamwork", DefaultValue: 0.5},
		}},
	{ID: "autonomy", Name: "Autonomy / Independence",
		Description: "How much freedom the situation grants to decide one's own course.",
		Parameters: []schema.CarrierParameter{
			{ID: "latitude", Name: "Decision latitude", LowLabel: "Directed", HighLabel: "Self-governed", DefaultValue: 0.6},
		}},
	{ID: "competition", Name: "Competitive Pressure",
		Description: "How directly the situation pits people against each other.",
		Parameters: []schema.CarrierParameter{
			{ID: "ranking", Name: "Ranking", LowLabel: "No comparison", HighLabel: "Explicit ranking", DefaultValue: 0.5},
		}},
	{ID: "care", Name: "Care Responsibility",
		Description: "How much the situation makes one responsible for others' wellbeing.",
		Parameters: []schema.CarrierParameter{
			{ID: "dependency", Name: "Dependency", LowLabel: "Self-sufficient peers", HighLabel: "Dependent on you", DefaultValue: 0.5},
		}},
	{ID: "tempo", Name: "Time Pressure / Tempo",
		Description: "How compressed the deadlines are and how little slack exists.",
		Parameters: []schema.CarrierParameter{
			{ID: "deadline", Name: "Deadline pressure", LowLabel: "Open-ended", HighLabel: "Hard deadlines", DefaultValue: 0.5},
		}},
	{ID: "stability", Name: "Long-term Stability",
		Description: "How durable and predictable the situation's future is.",
		Parameters: []schema.CarrierParameter{
			{ID: "horizon", Name: "Horizon", LowLabel: "Short stint", HighLabel: "Decades-long", DefaultValue: 0.5},
		}},
}

var (
	valueByCode  = make(map[string]schema.SchwartzValue, NumValues)
	valueIndex   = make(map[string]int, NumValues)
	carrierByID  = make(map[string]schema.Carrier, NumCarriers)
	carrierIndex = make(map[string]int, NumCarriers)
)

func init() {
	if len(values) != NumValues {
		panic(fmt.Sprintf("catalog: expected %d values, have %d", NumValues, len(values)))
	}
	if len(carriers) != NumCarriers {
		panic(fmt.Sprintf("catalog: expected %d carriers, have %d", NumCarriers, len(carriers)))
	}
	validGroups := map[schema.HigherOrderGroup]bool{
		schema.GroupOpenness:          true,
		schema.GroupSelfEnhancement:   true,
		schema.GroupConservation:      true,
		schema.GroupSelfTranscendence: true,
	}
	for i, v := range values {
		if len(v.Code) != 3 {
			panic(fmt.Sprintf("catalog: value code %q is not 3 letters", v.Code))
		}
		if _, dup := valueByCode[v.Code]; dup {
			panic(fmt.Sprintf("catalog: duplicate value code %q", v.Code))
		}
		if !validGroups[v.Group] {
			panic(fmt.Sprintf("catalog: value %q has unknown group %q", v.Code, v.Group))
		}
		valueByCode[v.Code] = v
		valueIndex[v.Code] = i
	}
	for i, c := range carriers {
		if _, dup := carrierByID[c.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate carrier id %q", c.ID))
		}
		for _, p := range c.Parameters {
			if p.DefaultValue < 0 || p.DefaultValue > 1 {
				panic(fmt.Sprintf("catalog: carrier %q parameter %q default %v outside [0,1]",
					c.ID, p.ID, p.DefaultValue))
			}
		}
		carrierByID[c.ID] = c
		carrierIndex[c.ID] = i
	}
}

// Values returns the value catalog in canonical order. The returned slice
// must not be modified.
func Values() []schema.SchwartzValue { return values }

// Carriers returns the carrier catalog in canonical order. The returned
// slice must not be modified.
func Carriers() []schema.Carrier { return carriers }

// ValueByCode looks up a value definition. Unknown codes are a caller
// contract violation at the input boundary, reported as an error.
func ValueByCode(code string) (schema.SchwartzValue, error) {
	v, ok := valueByCode[code]
	if !ok {
		return schema.SchwartzValue{}, fmt.Errorf("catalog: unknown value code %q", code)
	}
	return v, nil
}

// CarrierByID looks up a carrier definition.
func CarrierByID(id string) (schema.Carrier, error) {
	c, ok := carrierByID[id]
	if !ok {
		return schema.Carrier{}, fmt.Errorf("catalog: unknown carrier id %q", id)
	}
	return c, nil
}

// ValueIndex returns the canonical catalog position of code, or -1.
func ValueIndex(code string) int {
	if i, ok := valueIndex[code]; ok {
		return i
	}
	return -1
}

// CarrierIndex returns the canonical catalog position of id, or -1.
func CarrierIndex(id string) int {
	if i, ok := carrierIndex[id]; ok {
		return i
	}
	return -1
}

// NewNeutralScores returns a fresh profile with every value at the neutral
// baseline.
func NewNeutralScores() schema.ValueScores {
	s := make(schema.ValueScores, NumValues)
	for _, v := range values {
		s[v.Code] = schema.NeutralScore
	}
	return s
}

// ValueLabel returns the display label for code, or the code itself when
// unknown. Rendering helper; never fails.
func ValueLabel(code string) string {
	if v, ok := valueByCode[code]; ok {
		return v.Label
	}
	return code
}
