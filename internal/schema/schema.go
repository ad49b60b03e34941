// Package schema defines all canonical data types for the values-explorer
// engine: the static catalog records, the mutable value profile, and the
// derived result records returned by the analysis packages.
package schema

// HigherOrderGroup is one of the four Schwartz higher-order value groups.
type HigherOrderGroup string

const (
	GroupOpenness          HigherOrderGroup = "openness"
	GroupSelfEnhancement   HigherOrderGroup = "self-enhancement"
	GroupConservation      HigherOrderGroup = "conservation"
	GroupSelfTranscendence HigherOrderGroup = "self-transcendence"
)

// Confidence tags how settled the user is about one value's score.
type Confidence string

const (
	ConfidenceHigh        Confidence = "high"
	ConfidenceMedium      Confidence = "medium"
	ConfidenceUnspecified Confidence = "unspecified"
)

// SchwartzValue is one of the 19 refined Schwartz values. Identity is the
// 3-letter code.
type SchwartzValue struct {
	Code        string           `json:"code"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
	Group       HigherOrderGroup `json:"group"`
}

// CarrierParameter is one tunable dimension of a carrier.
type CarrierParameter struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	LowLabel     string  `json:"low_label"`
	HighLabel    string  `json:"high_label"`
	DefaultValue float64 `json:"default_value"` // in [0,1]
}

// Carrier is a situational decision-space dimension whose intensity can
// satisfy or frustrate values.
type Carrier struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  []CarrierParameter `json:"parameters"`
}

// NeutralScore is the baseline score assigned to every value in a fresh
// profile, the midpoint of the [0,7] scale.
const NeutralScore = 3.5

// ScoreMin and ScoreMax bound every value score.
const (
	ScoreMin = 0.0
	ScoreMax = 7.0
)

// ValueScores maps value code → score in [0,7]. A well-formed ValueScores
// carries all 19 codes; readers treat a missing key as NeutralScore.
type ValueScores map[string]float64

// Get returns the score for code, defaulting to NeutralScore when absent.
func (s ValueScores) Get(code string) float64 {
	if v, ok := s[code]; ok {
		return v
	}
	return NeutralScore
}

// Clone returns an independent copy of s.
func (s ValueScores) Clone() ValueScores {
	out := make(ValueScores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Weight converts the score for code to the signed weight (score-3.5)/3.5,
// giving [-1,+1] with 0 at the neutral baseline.
func (s ValueScores) Weight(code string) float64 {
	return (s.Get(code) - NeutralScore) / NeutralScore
}

// Profile is a named ValueScores, the unit of cross-profile comparison.
type Profile struct {
	Name   string      `json:"name"`
	Scores ValueScores `json:"scores"`
}

// UndecidedValue is a value the user has not settled on, derived from a
// profile plus its confidence map. Ephemeral; recomputed on each query.
type UndecidedValue struct {
	Code         string     `json:"code"`
	Label        string     `json:"label"`
	CurrentScore float64    `json:"current_score"`
	Confidence   Confidence `json:"confidence"`
}

// PolarizedValue pairs a value code with its polarity on one carrier. Used
// in the clarification result to show which pole of a carrier each
// undecided value sits on.
type PolarizedValue struct {
	Code     string  `json:"code"`
	Label    string  `json:"label"`
	Polarity float64 `json:"polarity"`
}

// CarrierSpread describes one carrier's differentiating power over a set of
// undecided values.
type CarrierSpread struct {
	Carrier      Carrier          `json:"carrier"`
	Spread       float64          `json:"spread"`
	HighPolarity []PolarizedValue `json:"high_polarity"`
	LowPolarity  []PolarizedValue `json:"low_polarity"`
}

// ClarifyReason is a machine-readable reason why clarification is not
// possible.
type ClarifyReason string

const (
	ReasonAllConfident        ClarifyReason = "ALL_CONFIDENT"
	ReasonTooFewUndecided     ClarifyReason = "TOO_FEW_UNDECIDED"
	ReasonNoQualifyingCarrier ClarifyReason = "NO_QUALIFYING_CARRIER"
)

// ClarificationResult is the outcome of a clarification analysis. When
// CanClarify is false, ReasonCode and Reason explain why and
// SelectedCarriers is empty.
type ClarificationResult struct {
	CanClarify       bool             `json:"can_clarify"`
	ReasonCode       ClarifyReason    `json:"reason_code,omitempty"`
	Reason           string           `json:"reason,omitempty"`
	UndecidedValues  []UndecidedValue `json:"undecided_values"`
	SelectedCarriers []CarrierSpread  `json:"selected_carriers"`
}

// CarrierPolarityDiff pairs a carrier with the signed polarity difference
// between two values on it. Ranked by |PolarityDiff| to find the carrier
// that best exposes a conflict between the two values.
type CarrierPolarityDiff struct {
	Carrier      Carrier `json:"carrier"`
	PolarityDiff float64 `json:"polarity_diff"`
}

// ValueContribution is one value's share of a carrier's total sensitivity:
// polarity × profile weight.
type ValueContribution struct {
	Code         string  `json:"code"`
	Label        string  `json:"label"`
	Polarity     float64 `json:"polarity"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// CarrierSensitivity is one carrier's weighted sensitivity for a profile.
// Positive TotalSensitivity means raising the carrier net-satisfies the
// profile; negative means it net-frustrates.
type CarrierSensitivity struct {
	Carrier          Carrier             `json:"carrier"`
	TotalSensitivity float64             `json:"total_sensitivity"`
	TopContributors  []ValueContribution `json:"top_contributors"`
}

// CarrierInternalTension measures self-conflict within one profile on one
// carrier: the range and population standard deviation of the 19 weighted
// polarities, plus the values at each extreme.
type CarrierInternalTension struct {
	Carrier  Carrier           `json:"carrier"`
	Range    float64           `json:"range"`
	StdDev   float64           `json:"std_dev"`
	MaxValue ValueContribution `json:"max_value"`
	MinValue ValueContribution `json:"min_value"`
}

// ProfileTensionCarrier is one carrier's tension across 2+ profiles.
// TensionScore sums |sensitivity_i - sensitivity_j| over all unordered
// profile pairs; ConflictingProfiles names the pair with the largest
// single difference.
type ProfileTensionCarrier struct {
	Carrier             Carrier            `json:"carrier"`
	TensionScore        float64            `json:"tension_score"`
	ConflictingProfiles [2]string          `json:"conflicting_profiles"`
	ConflictMagnitude   float64            `json:"conflict_magnitude"`
	Sensitivities       map[string]float64 `json:"sensitivities"`
}

// Archetype is a named reference value profile. ValueProfile is sparse:
// codes map to integer weights in [-3,+3], and absent codes mean weight 0.
type Archetype struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	ValueProfile map[string]int `json:"value_profile"`
}

// ScenarioOption is one of the two choices in a generated decision
// scenario, mapped to one pole of the scenario's carrier.
type ScenarioOption struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	CarrierPole string `json:"carrier_pole"` // "low" or "high"
}

// Scenario is a generated decision scenario built around one carrier. The
// engine supplies the carrier and polarity data; the text comes from the
// generation service and is validated before use.
type Scenario struct {
	CarrierID string           `json:"carrier_id"`
	Title     string           `json:"title"`
	Narrative string           `json:"narrative"`
	Question  string           `json:"question"`
	Options   []ScenarioOption `json:"options"`
}

// Comparison is a generated narrative contrasting two profiles on their
// highest-tension carriers.
type Comparison struct {
	Summary  string              `json:"summary"`
	Carriers []ComparisonCarrier `json:"carriers"`
}

// ComparisonCarrier is one carrier's paragraph in a comparison narrative.
type ComparisonCarrier struct {
	CarrierID string `json:"carrier_id"`
	Narrative string `json:"narrative"`
}

// ArchetypeMatch pairs an archetype with its similarity to a profile
// (Euclidean, in [0,1]) or to another archetype (cosine, in [-1,1]).
type ArchetypeMatch struct {
	Archetype  Archetype `json:"archetype"`
	Similarity float64   `json:"similarity"`
}
