// Package clarify selects the carriers that best differentiate the values a
// user has not settled on. Given a profile and a confidence tag per value,
// it finds the carriers with the widest polarity spread across the
// undecided values, subject to a spread threshold. Deterministic: identical
// inputs always produce identical output.
package clarify

import (
	"fmt"
	"sort"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/polarity"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

// polarityPoleThreshold splits undecided values into a carrier's high and
// low poles: above +0.4 the value favors the carrier's high end, below
// -0.4 the low end. Values in between sit on neither pole.
const polarityPoleThreshold = 0.4

// Analyze runs the clarification selection. Values tagged medium or
// unspecified form the undecided set; carriers are ranked by polarity
// spread over that set and the top maxCarriers with spread >= minSpread are
// returned. Fewer than two undecided values, or no carrier clearing the
// threshold, yields CanClarify=false with a reason — that is a valid
// outcome, not an error. maxCarriers < 1 or minSpread < 0 is a caller
// contract violation.
func Analyze(scores schema.ValueScores, confidence map[string]schema.Confidence, maxCarriers int, minSpread float64) (schema.ClarificationResult, error) {
	if maxCarriers < 1 {
		return schema.ClarificationResult{}, fmt.Errorf("clarify: maxCarriers must be >= 1, got %d", maxCarriers)
	}
	if minSpread < 0 {
		return schema.ClarificationResult{}, fmt.Errorf("clarify: minSpread must be >= 0, got %v", minSpread)
	}

	undecided := UndecidedValues(scores, confidence)

	switch len(undecided) {
	case 0:
		return schema.ClarificationResult{
			CanClarify:      false,
			ReasonCode:      schema.ReasonAllConfident,
			Reason:          "all values are marked high-confidence; nothing to clarify",
			UndecidedValues: undecided,
		}, nil
	case 1:
		return schema.ClarificationResult{
			CanClarify:      false,
			ReasonCode:      schema.ReasonTooFewUndecided,
			Reason:          "need at least 2 undecided values to differentiate",
			UndecidedValues: undecided,
		}, nil
	}

	spreads := make([]schema.CarrierSpread, 0, catalog.NumCarriers)
	for _, c := range catalog.Carriers() {
		cs := carrierSpread(c, undecided)
		if cs.Spread >= minSpread {
			spreads = append(spreads, cs)
		}
	}

	if len(spreads) == 0 {
		return schema.ClarificationResult{
			CanClarify:      false,
			ReasonCode:      schema.ReasonNoQualifyingCarrier,
			Reason:          fmt.Sprintf("no carrier reaches the minimum spread of %.2f across the undecided values", minSpread),
			UndecidedValues: undecided,
		}, nil
	}

	sort.SliceStable(spreads, func(i, j int) bool {
		return spreads[i].Spread > spreads[j].Spread
	})
	if maxCarriers > len(spreads) {
		maxCarriers = len(spreads)
	}

	return schema.ClarificationResult{
		CanClarify:       true,
		UndecidedValues:  undecided,
		SelectedCarriers: spreads[:maxCarriers],
	}, nil
}

// UndecidedValues derives the undecided set: every catalog value whose
// confidence is medium or unspecified. A value with no tag at all counts as
// unspecified — the user never confirmed it. Returned in catalog order.
func UndecidedValues(scores schema.ValueScores, confidence map[string]schema.Confidence) []schema.UndecidedValue {
	var out []schema.UndecidedValue
	for _, v := range catalog.Values() {
		conf, ok := confidence[v.Code]
		if !ok {
			conf = schema.ConfidenceUnspecified
		}
		if conf != schema.ConfidenceMedium && conf != schema.ConfidenceUnspecified {
			continue
		}
		out = append(out, schema.UndecidedValue{
			Code:         v.Code,
			Label:        v.Label,
			CurrentScore: scores.Get(v.Code),
			Confidence:   conf,
		})
	}
	return out
}

// carrierSpread computes one carrier's spread over the undecided set and
// partitions the set into its high and low poles, each sorted by polarity
// magnitude descending.
func carrierSpread(c schema.Carrier, undecided []schema.UndecidedValue) schema.CarrierSpread {
	cs := schema.CarrierSpread{Carrier: c}
	first := true
	var lo, hi float64
	for _, u := range undecided {
		p := polarity.GetPolarity(u.Code, c.ID)
		if first {
			lo, hi = p, p
			first = false
		} else {
			if p < lo {
				lo = p
			}
			if p > hi {
				hi = p
			}
		}
		pv := schema.PolarizedValue{Code: u.Code, Label: u.Label, Polarity: p}
		switch {
		case p > polarityPoleThreshold:
			cs.HighPolarity = append(cs.HighPolarity, pv)
		case p < -polarityPoleThreshold:
			cs.LowPolarity = append(cs.LowPolarity, pv)
		}
	}
	cs.Spread = hi - lo
	sort.SliceStable(cs.HighPolarity, func(i, j int) bool {
		return abs(cs.HighPolarity[i].Polarity) > abs(cs.HighPolarity[j].Polarity)
	})
	sort.SliceStable(cs.LowPolarity, func(i, j int) bool {
		return abs(cs.LowPolarity[i].Polarity) > abs(cs.LowPolarity[j].Polarity)
	})
	return cs
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
