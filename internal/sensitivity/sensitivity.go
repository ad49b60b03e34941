// Package sensitivity computes, for one value profile, how strongly each
// carrier bears on it. Every value's score is normalized to a signed weight
// around the neutral baseline; a carrier's total sensitivity is the sum of
// polarity × weight over all 19 values. The same weighted polarities also
// yield each carrier's internal tension — how much a single profile is
// pulled in both directions at once.
package sensitivity

import (
	"math"
	"sort"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/polarity"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

// DefaultTopContributors is the number of contributing values reported per
// carrier when the caller does not ask for a specific K.
const DefaultTopContributors = 3

// Vector computes the full per-carrier sensitivity vector for scores, in
// catalog carrier order. Each entry carries its topK contributing values by
// |contribution| descending; topK < 1 falls back to DefaultTopContributors.
func Vector(scores schema.ValueScores, topK int) []schema.CarrierSensitivity {
	if topK < 1 {
		topK = DefaultTopContributors
	}
	out := make([]schema.CarrierSensitivity, 0, catalog.NumCarriers)
	for _, c := range catalog.Carriers() {
		contribs := contributions(scores, c.ID)
		total := 0.0
		for _, vc := range contribs {
			total += vc.Contribution
		}
		sort.SliceStable(contribs, func(i, j int) bool {
			return math.Abs(contribs[i].Contribution) > math.Abs(contribs[j].Contribution)
		})
		k := topK
		if k > len(contribs) {
			k = len(contribs)
		}
		out = append(out, schema.CarrierSensitivity{
			Carrier:          c,
			TotalSensitivity: total,
			TopContributors:  contribs[:k],
		})
	}
	return out
}

// TopSensitive ranks all carriers by |total sensitivity| descending and
// returns the first limit entries (all 12 when limit is larger). Ties keep
// catalog order.
func TopSensitive(scores schema.ValueScores, limit, topK int) []schema.CarrierSensitivity {
	vec := Vector(scores, topK)
	sort.SliceStable(vec, func(i, j int) bool {
		return math.Abs(vec[i].TotalSensitivity) > math.Abs(vec[j].TotalSensitivity)
	})
	if limit < 1 || limit > len(vec) {
		limit = len(vec)
	}
	return vec[:limit]
}

// InternalTension computes each carrier's internal tension for scores: the
// range of the 19 weighted polarities, their population standard deviation,
// and the values at each extreme. Catalog carrier order.
func InternalTension(scores schema.ValueScores) []schema.CarrierInternalTension {
	out := make([]schema.CarrierInternalTension, 0, catalog.NumCarriers)
	for _, c := range catalog.Carriers() {
		contribs := contributions(scores, c.ID)

		maxVC, minVC := contribs[0], contribs[0]
		sum := 0.0
		for _, vc := range contribs {
			if vc.Contribution > maxVC.Contribution {
				maxVC = vc
			}
			if vc.Contribution < minVC.Contribution {
				minVC = vc
			}
			sum += vc.Contribution
		}
		mean := sum / float64(len(contribs))
		varSum := 0.0
		for _, vc := range contribs {
			d := vc.Contribution - mean
			varSum += d * d
		}

		out = append(out, schema.CarrierInternalTension{
			Carrier:  c,
			Range:    maxVC.Contribution - minVC.Contribution,
			StdDev:   math.Sqrt(varSum / float64(len(contribs))),
			MaxValue: maxVC,
			MinValue: minVC,
		})
	}
	return out
}

// TopInternalTension ranks carriers by tension range descending, catalog
// order on ties, and returns the first limit entries.
func TopInternalTension(scores schema.ValueScores, limit int) []schema.CarrierInternalTension {
	tensions := InternalTension(scores)
	sort.SliceStable(tensions, func(i, j int) bool {
		return tensions[i].Range > tensions[j].Range
	})
	if limit < 1 || limit > len(tensions) {
		limit = len(tensions)
	}
	return tensions[:limit]
}

// contributions builds the 19 weighted-polarity entries for one carrier, in
// catalog value order.
func contributions(scores schema.ValueScores, carrierID string) []schema.ValueContribution {
	out := make([]schema.ValueContribution, 0, catalog.NumValues)
	for _, v := range catalog.Values() {
		p := polarity.GetPolarity(v.Code, carrierID)
		w := scores.Weight(v.Code)
		out = append(out, schema.ValueContribution{
			Code:         v.Code,
			Label:        v.Label,
			Polarity:     p,
			Weight:       w,
			Contribution: p * w,
		})
	}
	return out
}
