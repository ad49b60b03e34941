// Package polarity holds the 19×12 polarity matrix: for every (value,
// carrier) pair, a signed score in [-1,1] describing how raising the
// carrier's intensity affects that value. The matrix is dense and immutable;
// full coverage is asserted in init so a missing cell is caught at startup
// rather than silently read as neutral. Neutral is encoded explicitly as 0.
package polarity

import (
	"fmt"
	"sort"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

// rows is the authoring form of the matrix: value code → carrier id →
// polarity. Written sparsely-readable but required to be dense; init
// fails on any missing or out-of-range cell.
var rows = map[string]map[string]float64{
	"SDT": {
		"risk": 0.3, "authority": -0.4, "resources": 0.1, "novelty": 0.6,
		"structure": -0.6, "visibility": -0.2, "collaboration": -0.3, "autonomy": 0.9,
		"competition": -0.2, "care": 0.0, "tempo": -0.5, "stability": 0.0,
	},
	"SDA": {
		"risk": 0.4, "authority": -0.5, "resources": 0.2, "novelty": 0.5,
		"structure": -0.7, "visibility": -0.1, "collaboration": -0.4, "autonomy": 1.0,
		"competition": 0.0, "care": -0.2, "tempo": -0.3, "stability": -0.2,
	},
	"STI": {
		"risk": 0.9, "authority": 0.0, "resources": 0.0, "novelty": 1.0,
		"structure": -0.8, "visibility": 0.3, "collaboration": 0.1, "autonomy": 0.5,
		"competition": 0.4, "care": -0.1, "tempo": 0.6, "stability": -0.8,
	},
	"HED": {
		"risk": 0.2, "authority": -0.1, "resources": 0.6, "novelty": 0.4,
		"structure": -0.4, "visibility": 0.1, "collaboration": 0.0, "autonomy": 0.4,
		"competition": -0.2, "care": -0.3, "tempo": -0.6, "stability": 0.1,
	},
	"ACH": {
		"risk": 0.3, "authority": 0.5, "resources": 0.5, "novelty": 0.2,
		"structure": 0.0, "visibility": 0.8, "collaboration": 0.0, "autonomy": 0.2,
		"competition": 0.9, "care": -0.1, "tempo": 0.4, "stability": 0.0,
	},
	"POD": {
		"risk": 0.2, "authority": 1.0, "resources": 0.6, "novelty": 0.0,
		"structure": 0.1, "visibility": 0.6, "collaboration": -0.2, "autonomy": 0.3,
		"competition": 0.8, "care": -0.2, "tempo": 0.2, "stability": 0.1,
	},
	"POR": {
		"risk": -0.1, "authority": 0.6, "resources": 1.0, "novelty": -0.1,
		"structure": 0.2, "visibility": 0.4, "collaboration": -0.1, "autonomy": 0.2,
		"competition": 0.6, "care": -0.1, "tempo": 0.0, "stability": 0.4,
	},
	"FAC": {
		"risk": -0.5, "authority": 0.2, "resources": 0.3, "novelty": -0.3,
		"structure": 0.4, "visibility": -0.4, "collaboration": 0.0, "autonomy": -0.1,
		"competition": -0.3, "care": 0.0, "tempo": -0.2, "stability": 0.5,
	},
	"SEP": {
		"risk": -0.9, "authority": 0.0, "resources": 0.4, "novelty": -0.6,
		"structure": 0.6, "visibility": -0.3, "collaboration": 0.1, "autonomy": -0.2,
		"competition": -0.5, "care": 0.0, "tempo": -0.4, "stability": 0.8,
	},
	"SES": {
		"risk": -0.7, "authority": 0.2, "resources": 0.3, "novelty": -0.5,
		"structure": 0.8, "visibility": 0.0, "collaboration": 0.2, "autonomy": -0.3,
		"competition": -0.4, "care": 0.2, "tempo": -0.2, "stability": 0.9,
	},
	"TRD": {
		"risk": -0.8, "authority": 0.3, "resources": 0.0, "novelty": -1.0,
		"structure": 0.7, "visibility": 0.0, "collaboration": 0.2, "autonomy": -0.5,
		"competition": -0.3, "care": 0.3, "tempo": -0.5, "stability": 0.8,
	},
	"COR": {
		"risk": -0.6, "authority": 0.4, "resources": 0.0, "novelty": -0.6,
		"structure": 1.0, "visibility": 0.1, "collaboration": 0.2, "autonomy": -0.7,
		"competition": -0.2, "care": 0.1, "tempo": -0.3, "stability": 0.6,
	},
	"COI": {
		"risk": -0.4, "authority": -0.2, "resources": 0.0, "novelty": -0.3,
		"structure": 0.4, "visibility": -0.2, "collaboration": 0.6, "autonomy": -0.4,
		"competition": -0.7, "care": 0.4, "tempo": -0.4, "stability": 0.4,
	},
	"HUM": {
		"risk": -0.2, "authority": -0.8, "resources": -0.6, "novelty": -0.1,
		"structure": 0.2, "visibility": -0.8, "collaboration": 0.3, "autonomy": -0.1,
		"competition": -0.8, "care": 0.3, "tempo": -0.2, "stability": 0.3,
	},
	"BEC": {
		"risk": -0.2, "authority": -0.1, "resources": 0.1, "novelty": -0.1,
		"structure": 0.0, "visibility": -0.1, "collaboration": 0.8, "autonomy": -0.2,
		"competition": -0.6, "care": 1.0, "tempo": -0.4, "stability": 0.3,
	},
	"BED": {
		"risk": -0.3, "authority": 0.0, "resources": 0.0, "novelty": -0.2,
		"structure": 0.5, "visibility": 0.0, "collaboration": 0.7, "autonomy": -0.3,
		"competition": -0.4, "care": 0.7, "tempo": -0.2, "stability": 0.6,
	},
	"UNC": {
		"risk": 0.0, "authority": -0.5, "resources": -0.2, "novelty": 0.1,
		"structure": 0.1, "visibility": 0.2, "collaboration": 0.5, "autonomy": 0.0,
		"competition": -0.7, "care": 0.8, "tempo": -0.3, "stability": 0.2,
	},
	"UNN": {
		"risk": -0.1, "authority": -0.3, "resources": -0.4, "novelty": 0.0,
		"structure": 0.2, "visibility": 0.0, "collaboration": 0.2, "autonomy": 0.1,
		"competition": -0.5, "care": 0.5, "tempo": -0.5, "stability": 0.5,
	},
	"UNT": {
		"risk": 0.1, "authority": -0.4, "resources": -0.1, "novelty": 0.3,
		"structure": -0.2, "visibility": 0.1, "collaboration": 0.6, "autonomy": 0.1,
		"competition": -0.6, "care": 0.6, "tempo": -0.3, "stability": 0.1,
	},
}

// matrix is the dense index-addressed form, built once in init. Cell
// [valueIndex][carrierIndex] corresponds to catalog order on both axes.
var matrix [catalog.NumValues][catalog.NumCarriers]float64

func init() {
	if len(rows) != catalog.NumValues {
		panic(fmt.Sprintf("polarity: matrix has %d value rows, want %d", len(rows), catalog.NumValues))
	}
	for _, v := range catalog.Values() {
		row, ok := rows[v.Code]
		if !ok {
			panic(fmt.Sprintf("polarity: no row for value %q", v.Code))
		}
		if len(row) != catalog.NumCarriers {
			panic(fmt.Sprintf("polarity: value %q has %d cells, want %d", v.Code, len(row), catalog.NumCarriers))
		}
		for _, c := range catalog.Carriers() {
			p, ok := row[c.ID]
			if !ok {
				panic(fmt.Sprintf("polarity: missing cell (%s, %s)", v.Code, c.ID))
			}
			if p < -1 || p > 1 {
				panic(fmt.Sprintf("polarity: cell (%s, %s) = %v outside [-1,1]", v.Code, c.ID, p))
			}
			matrix[catalog.ValueIndex(v.Code)][catalog.CarrierIndex(c.ID)] = p
		}
	}
	for code, id := range rationales {
		if catalog.ValueIndex(code) < 0 {
			panic(fmt.Sprintf("polarity: rationale for unknown value %q", code))
		}
		for cid := range id {
			if catalog.CarrierIndex(cid) < 0 {
				panic(fmt.Sprintf("polarity: rationale (%s, %s) names unknown carrier", code, cid))
			}
		}
	}
}

// GetPolarity returns the polarity of (valueCode, carrierID). The matrix is
// validated dense at init, so an unknown code or id here is a programming
// defect and panics rather than returning a silent neutral.
func GetPolarity(valueCode, carrierID string) float64 {
	vi := catalog.ValueIndex(valueCode)
	ci := catalog.CarrierIndex(carrierID)
	if vi < 0 || ci < 0 {
		panic(fmt.Sprintf("polarity: no entry for (%s, %s)", valueCode, carrierID))
	}
	return matrix[vi][ci]
}

// Difference returns polarity(valueA, carrierID) - polarity(valueB,
// carrierID). Antisymmetric in its value arguments.
func Difference(valueA, valueB, carrierID string) float64 {
	return GetPolarity(valueA, carrierID) - GetPolarity(valueB, carrierID)
}

// BestCarriersForTension ranks carriers by how oppositely they affect the
// two values: descending |polarity difference|, catalog order on ties.
// Returns at most limit entries; limit < 1 is an error, unknown codes are
// an error at this input boundary.
func BestCarriersForTension(valueA, valueB string, limit int) ([]schema.CarrierPolarityDiff, error) {
	if limit < 1 {
		return nil, fmt.Errorf("polarity: limit must be >= 1, got %d", limit)
	}
	if _, err := catalog.ValueByCode(valueA); err != nil {
		return nil, err
	}
	if _, err := catalog.ValueByCode(valueB); err != nil {
		return nil, err
	}
	diffs := make([]schema.CarrierPolarityDiff, 0, catalog.NumCarriers)
	for _, c := range catalog.Carriers() {
		diffs = append(diffs, schema.CarrierPolarityDiff{
			Carrier:      c,
			PolarityDiff: Difference(valueA, valueB, c.ID),
		})
	}
	sort.SliceStable(diffs, func(i, j int) bool {
		return abs(diffs[i].PolarityDiff) > abs(diffs[j].PolarityDiff)
	})
	if limit > len(diffs) {
		limit = len(diffs)
	}
	return diffs[:limit], nil
}

// Rationale returns the human-readable explanation for a cell, if one is
// recorded. Only strongly polarized cells carry rationale text.
func Rationale(valueCode, carrierID string) (string, bool) {
	r, ok := rationales[valueCode][carrierID]
	return r, ok
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
