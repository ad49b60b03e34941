// Package tension compares two or more profiles carrier by carrier. Each
// profile's sensitivity vector is computed independently; a carrier's
// tension score sums the absolute sensitivity differences over every
// unordered profile pair, and the pair with the largest single difference
// is reported as the conflicting pair.
package tension

import (
	"fmt"
	"math"
	"sort"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
	"github.com/brtrx/values-explorer-sub000/internal/sensitivity"
)

// ProfileTensionCarriers computes the per-carrier tension across profiles,
// in catalog carrier order. Requires at least 2 profiles with distinct
// names; with exactly 2 the tension score equals the single pairwise
// difference.
func ProfileTensionCarriers(profiles []schema.Profile) ([]schema.ProfileTensionCarrier, error) {
	if len(profiles) < 2 {
		return nil, fmt.Errorf("tension: need at least 2 profiles, got %d", len(profiles))
	}
	seen := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("tension: profile with empty name")
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("tension: duplicate profile name %q", p.Name)
		}
		seen[p.Name] = true
	}

	// One sensitivity vector per profile, indexed [profile][carrier] in
	// catalog order.
	vectors := make([][]schema.CarrierSensitivity, len(profiles))
	for i, p := range profiles {
		vectors[i] = sensitivity.Vector(p.Scores, sensitivity.DefaultTopContributors)
	}

	out := make([]schema.ProfileTensionCarrier, 0, catalog.NumCarriers)
	for ci, c := range catalog.Carriers() {
		ptc := schema.ProfileTensionCarrier{
			Carrier:       c,
			Sensitivities: make(map[string]float64, len(profiles)),
		}
		for i, p := range profiles {
			ptc.Sensitivities[p.Name] = vectors[i][ci].TotalSensitivity
		}
		for i := 0; i < len(profiles); i++ {
			for j := i + 1; j < len(profiles); j++ {
				d := math.Abs(vectors[i][ci].TotalSensitivity - vectors[j][ci].TotalSensitivity)
				ptc.TensionScore += d
				if d > ptc.ConflictMagnitude {
					ptc.ConflictMagnitude = d
					ptc.ConflictingProfiles = [2]string{profiles[i].Name, profiles[j].Name}
				}
			}
		}
		if ptc.ConflictingProfiles == ([2]string{}) {
			// All pairs identical; report the first pair with zero magnitude.
			ptc.ConflictingProfiles = [2]string{profiles[0].Name, profiles[1].Name}
		}
		out = append(out, ptc)
	}
	return out, nil
}

// TopProfileTensionCarriers ranks carriers by tension score descending,
// catalog order on ties, and returns the first limit entries.
func TopProfileTensionCarriers(profiles []schema.Profile, limit int) ([]schema.ProfileTensionCarrier, error) {
	carriers, err := ProfileTensionCarriers(profiles)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(carriers, func(i, j int) bool {
		return carriers[i].TensionScore > carriers[j].TensionScore
	})
	if limit < 1 || limit > len(carriers) {
		limit = len(carriers)
	}
	return carriers[:limit], nil
}
