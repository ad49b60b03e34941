// Package archetype matches value profiles against a catalog of named
// reference profiles. Each archetype carries a sparse integer weight map
// over the value codes; matching densifies it onto the score scale with a
// fixed affine map and compares by Euclidean distance, while
// archetype-to-archetype similarity uses cosine over the sparse weights.
package archetype

import (
	"fmt"
	"math"
	"sort"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

const (
	// weightMin and weightMax bound archetype profile weights.
	weightMin = -3
	weightMax = 3

	// maxAxisDiff is the largest per-value score difference used for
	// similarity normalization. Profile scores span [0,7] and archetype
	// scores span [0.5,6.5]; 6.5 is the tight uniform bound on their
	// difference, applied identically at every call site.
	maxAxisDiff = 6.5
)

// maxDistance is the Euclidean distance ceiling for similarity
// normalization: sqrt(19 × 6.5²).
var maxDistance = math.Sqrt(catalog.NumValues * maxAxisDiff * maxAxisDiff)

var (
	byName     = make(map[string]schema.Archetype)
	byCategory = make(map[string][]schema.Archetype)
)

func init() {
	for _, a := range archetypes {
		if a.Name == "" {
			panic("archetype: entry with empty name")
		}
		if _, dup := byName[a.Name]; dup {
			panic(fmt.Sprintf("archetype: duplicate name %q", a.Name))
		}
		if a.Category == "" {
			panic(fmt.Sprintf("archetype: %q has no category", a.Name))
		}
		for code, w := range a.ValueProfile {
			if catalog.ValueIndex(code) < 0 {
				panic(fmt.Sprintf("archetype: %q references unknown value code %q", a.Name, code))
			}
			if w < weightMin || w > weightMax {
				panic(fmt.Sprintf("archetype: %q weight for %s is %d, outside [%d,%d]",
					a.Name, code, w, weightMin, weightMax))
			}
		}
		byName[a.Name] = a
		byCategory[a.Category] = append(byCategory[a.Category], a)
	}
	for _, cat := range categories {
		if len(byCategory[cat]) == 0 {
			panic(fmt.Sprintf("archetype: category %q has no members", cat))
		}
	}
	if len(byCategory) != len(categories) {
		panic(fmt.Sprintf("archetype: %d categories in data, %d declared", len(byCategory), len(categories)))
	}
}

// All returns the full catalog in declaration order. Must not be modified.
func All() []schema.Archetype { return archetypes }

// Categories returns the category names in canonical order.
func Categories() []string { return categories }

// ByName looks up one archetype.
func ByName(name string) (schema.Archetype, error) {
	a, ok := byName[name]
	if !ok {
		return schema.Archetype{}, fmt.Errorf("archetype: unknown archetype %q", name)
	}
	return a, nil
}

// ByCategory returns one category's archetypes in declaration order.
func ByCategory(category string) ([]schema.Archetype, error) {
	as, ok := byCategory[category]
	if !ok {
		return nil, fmt.Errorf("archetype: unknown category %q", category)
	}
	return as, nil
}

// ToScores densifies an archetype's sparse weight map onto the score scale:
// score = 3.5 + weight, so -3→0.5, 0→3.5, +3→6.5. Codes absent from the
// weight map land exactly on the neutral baseline.
func ToScores(a schema.Archetype) schema.ValueScores {
	s := catalog.NewNeutralScores()
	for code, w := range a.ValueProfile {
		s[code] = schema.NeutralScore + float64(w)
	}
	return s
}

// MatchScore computes the similarity of a profile to an archetype:
// 1 − euclidean_distance/maxDistance, in [0,1]. Raw similarity; any display
// stretching is a rendering concern.
func MatchScore(scores schema.ValueScores, a schema.Archetype) float64 {
	target := ToScores(a)
	sum := 0.0
	for _, v := range catalog.Values() {
		d := scores.Get(v.Code) - target.Get(v.Code)
		sum += d * d
	}
	return 1 - math.Sqrt(sum)/maxDistance
}

// BestForCategory returns the category member with the highest match score.
// Declaration order breaks ties.
func BestForCategory(scores schema.ValueScores, category string) (schema.ArchetypeMatch, error) {
	as, err := ByCategory(category)
	if err != nil {
		return schema.ArchetypeMatch{}, err
	}
	best := schema.ArchetypeMatch{Archetype: as[0], Similarity: MatchScore(scores, as[0])}
	for _, a := range as[1:] {
		if sim := MatchScore(scores, a); sim > best.Similarity {
			best = schema.ArchetypeMatch{Archetype: a, Similarity: sim}
		}
	}
	return best, nil
}

// Rank orders every archetype in a category by match score descending,
// declaration order on ties.
func Rank(scores schema.ValueScores, category string) ([]schema.ArchetypeMatch, error) {
	as, err := ByCategory(category)
	if err != nil {
		return nil, err
	}
	matches := make([]schema.ArchetypeMatch, 0, len(as))
	for _, a := range as {
		matches = append(matches, schema.ArchetypeMatch{Archetype: a, Similarity: MatchScore(scores, a)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches, nil
}

// Similar ranks all other archetypes, any category, by cosine similarity of
// the sparse integer weight vectors and returns the top limit. A
// zero-magnitude weight vector on either side yields similarity 0.
func Similar(a schema.Archetype, limit int) []schema.ArchetypeMatch {
	var matches []schema.ArchetypeMatch
	for _, other := range archetypes {
		if other.Name == a.Name {
			continue
		}
		matches = append(matches, schema.ArchetypeMatch{
			Archetype:  other,
			Similarity: cosine(a.ValueProfile, other.ValueProfile),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if limit < 1 || limit > len(matches) {
		limit = len(matches)
	}
	return matches[:limit]
}

// maxMatchingValues caps the matching-values list.
const maxMatchingValues = 4

// MatchingValues returns the archetype's strongly weighted codes (weight
// ≥ 2) that also rank in the profile's top-6 highest-scored codes, sorted
// by archetype weight descending, at most 4 entries.
func MatchingValues(scores schema.ValueScores, a schema.Archetype) []string {
	type scored struct {
		code  string
		score float64
	}
	ranked := make([]scored, 0, catalog.NumValues)
	for _, v := range catalog.Values() {
		ranked = append(ranked, scored{v.Code, scores.Get(v.Code)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	top6 := make(map[string]bool, 6)
	for i := 0; i < 6 && i < len(ranked); i++ {
		top6[ranked[i].code] = true
	}

	var out []string
	for _, v := range catalog.Values() {
		if a.ValueProfile[v.Code] >= 2 && top6[v.Code] {
			out = append(out, v.Code)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return a.ValueProfile[out[i]] > a.ValueProfile[out[j]]
	})
	if len(out) > maxMatchingValues {
		out = out[:maxMatchingValues]
	}
	return out
}

// cosine computes the cosine similarity of two sparse integer vectors over
// the union of their defined codes.
func cosine(a, b map[string]int) float64 {
	dot := 0
	for code, wa := range a {
		if wb, ok := b[code]; ok {
			dot += wa * wb
		}
	}
	magA, magB := 0, 0
	for _, w := range a {
		magA += w * w
	}
	for _, w := range b {
		magB += w * w
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return float64(dot) / (math.Sqrt(float64(magA)) * math.Sqrt(float64(magB)))
}
