package archetype

import (
	"testing"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

func TestCatalogShape(t *testing.T) {
	if got, want := len(All()), 90; got != want {
		t.Fatalf("catalog has %d archetypes, want %d", got, want)
	}
	if got, want := len(Categories()), 6; got != want {
		t.Fatalf("catalog has %d categories, want %d", got, want)
	}
	for _, cat := range Categories() {
		members, err := ByCategory(cat)
		if err != nil {
			t.Fatalf("ByCategory(%s): %v", cat, err)
		}
		if len(members) != 15 {
			t.Errorf("category %s has %d members, want 15", cat, len(members))
		}
	}
}

func TestByName(t *testing.T) {
	a, err := ByName("Prometheus")
	if err != nil {
		t.Fatalf("ByName(Prometheus): %v", err)
	}
	if a.Category != "mythological" {
		t.Errorf("Prometheus category = %s, want mythological", a.Category)
	}
	if _, err := ByName("Nobody"); err == nil {
		t.Error("ByName(Nobody): expected error")
	}
}

// TestToScores checks the affine weight-to-score map on every archetype:
// -3→0.5, 0→3.5, +3→6.5, and codes absent from the sparse weight map land
// exactly on the neutral baseline.
func TestToScores(t *testing.T) {
	for _, a := range All() {
		s := ToScores(a)
		if len(s) != catalog.NumValues {
			t.Fatalf("%s: ToScores has %d entries, want %d", a.Name, len(s), catalog.NumValues)
		}
		for _, v := range catalog.Values() {
			w, present := a.ValueProfile[v.Code]
			want := schema.NeutralScore
			if present {
				want = schema.NeutralScore + float64(w)
			}
			if s[v.Code] != want {
				t.Errorf("%s/%s: score = %v, want %v (weight %d)", a.Name, v.Code, s[v.Code], want, w)
			}
			if s[v.Code] < 0.5 || s[v.Code] > 6.5 {
				t.Errorf("%s/%s: score %v outside [0.5,6.5]", a.Name, v.Code, s[v.Code])
			}
		}
	}
}

// TestMatchScore_SelfAndBounds checks an archetype matched against its own
// densified scores scores exactly 1, and all matches stay in [0,1].
func TestMatchScore_SelfAndBounds(t *testing.T) {
	for _, a := range All() {
		if sim := MatchScore(ToScores(a), a); sim != 1.0 {
			t.Errorf("%s: self match = %v, want exactly 1", a.Name, sim)
		}
	}
	neutral := catalog.NewNeutralScores()
	for _, a := range All() {
		sim := MatchScore(neutral, a)
		if sim < 0 || sim > 1 {
			t.Errorf("%s: neutral match = %v, outside [0,1]", a.Name, sim)
		}
	}
}

func TestBestForCategory(t *testing.T) {
	a, err := ByName("Prometheus")
	if err != nil {
		t.Fatal(err)
	}
	best, err := BestForCategory(ToScores(a), "mythological")
	if err != nil {
		t.Fatalf("BestForCategory: %v", err)
	}
	if best.Archetype.Name != "Prometheus" {
		t.Errorf("best match = %s, want Prometheus", best.Archetype.Name)
	}
	if best.Similarity != 1.0 {
		t.Errorf("best similarity = %v, want 1", best.Similarity)
	}
	if _, err := BestForCategory(catalog.NewNeutralScores(), "nope"); err == nil {
		t.Error("unknown category: expected error")
	}
}

func TestRank(t *testing.T) {
	a, err := ByName("Athena")
	if err != nil {
		t.Fatal(err)
	}
	matches, err := Rank(ToScores(a), "mythological")
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(matches) != 15 {
		t.Fatalf("Rank returned %d matches, want 15", len(matches))
	}
	if matches[0].Archetype.Name != "Athena" {
		t.Errorf("top ranked = %s, want Athena", matches[0].Archetype.Name)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Errorf("ordering violated at %d: %v > %v", i, matches[i].Similarity, matches[i-1].Similarity)
		}
	}
}

func TestSimilar(t *testing.T) {
	a, err := ByName("Prometheus")
	if err != nil {
		t.Fatal(err)
	}
	sims := Similar(a, 5)
	if len(sims) != 5 {
		t.Fatalf("Similar returned %d, want 5", len(sims))
	}
	for _, m := range sims {
		if m.Archetype.Name == "Prometheus" {
			t.Error("Similar included the archetype itself")
		}
		if m.Similarity < -1 || m.Similarity > 1 {
			t.Errorf("%s: cosine similarity %v outside [-1,1]", m.Archetype.Name, m.Similarity)
		}
	}
	for i := 1; i < len(sims); i++ {
		if sims[i].Similarity > sims[i-1].Similarity {
			t.Errorf("ordering violated at %d", i)
		}
	}

	all := Similar(a, 0)
	if len(all) != len(All())-1 {
		t.Errorf("Similar with limit 0 returned %d, want %d", len(all), len(All())-1)
	}
}

func TestMatchingValues(t *testing.T) {
	a, err := ByName("Prometheus")
	if err != nil {
		t.Fatal(err)
	}
	// The archetype's own densified scores put its strong weights in the
	// profile top-6, so every weight ≥ 2 code should surface (capped at 4).
	got := MatchingValues(ToScores(a), a)
	if len(got) == 0 {
		t.Fatal("MatchingValues empty for self profile")
	}
	if len(got) > 4 {
		t.Errorf("MatchingValues returned %d codes, cap is 4", len(got))
	}
	for i, code := range got {
		if a.ValueProfile[code] < 2 {
			t.Errorf("%s has weight %d, want >= 2", code, a.ValueProfile[code])
		}
		if i > 0 && a.ValueProfile[code] > a.ValueProfile[got[i-1]] {
			t.Errorf("weight ordering violated at %d", i)
		}
	}

	// A neutral profile has no distinct top-6 strong matches against an
	// archetype with few strong weights beyond chance, but the result must
	// still respect the weight floor.
	for _, code := range MatchingValues(catalog.NewNeutralScores(), a) {
		if a.ValueProfile[code] < 2 {
			t.Errorf("neutral profile surfaced %s with weight %d", code, a.ValueProfile[code])
		}
	}
}

func TestCosine(t *testing.T) {
	same := map[string]int{"STI": 3, "SDA": 4}
	opposite := map[string]int{"STI": -3, "SDA": -4}
	if got := cosine(same, same); got != 1.0 {
		t.Errorf("cosine(v, v) = %v, want 1", got)
	}
	if got := cosine(same, opposite); got != -1.0 {
		t.Errorf("cosine(v, -v) = %v, want -1", got)
	}
	if got := cosine(same, map[string]int{}); got != 0 {
		t.Errorf("cosine(v, empty) = %v, want 0", got)
	}
	if got := cosine(same, map[string]int{"TRD": 3}); got != 0 {
		t.Errorf("cosine of disjoint vectors = %v, want 0", got)
	}
}
