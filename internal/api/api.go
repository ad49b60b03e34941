// Package api exposes the engine to the web frontend as a thin JSON
// surface: decode a request, run the pure engine call, encode the result.
// No persistence and no state; every handler is a stateless function of
// its request body.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/brtrx/values-explorer-sub000/internal/archetype"
	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/clarify"
	"github.com/brtrx/values-explorer-sub000/internal/polarity"
	"github.com/brtrx/values-explorer-sub000/internal/profile"
	"github.com/brtrx/values-explorer-sub000/internal/render"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
	"github.com/brtrx/values-explorer-sub000/internal/scoring"
	"github.com/brtrx/values-explorer-sub000/internal/sensitivity"
	"github.com/brtrx/values-explorer-sub000/internal/tension"
)

// NewRouter builds the HTTP router. allowedOrigins configures CORS for the
// frontend; empty means same-origin only.
func NewRouter(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", handleHealth)
	r.Get("/api/catalog", handleCatalog)
	r.Post("/api/sensitivity", handleSensitivity)
	r.Post("/api/clarify", handleClarify)
	r.Get("/api/tension/{valueA}/{valueB}", handleTension)
	r.Post("/api/update", handleUpdate)
	r.Post("/api/compare", handleCompare)
	r.Post("/api/archetype", handleArchetype)
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"values":   catalog.Values(),
		"carriers": catalog.Carriers(),
	})
}

// profileRequest is the common request body: a profile document, inline.
type profileRequest struct {
	Name       string                       `json:"name"`
	Scores     schema.ValueScores           `json:"scores"`
	Confidence map[string]schema.Confidence `json:"confidence,omitempty"`
}

// decodeProfile validates and normalizes the request profile. Reports the
// validation error to the client and returns ok=false on failure.
func decodeProfile(w http.ResponseWriter, r *http.Request) (profile.File, bool) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return profile.File{}, false
	}
	if req.Name == "" {
		req.Name = "anonymous"
	}
	f := profile.File{Name: req.Name, Scores: req.Scores, Confidence: req.Confidence}
	if err := profile.Validate(f); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return profile.File{}, false
	}
	f.Scores = profile.Normalize(f.Scores)
	return f, true
}

func handleSensitivity(w http.ResponseWriter, r *http.Request) {
	f, ok := decodeProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"top_sensitive":        sensitivity.TopSensitive(f.Scores, 5, sensitivity.DefaultTopContributors),
		"top_internal_tension": sensitivity.TopInternalTension(f.Scores, 5),
		"radar":                render.RadarPoints(f.Scores),
	})
}

func handleClarify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		profileRequest
		MaxCarriers int     `json:"max_carriers"`
		MinSpread   float64 `json:"min_spread"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	f := profile.File{Name: req.Name, Scores: req.Scores, Confidence: req.Confidence}
	if f.Name == "" {
		f.Name = "anonymous"
	}
	if err := profile.Validate(f); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.MaxCarriers == 0 {
		req.MaxCarriers = 2
	}
	res, err := clarify.Analyze(profile.Normalize(f.Scores), f.Confidence, req.MaxCarriers, req.MinSpread)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func handleTension(w http.ResponseWriter, r *http.Request) {
	valueA := strings.ToUpper(chi.URLParam(r, "valueA"))
	valueB := strings.ToUpper(chi.URLParam(r, "valueB"))
	best, err := polarity.BestCarriersForTension(valueA, valueB, catalog.NumCarriers)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, best)
}

func handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		profileRequest
		CarrierID  string   `json:"carrier_id"`
		ScalePoint int      `json:"scale_point"`
		Codes      []string `json:"codes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	strength, err := scoring.ResponseStrengthFromScale(req.ScalePoint)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := scoring.UpdateScores(profile.Normalize(req.Scores), req.CarrierID, strength, req.Codes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scores": updated})
}

func handleCompare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Profiles []profileRequest `json:"profiles"`
		Limit    int              `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	profiles := make([]schema.Profile, 0, len(req.Profiles))
	for _, p := range req.Profiles {
		f := profile.File{Name: p.Name, Scores: p.Scores}
		if err := profile.Validate(f); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		profiles = append(profiles, schema.Profile{Name: p.Name, Scores: profile.Normalize(p.Scores)})
	}
	if req.Limit == 0 {
		req.Limit = 5
	}
	top, err := tension.TopProfileTensionCarriers(profiles, req.Limit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func handleArchetype(w http.ResponseWriter, r *http.Request) {
	var req struct {
		profileRequest
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	f := profile.File{Name: req.Name, Scores: req.Scores}
	if f.Name == "" {
		f.Name = "anonymous"
	}
	if err := profile.Validate(f); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	scores := profile.Normalize(f.Scores)

	if req.Category != "" {
		matches, err := archetype.Rank(scores, req.Category)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, matches)
		return
	}

	// No category: best match per category.
	out := make(map[string]schema.ArchetypeMatch, len(archetype.Categories()))
	for _, cat := range archetype.Categories() {
		best, err := archetype.BestForCategory(scores, cat)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out[cat] = best
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
