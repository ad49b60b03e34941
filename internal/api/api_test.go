package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody *strings.Reader
	if body == "" {
		reqBody = strings.NewReader("")
	} else {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	NewRouter(nil).ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status body = %v", body)
	}
}

func TestCatalog(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/catalog", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Values   []schema.SchwartzValue `json:"values"`
		Carriers []schema.Carrier       `json:"carriers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Values) != catalog.NumValues {
		t.Errorf("%d values, want %d", len(body.Values), catalog.NumValues)
	}
	if len(body.Carriers) != catalog.NumCarriers {
		t.Errorf("%d carriers, want %d", len(body.Carriers), catalog.NumCarriers)
	}
}

func TestSensitivityEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/sensitivity",
		`{"name": "ana", "scores": {"STI": 7.0}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		TopSensitive []schema.CarrierSensitivity `json:"top_sensitive"`
		Radar        []json.RawMessage           `json:"radar"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.TopSensitive) != 5 {
		t.Errorf("%d top carriers, want 5", len(body.TopSensitive))
	}
	if len(body.Radar) != catalog.NumValues {
		t.Errorf("%d radar points, want %d", len(body.Radar), catalog.NumValues)
	}
}

func TestSensitivityEndpoint_BadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad json", `{"scores":`},
		{"unknown code", `{"scores": {"XXX": 3.5}}`},
		{"out of range", `{"scores": {"STI": 9.0}}`},
	}
	for _, c := range cases {
		rec := doRequest(t, http.MethodPost, "/api/sensitivity", c.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", c.name, rec.Code)
		}
	}
}

func TestClarifyEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/clarify",
		`{"scores": {}, "confidence": {"STI": "medium", "SEP": "medium"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res schema.ClarificationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !res.CanClarify {
		t.Errorf("CanClarify = false: %+v", res)
	}
	if len(res.SelectedCarriers) == 0 || len(res.SelectedCarriers) > 2 {
		t.Errorf("SelectedCarriers = %d, want 1-2 (default max)", len(res.SelectedCarriers))
	}
}

func TestTensionEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/tension/TRD/STI", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var diffs []schema.CarrierPolarityDiff
	if err := json.Unmarshal(rec.Body.Bytes(), &diffs); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(diffs) != catalog.NumCarriers {
		t.Fatalf("%d carriers, want %d", len(diffs), catalog.NumCarriers)
	}
	if diffs[0].Carrier.ID != "novelty" {
		t.Errorf("top tension carrier = %s, want novelty", diffs[0].Carrier.ID)
	}

	// Path values are uppercased before lookup.
	if rec := doRequest(t, http.MethodGet, "/api/tension/trd/sti", ""); rec.Code != http.StatusOK {
		t.Errorf("lowercase codes: status = %d, want 200", rec.Code)
	}
	if rec := doRequest(t, http.MethodGet, "/api/tension/TRD/XXX", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown code: status = %d, want 400", rec.Code)
	}
}

func TestUpdateEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/update",
		`{"scores": {}, "carrier_id": "novelty", "scale_point": 2, "codes": ["STI"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Scores schema.ValueScores `json:"scores"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	// Scale point 2 is strength +0.5 on a +1.0 polarity: 3.5 + 1.75 → 5.3.
	if body.Scores["STI"] != 5.3 {
		t.Errorf("STI = %v, want 5.3", body.Scores["STI"])
	}

	if rec := doRequest(t, http.MethodPost, "/api/update",
		`{"scores": {}, "carrier_id": "novelty", "scale_point": 9, "codes": ["STI"]}`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad scale point: status = %d, want 400", rec.Code)
	}
}

func TestCompareEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/compare",
		`{"profiles": [
			{"name": "thrill", "scores": {"STI": 7.0}},
			{"name": "caution", "scores": {"SEP": 7.0}}
		], "limit": 3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var top []schema.ProfileTensionCarrier
	if err := json.Unmarshal(rec.Body.Bytes(), &top); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("%d carriers, want 3", len(top))
	}
	if top[0].Carrier.ID != "risk" {
		t.Errorf("top carrier = %s, want risk", top[0].Carrier.ID)
	}

	if rec := doRequest(t, http.MethodPost, "/api/compare",
		`{"profiles": [{"name": "solo", "scores": {}}]}`); rec.Code != http.StatusBadRequest {
		t.Errorf("single profile: status = %d, want 400", rec.Code)
	}
}

func TestArchetypeEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/archetype",
		`{"scores": {}, "category": "mythological"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var matches []schema.ArchetypeMatch
	if err := json.Unmarshal(rec.Body.Bytes(), &matches); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(matches) != 15 {
		t.Errorf("%d matches, want 15", len(matches))
	}

	// No category: best match per category.
	rec = doRequest(t, http.MethodPost, "/api/archetype", `{"scores": {}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var perCategory map[string]schema.ArchetypeMatch
	if err := json.Unmarshal(rec.Body.Bytes(), &perCategory); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(perCategory) != 6 {
		t.Errorf("%d categories, want 6", len(perCategory))
	}

	if rec := doRequest(t, http.MethodPost, "/api/archetype",
		`{"scores": {}, "category": "nope"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown category: status = %d, want 400", rec.Code)
	}
}
