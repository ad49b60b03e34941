// Package scoring applies a carrier response to a value profile: when the
// user answers how they lean on one carrier, each targeted value moves by a
// polarity-weighted delta. Pure functions; the input profile is never
// mutated.
package scoring

import (
	"fmt"
	"math"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/polarity"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

// deltaScale converts a full-strength, full-polarity response into half the
// score scale: responseStrength ±1 on a ±1 polarity moves a value by 3.5.
const deltaScale = 3.5

// ResponseStrengthFromScale maps a 5-point questionnaire answer to a
// response strength. Point 1 means the respondent strongly favors the
// carrier's high-polarity pole (+1.0), point 5 strongly favors the low pole
// (-1.0), point 3 is neutral.
func ResponseStrengthFromScale(point int) (float64, error) {
	switch point {
	case 1:
		return 1.0, nil
	case 2:
		return 0.5, nil
	case 3:
		return 0.0, nil
	case 4:
		return -0.5, nil
	case 5:
		return -1.0, nil
	}
	return 0, fmt.Errorf("scoring: scale point must be 1-5, got %d", point)
}

// UpdateScores returns a new profile with each listed code moved by
// polarity(code, carrierID) × responseStrength × 3.5, clamped to [0,7] and
// rounded to 1 decimal half-away-from-zero (math.Round). Codes not listed
// are copied unchanged. Incoming scores outside [0,7] are clamped before
// the delta is applied. responseStrength outside [-1,1] or an unknown code
// or carrier is a caller contract violation.
func UpdateScores(scores schema.ValueScores, carrierID string, responseStrength float64, codes []string) (schema.ValueScores, error) {
	if responseStrength < -1 || responseStrength > 1 {
		return nil, fmt.Errorf("scoring: responseStrength %v outside [-1,1]", responseStrength)
	}
	if _, err := catalog.CarrierByID(carrierID); err != nil {
		return nil, err
	}
	for _, code := range codes {
		if _, err := catalog.ValueByCode(code); err != nil {
			return nil, err
		}
	}

	out := scores.Clone()
	for _, code := range codes {
		current := clamp(scores.Get(code))
		delta := polarity.GetPolarity(code, carrierID) * responseStrength * deltaScale
		out[code] = round1(clamp(current + delta))
	}
	return out, nil
}

func clamp(x float64) float64 {
	if x < schema.ScoreMin {
		return schema.ScoreMin
	}
	if x > schema.ScoreMax {
		return schema.ScoreMax
	}
	return x
}

// round1 rounds to one decimal place, halves away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
