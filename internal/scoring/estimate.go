package scoring

import (
	"math/rand"

	"keywordforge/internal/models"
)

// EstimateCompetition guesses ranking difficulty from keyword length,
// falling back to the user's strategy for short keywords. This is a
// heuristic proxy, not measured data.
func EstimateCompetition(keyword string, strategy models.Strategy) models.CompetitionLevel {
	words := wordCount(keyword)

	// Longer keywords typically face lower competition.
	if words >= 5 {
		return models.CompetitionLow
	}
	if words >= 3 {
		return models.CompetitionMedium
	}

	switch strategy {
	case models.StrategyEasyWins:
		return models.CompetitionLow
	case models.StrategyHardMode:
		return models.CompetitionHigh
	default:
		return models.CompetitionMedium
	}
}

// EstimateVolume simulates a monthly search volume for a keyword.
// Shorter keywords draw from higher bands. Values are random within the
// band on every call; consumers must treat them as illustrative only.
func EstimateVolume(keyword string, rng *rand.Rand) int {
	switch words := wordCount(keyword); {
	case words <= 2:
		return 5000 + rng.Intn(45000)
	case words <= 4:
		return 500 + rng.Intn(4500)
	default:
		return 50 + rng.Intn(950)
	}
}

// LabelVolume buckets a raw volume estimate for display.
func LabelVolume(volume int) models.VolumeLabel {
	if volume >= 5000 {
		return models.VolumeHigh
	}
	if volume >= 500 {
		return models.VolumeMedium
	}
	return models.VolumeLow
}
