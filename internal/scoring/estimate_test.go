package scoring

import (
	"math/rand"
	"testing"

	"keywordforge/internal/models"
)

func TestEstimateCompetition(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		strategy models.Strategy
		want     models.CompetitionLevel
	}{
		{"five words is low", "best yoga mat for beginners", models.StrategyHardMode, models.CompetitionLow},
		{"six words is low", "how to start yoga at home", models.StrategyHardMode, models.CompetitionLow},
		{"three words is medium", "yoga mat review", models.StrategyEasyWins, models.CompetitionMedium},
		{"four words is medium", "cheap yoga mat online", models.StrategyHardMode, models.CompetitionMedium},
		{"short easy-wins defaults low", "yoga mat", models.StrategyEasyWins, models.CompetitionLow},
		{"short hard-mode defaults high", "yoga mat", models.StrategyHardMode, models.CompetitionHigh},
		{"short moderate defaults medium", "yoga mat", models.StrategyModerate, models.CompetitionMedium},
		{"short auto defaults medium", "yoga", models.StrategyAuto, models.CompetitionMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateCompetition(tt.keyword, tt.strategy); got != tt.want {
				t.Errorf("EstimateCompetition(%q, %v) = %v, want %v", tt.keyword, tt.strategy, got, tt.want)
			}
		})
	}
}

// Volume is randomized by design; assert only that draws stay inside the
// band for the keyword's word-count tier.
func TestEstimateVolumeBands(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		keyword string
		min     int
		max     int // exclusive
	}{
		{"two words high band", "yoga mat", 5000, 50000},
		{"one word high band", "yoga", 5000, 50000},
		{"three words mid band", "yoga mat review", 500, 5000},
		{"four words mid band", "best yoga mat online", 500, 5000},
		{"five words low band", "best yoga mat for beginners", 50, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				got := EstimateVolume(tt.keyword, rng)
				if got < tt.min || got >= tt.max {
					t.Fatalf("EstimateVolume(%q) = %d, want [%d,%d)", tt.keyword, got, tt.min, tt.max)
				}
			}
		})
	}
}

func TestLabelVolume(t *testing.T) {
	tests := []struct {
		volume int
		want   models.VolumeLabel
	}{
		{49999, models.VolumeHigh},
		{5000, models.VolumeHigh},
		{4999, models.VolumeMedium},
		{500, models.VolumeMedium},
		{499, models.VolumeLow},
		{50, models.VolumeLow},
	}

	for _, tt := range tests {
		if got := LabelVolume(tt.volume); got != tt.want {
			t.Errorf("LabelVolume(%d) = %v, want %v", tt.volume, got, tt.want)
		}
	}
}
