package prompt

import (
	"fmt"
	"strings"
	"testing"

	"keywordforge/internal/models"
)

func TestComposeDeterministic(t *testing.T) {
	profile := models.NewUserProfile(models.PlatformGoogleSEO, models.GoalAdsRevenue, models.StrategyEasyWins)
	first := Compose("yoga for beginners", profile, 30)
	for i := 0; i < 5; i++ {
		if got := Compose("yoga for beginners", profile, 30); got != first {
			t.Fatal("Compose is not deterministic for identical inputs")
		}
	}
}

func TestComposeDistribution(t *testing.T) {
	tests := []struct {
		count         int
		buying        int
		question      int
		informational int
	}{
		{30, 12, 9, 9},
		{50, 20, 15, 15},
		{10, 4, 3, 3},
		// Floor division: buckets may undershoot the total.
		{7, 2, 2, 2},
	}

	profile := models.NewUserProfile(models.PlatformNotSure, models.GoalExploring, models.StrategyAuto)
	for _, tt := range tests {
		p := Compose("keto recipes", profile, tt.count)
		for _, want := range []string{
			fmt.Sprintf("Generate EXACTLY %d keyword ideas", tt.count),
			fmt.Sprintf("- %d BUYING INTENT keywords", tt.buying),
			fmt.Sprintf("- %d QUESTION keywords", tt.question),
			fmt.Sprintf("- %d INFORMATIONAL/COMPARISON keywords", tt.informational),
		} {
			if !strings.Contains(p, want) {
				t.Errorf("Compose(count=%d) missing %q", tt.count, want)
			}
		}
	}
}

func TestComposeIncludesProfileBlocks(t *testing.T) {
	profile := models.NewUserProfile(models.PlatformEtsyDigital, models.GoalSellDigital, models.StrategyHardMode)
	p := Compose("printable planners", profile, 30)

	for _, want := range []string{
		"Etsy Digital Products",
		"Digital Product Sales",
		"HIGH VOLUME FOCUS",
		`TOPIC: "printable planners"`,
		"JSON array",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("Compose missing block %q", want)
		}
	}

	// etsy-digital/sell-digital/hard-mode carries one advanced signal only.
	if !strings.Contains(p, "INTERMEDIATE") {
		t.Error("Compose missing intermediate level context")
	}
}

func TestComposeBeginnerTone(t *testing.T) {
	profile := models.NewUserProfile(models.PlatformNotSure, models.GoalExploring, models.StrategyModerate)
	p := Compose("home workouts", profile, 30)
	if !strings.Contains(p, "helping a BEGINNER") {
		t.Error("Compose missing beginner tone block")
	}
}
