package models

import "testing"

func TestDetectLevel(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		goal     Goal
		strategy Strategy
		want     Level
	}{
		{"all beginner signals", PlatformNotSure, GoalExploring, StrategyAuto, LevelBeginner},
		{"two beginner signals", PlatformNotSure, GoalExploring, StrategyModerate, LevelBeginner},
		{"all advanced signals", PlatformGoogleSEO, GoalAffiliate, StrategyHardMode, LevelAdvanced},
		{"two advanced signals", PlatformAmazonProducts, GoalServices, StrategyModerate, LevelAdvanced},
		{"mixed defaults intermediate", PlatformYouTubeContent, GoalAdsRevenue, StrategyModerate, LevelIntermediate},
		{"one of each is intermediate", PlatformNotSure, GoalAffiliate, StrategyModerate, LevelIntermediate},
		// Beginner signals are checked before advanced signals.
		{"beginner checked first", PlatformNotSure, GoalExploring, StrategyHardMode, LevelBeginner},
		{"etsy ads moderate", PlatformEtsyDigital, GoalAdsRevenue, StrategyEasyWins, LevelIntermediate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLevel(tt.platform, tt.goal, tt.strategy); got != tt.want {
				t.Errorf("DetectLevel(%v, %v, %v) = %v, want %v", tt.platform, tt.goal, tt.strategy, got, tt.want)
			}
		})
	}
}

func TestDetectLevelDeterministic(t *testing.T) {
	first := DetectLevel(PlatformGoogleSEO, GoalAdsRevenue, StrategyEasyWins)
	for i := 0; i < 10; i++ {
		if got := DetectLevel(PlatformGoogleSEO, GoalAdsRevenue, StrategyEasyWins); got != first {
			t.Fatalf("DetectLevel changed between calls: %v then %v", first, got)
		}
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"google-seo", false},
		{"amazon-products", false},
		{"youtube-content", false},
		{"etsy-digital", false},
		{"social-media", false},
		{"app-store", false},
		{"not-sure", false},
		{"", true},
		{"Google-SEO", true},
		{"myspace", true},
	}

	for _, tt := range tests {
		_, err := ParsePlatform(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePlatform(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestParseGoalAndStrategy(t *testing.T) {
	if _, err := ParseGoal("ads-revenue"); err != nil {
		t.Errorf("ParseGoal(ads-revenue) unexpected error: %v", err)
	}
	if _, err := ParseGoal("get-rich"); err == nil {
		t.Error("ParseGoal(get-rich) expected error")
	}
	if _, err := ParseStrategy("easy-wins"); err != nil {
		t.Errorf("ParseStrategy(easy-wins) unexpected error: %v", err)
	}
	if _, err := ParseStrategy(""); err == nil {
		t.Error("ParseStrategy(\"\") expected error")
	}
}

func TestNewUserProfileDerivesLevel(t *testing.T) {
	p := NewUserProfile(PlatformNotSure, GoalExploring, StrategyAuto)
	if p.Level != LevelBeginner {
		t.Errorf("NewUserProfile level = %v, want beginner", p.Level)
	}
}
