package models

import "fmt"

// Platform is where the user wants their keywords to perform.
type Platform string

const (
	PlatformGoogleSEO      Platform = "google-seo"
	PlatformAmazonProducts Platform = "amazon-products"
	PlatformYouTubeContent Platform = "youtube-content"
	PlatformEtsyDigital    Platform = "etsy-digital"
	PlatformSocialMedia    Platform = "social-media"
	PlatformAppStore       Platform = "app-store"
	PlatformNotSure        Platform = "not-sure"
)

// Goal is the user's monetization goal.
type Goal string

const (
	GoalSellProducts Goal = "sell-products"
	GoalSellDigital  Goal = "sell-digital"
	GoalAffiliate    Goal = "affiliate"
	GoalAdsRevenue   Goal = "ads-revenue"
	GoalServices     Goal = "services"
	GoalExploring    Goal = "exploring"
)

// Strategy is the user's competition-tolerance preference.
type Strategy string

const (
	StrategyEasyWins Strategy = "easy-wins"
	StrategyModerate Strategy = "moderate"
	StrategyHardMode Strategy = "hard-mode"
	StrategyAuto     Strategy = "auto"
)

// Level is the derived user sophistication tier.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// UserProfile holds the three onboarding answers plus the derived level.
// It is computed once per request and never persisted.
type UserProfile struct {
	Platform Platform `json:"platform"`
	Goal     Goal     `json:"goal"`
	Strategy Strategy `json:"strategy"`
	Level    Level    `json:"level"`
}

// ParsePlatform validates a raw platform value from the wizard.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(s); p {
	case PlatformGoogleSEO, PlatformAmazonProducts, PlatformYouTubeContent,
		PlatformEtsyDigital, PlatformSocialMedia, PlatformAppStore, PlatformNotSure:
		return p, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// ParseGoal validates a raw goal value from the wizard.
func ParseGoal(s string) (Goal, error) {
	switch g := Goal(s); g {
	case GoalSellProducts, GoalSellDigital, GoalAffiliate,
		GoalAdsRevenue, GoalServices, GoalExploring:
		return g, nil
	}
	return "", fmt.Errorf("unknown goal %q", s)
}

// ParseStrategy validates a raw strategy value from the wizard.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyEasyWins, StrategyModerate, StrategyHardMode, StrategyAuto:
		return st, nil
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

// NewUserProfile builds a profile from validated answers and derives the level.
func NewUserProfile(platform Platform, goal Goal, strategy Strategy) UserProfile {
	return UserProfile{
		Platform: platform,
		Goal:     goal,
		Strategy: strategy,
		Level:    DetectLevel(platform, goal, strategy),
	}
}

// DetectLevel derives the user's experience tier from their onboarding
// answers by counting beginner and advanced signals. Two or more signals
// in a group decide the tier; beginner wins ties.
func DetectLevel(platform Platform, goal Goal, strategy Strategy) Level {
	beginnerSignals := 0
	if platform == PlatformNotSure {
		beginnerSignals++
	}
	if goal == GoalExploring {
		beginnerSignals++
	}
	if strategy == StrategyAuto {
		beginnerSignals++
	}

	advancedSignals := 0
	if platform == PlatformAmazonProducts || platform == PlatformGoogleSEO {
		advancedSignals++
	}
	if goal == GoalServices || goal == GoalAffiliate {
		advancedSignals++
	}
	if strategy == StrategyHardMode {
		advancedSignals++
	}

	if beginnerSignals >= 2 {
		return LevelBeginner
	}
	if advancedSignals >= 2 {
		return LevelAdvanced
	}
	return LevelIntermediate
}

// PlatformName returns the display name for a platform.
func PlatformName(p Platform) string {
	switch p {
	case PlatformGoogleSEO:
		return "Google / SEO"
	case PlatformAmazonProducts:
		return "Amazon Products"
	case PlatformYouTubeContent:
		return "YouTube"
	case PlatformEtsyDigital:
		return "Etsy"
	case PlatformSocialMedia:
		return "TikTok / Instagram"
	case PlatformAppStore:
		return "App Store"
	case PlatformNotSure:
		return "Not sure yet"
	}
	return string(p)
}

// GoalName returns the display name for a goal.
func GoalName(g Goal) string {
	switch g {
	case GoalSellProducts:
		return "Selling products"
	case GoalSellDigital:
		return "Selling digital products"
	case GoalAffiliate:
		return "Affiliate marketing"
	case GoalAdsRevenue:
		return "Ads revenue"
	case GoalServices:
		return "Selling services"
	case GoalExploring:
		return "Just exploring"
	}
	return string(g)
}

// StrategyName returns the display name for a strategy.
func StrategyName(s Strategy) string {
	switch s {
	case StrategyEasyWins:
		return "Easy wins (low competition)"
	case StrategyModerate:
		return "Balanced approach"
	case StrategyHardMode:
		return "High volume (more competitive)"
	case StrategyAuto:
		return "Let AI decide for me"
	}
	return string(s)
}
