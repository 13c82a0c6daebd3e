package scoring

import (
	"math"
	"math/rand"
	"strings"

	"keywordforge/internal/models"
)

// Weights of the five fit components. They sum to 1.0, so the composite
// score stays in [0,100].
const (
	weightIntent       = 0.30
	weightCompetition  = 0.25
	weightVolume       = 0.20
	weightMonetization = 0.15
	weightLevel        = 0.10
)

// Scorer computes Business Fit Scores. The RNG drives the simulated
// volume estimates only; everything else is deterministic.
type Scorer struct {
	rng *rand.Rand
}

// New creates a Scorer backed by the given RNG.
func New(rng *rand.Rand) *Scorer {
	return &Scorer{rng: rng}
}

// Score rates how well a keyword fits the user's profile, producing the
// composite 0-100 score with its component breakdown and rationale.
func (s *Scorer) Score(keyword string, profile models.UserProfile) models.ScoredKeyword {
	kwType := DetectKeywordType(keyword)
	competition := EstimateCompetition(keyword, profile.Strategy)
	volume := EstimateVolume(keyword, s.rng)
	words := wordCount(keyword)

	breakdown := models.FitBreakdown{
		IntentMatch:     intentMatch(profile.Goal, kwType),
		CompetitionFit:  competitionFit(profile.Strategy, competition),
		VolumePotential: volumePotential(profile.Strategy, volume),
		MonetizationFit: monetizationFit(profile.Goal, kwType),
		LevelMatch:      levelMatch(profile.Level, words),
	}

	score := int(math.Round(
		float64(breakdown.IntentMatch)*weightIntent +
			float64(breakdown.CompetitionFit)*weightCompetition +
			float64(breakdown.VolumePotential)*weightVolume +
			float64(breakdown.MonetizationFit)*weightMonetization +
			float64(breakdown.LevelMatch)*weightLevel))

	return models.ScoredKeyword{
		Text:             keyword,
		BusinessFitScore: score,
		Breakdown:        breakdown,
		Type:             kwType,
		Competition:      competition,
		VolumeEstimate:   volume,
		VolumeLabel:      LabelVolume(volume),
		MoneyLabel:       moneyLabel(profile.Goal, kwType),
		Reasoning:        reasoning(keyword, kwType, competition, score, profile.Goal, profile.Strategy),
	}
}

// intentMatch scores how well an intent type serves a monetization goal.
func intentMatch(goal models.Goal, kwType models.KeywordType) int {
	switch goal {
	case models.GoalSellProducts:
		switch kwType {
		case models.TypeBuying:
			return 95
		case models.TypeComparison:
			return 85
		case models.TypeQuestion:
			return 70
		default:
			return 60
		}
	case models.GoalSellDigital:
		switch kwType {
		case models.TypeBuying:
			return 90
		case models.TypeComparison:
			return 80
		case models.TypeQuestion:
			return 70
		default:
			return 65
		}
	case models.GoalAffiliate:
		switch kwType {
		case models.TypeBuying:
			return 95
		case models.TypeComparison:
			return 90
		case models.TypeQuestion:
			return 65
		default:
			return 60
		}
	case models.GoalAdsRevenue:
		switch kwType {
		case models.TypeQuestion:
			return 95
		case models.TypeInformational:
			return 90
		case models.TypeComparison:
			return 75
		default:
			return 70
		}
	case models.GoalServices:
		switch kwType {
		case models.TypeQuestion:
			return 90
		case models.TypeBuying:
			return 85
		case models.TypeInformational:
			return 80
		default:
			return 75
		}
	case models.GoalExploring:
		switch kwType {
		case models.TypeInformational, models.TypeQuestion:
			return 80
		default:
			return 75
		}
	}
	return 70
}

// competitionFit scores a competition estimate against the strategy.
func competitionFit(strategy models.Strategy, competition models.CompetitionLevel) int {
	switch strategy {
	case models.StrategyEasyWins:
		switch competition {
		case models.CompetitionLow:
			return 95
		case models.CompetitionMedium:
			return 60
		default:
			return 30
		}
	case models.StrategyModerate:
		switch competition {
		case models.CompetitionMedium:
			return 90
		case models.CompetitionLow:
			return 85
		default:
			return 60
		}
	case models.StrategyHardMode:
		switch competition {
		case models.CompetitionHigh:
			return 95
		case models.CompetitionMedium:
			return 85
		default:
			return 70
		}
	case models.StrategyAuto:
		switch competition {
		case models.CompetitionLow:
			return 90
		case models.CompetitionMedium:
			return 85
		default:
			return 70
		}
	}
	return 70
}

// volumePotential scores a simulated volume against the strategy's appetite.
func volumePotential(strategy models.Strategy, volume int) int {
	switch strategy {
	case models.StrategyHardMode:
		// Prefer high volume.
		if volume >= 5000 {
			return 95
		}
		if volume >= 1000 {
			return 75
		}
		return 50
	case models.StrategyEasyWins:
		// Lower volume is okay.
		if volume >= 100 && volume <= 1000 {
			return 90
		}
		if volume > 1000 {
			return 70
		}
		return 85
	default:
		// Balanced.
		if volume >= 500 && volume <= 5000 {
			return 90
		}
		if volume > 5000 {
			return 80
		}
		return 70
	}
}

// monetizationFit scores how directly an intent type converts for a goal.
func monetizationFit(goal models.Goal, kwType models.KeywordType) int {
	switch goal {
	case models.GoalSellProducts, models.GoalSellDigital, models.GoalAffiliate:
		if kwType == models.TypeBuying || kwType == models.TypeComparison {
			return 90
		}
		return 65
	case models.GoalAdsRevenue:
		if kwType == models.TypeQuestion || kwType == models.TypeInformational {
			return 90
		}
		return 70
	default:
		return 75
	}
}

// levelMatch scores keyword length against the user's experience tier.
func levelMatch(level models.Level, words int) int {
	switch level {
	case models.LevelBeginner:
		// Prefer longer, easier keywords.
		if words >= 4 {
			return 90
		}
		return 70
	case models.LevelAdvanced:
		return 85
	default:
		if words >= 3 {
			return 90
		}
		return 75
	}
}

// moneyLabel names the monetization path a keyword feeds for the goal.
func moneyLabel(goal models.Goal, kwType models.KeywordType) string {
	switch goal {
	case models.GoalSellProducts, models.GoalSellDigital:
		if kwType == models.TypeBuying || kwType == models.TypeComparison {
			return "Product Sales"
		}
		return "Traffic / Awareness"
	case models.GoalAffiliate:
		if kwType == models.TypeBuying || kwType == models.TypeComparison {
			return "Affiliate Commissions"
		}
		return "Traffic / Content"
	case models.GoalAdsRevenue:
		return "Ad Revenue"
	case models.GoalServices:
		if kwType == models.TypeQuestion {
			return "Lead Generation"
		}
		return "Service Inquiry"
	}
	return "Traffic"
}

// goalDescription is the high-score rationale phrase per goal.
func goalDescription(goal models.Goal) string {
	switch goal {
	case models.GoalSellProducts:
		return "Perfect for product listings"
	case models.GoalSellDigital:
		return "Great for digital products"
	case models.GoalAffiliate:
		return "High affiliate potential"
	case models.GoalAdsRevenue:
		return "Strong traffic potential"
	case models.GoalServices:
		return "Lead generation opportunity"
	default:
		return "Good discovery keyword"
	}
}

// reasoning concatenates the rule phrases that apply to this keyword.
func reasoning(keyword string, kwType models.KeywordType, competition models.CompetitionLevel, score int, goal models.Goal, strategy models.Strategy) string {
	var reasons []string

	if competition == models.CompetitionLow {
		reasons = append(reasons, "Low competition")
	} else if competition == models.CompetitionHigh && strategy == models.StrategyHardMode {
		reasons = append(reasons, "High volume opportunity")
	}

	if kwType == models.TypeBuying && (goal == models.GoalSellProducts || goal == models.GoalSellDigital) {
		reasons = append(reasons, "Strong buying intent")
	} else if kwType == models.TypeQuestion && goal == models.GoalAdsRevenue {
		reasons = append(reasons, "High engagement potential")
	}

	if strategy == models.StrategyEasyWins && wordCount(keyword) >= 4 {
		reasons = append(reasons, "Long-tail opportunity")
	}

	if score >= 85 {
		reasons = append(reasons, goalDescription(goal))
	}

	if len(reasons) == 0 {
		return "Good opportunity for your niche"
	}
	return strings.Join(reasons, " • ")
}
