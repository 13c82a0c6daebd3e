// Package scoring implements the Business Fit Score engine: keyword
// intent detection, heuristic competition/volume estimates, and the
// 5-factor weighted score with a human-readable rationale.
package scoring

import (
	"strings"

	"keywordforge/internal/models"
)

// Intent pattern lists, checked in priority order. A keyword matching
// several lists takes the first match: buying > question > comparison.
var (
	buyingPatterns = []string{
		"best", "top", "buy", "purchase", "price", "cheap", "affordable", "review", "deal",
	}
	questionPatterns = []string{
		"how to", "what is", "why", "when", "where", "can i", "should i",
	}
	comparisonPatterns = []string{
		"vs", "versus", "or", "compared", "comparison", "difference between",
	}
)

// DetectKeywordType classifies a keyword into exactly one intent
// category by case-insensitive substring matching. Informational is the
// fallback when no pattern matches.
func DetectKeywordType(keyword string) models.KeywordType {
	lower := strings.ToLower(keyword)

	for _, p := range buyingPatterns {
		if strings.Contains(lower, p) {
			return models.TypeBuying
		}
	}
	for _, p := range questionPatterns {
		if strings.Contains(lower, p) {
			return models.TypeQuestion
		}
	}
	for _, p := range comparisonPatterns {
		if strings.Contains(lower, p) {
			return models.TypeComparison
		}
	}
	return models.TypeInformational
}

// wordCount counts whitespace-separated words in a keyword.
func wordCount(keyword string) int {
	return len(strings.Fields(keyword))
}
