// Package prompt builds the instruction sent to the language model,
// personalized by the user's platform, goal, strategy, and derived level.
package prompt

import (
	"fmt"
	"strings"

	"keywordforge/internal/models"
)

// SystemPrompt frames the model's role for every generation request.
const SystemPrompt = "You are a keyword research expert. Generate relevant keyword ideas for SEO and content marketing."

// Compose assembles the user prompt for a generation request. Output is
// deterministic given its inputs: four profile-keyed text blocks, the
// topic, a 40/30/30 intent distribution over the requested count, and
// strict JSON-array formatting constraints.
func Compose(topic string, profile models.UserProfile, count int) string {
	buying := count * 40 / 100
	question := count * 30 / 100
	informational := count * 30 / 100

	var b strings.Builder
	b.WriteString(levelContext(profile.Level))
	b.WriteString("\n\nPLATFORM FOCUS: ")
	b.WriteString(platformContext(profile.Platform))
	b.WriteString("\n\nBUSINESS GOAL: ")
	b.WriteString(goalContext(profile.Goal))
	b.WriteString("\n\nSTRATEGY: ")
	b.WriteString(strategyContext(profile.Strategy))
	fmt.Fprintf(&b, "\n\nTOPIC: %q\n", topic)
	fmt.Fprintf(&b, `
Generate EXACTLY %d keyword ideas following this distribution:
- %d BUYING INTENT keywords (2-4 words each) - commercial, transactional
- %d QUESTION keywords (4-8 words each) - how to, what is, why, when
- %d INFORMATIONAL/COMPARISON keywords (3-5 words mixed)

CRITICAL REQUIREMENTS:
1. VARIETY IN LENGTH: Mix short (2-3 words), medium (4-5 words), and long-tail (6+ words)
2. Return ONLY a JSON array of keyword strings, e.g. ["first keyword","second keyword"]
3. NO markdown, NO numbering, NO explanations outside the array
4. Each keyword must be unique and realistic
5. Keywords should be immediately usable for %s on %s

Generate ALL %d keywords now (not less):`,
		count, buying, question, informational, profile.Goal, profile.Platform, count)

	return b.String()
}

// levelContext sets the tone for the user's experience tier.
func levelContext(level models.Level) string {
	switch level {
	case models.LevelBeginner:
		return `You are a keyword strategist helping a BEGINNER. Use:
- Simple, clear keywords
- Lower competition terms
- Educational and foundational topics
- Avoid technical jargon
- Focus on easier wins`
	case models.LevelAdvanced:
		return `You are a keyword strategist helping an ADVANCED user. Use:
- Sophisticated, specific keywords
- Can include higher competition terms
- Commercial and technical language
- Niche expertise assumed
- Focus on competitive opportunities`
	default:
		return `You are a keyword strategist helping an INTERMEDIATE user. Use:
- Moderate complexity keywords
- Balanced competition levels
- Mix of educational and commercial terms
- Some niche-specific language
- Focus on sustainable growth`
	}
}

// platformContext gives platform-specific optimization notes.
func platformContext(platform models.Platform) string {
	switch platform {
	case models.PlatformGoogleSEO:
		return `Google SEO & Blog Content
- Focus on search intent and user questions
- Include informational and comparison keywords
- Consider featured snippet opportunities
- Mix of short and long-tail keywords`
	case models.PlatformAmazonProducts:
		return `Amazon Product Listings
- Focus on product-specific and buying intent keywords
- Include comparison and review keywords
- Consider backend search terms
- Price and feature qualifiers`
	case models.PlatformYouTubeContent:
		return `YouTube Video Optimization
- Focus on searchable video titles and topics
- Include how-to and tutorial keywords
- Consider video description optimization
- Engaging and click-worthy phrases`
	case models.PlatformEtsyDigital:
		return `Etsy Digital Products
- Focus on printable, template, and digital keywords
- Include craft and design niches
- Consider seasonal and niche markets
- Instant download qualifiers`
	case models.PlatformSocialMedia:
		return `TikTok / Instagram Content
- Focus on trending and viral topics
- Include hashtag-style keywords
- Consider short-form content ideas
- Engaging and shareable phrases`
	case models.PlatformAppStore:
		return `App Store Optimization (ASO)
- Focus on app functionality keywords
- Include problem-solving terms
- Consider app category keywords
- Feature and benefit phrases`
	default:
		return `Multi-Platform Strategy
- Focus on versatile, cross-platform keywords
- Include both content and commercial terms
- Consider multiple use cases
- Broadly applicable keywords`
	}
}

// goalContext gives monetization-goal intent notes.
func goalContext(goal models.Goal) string {
	switch goal {
	case models.GoalSellProducts:
		return `Physical Product Sales
- Prioritize buying intent keywords
- Include product comparison terms
- Focus on commercial value
- Price and quality indicators`
	case models.GoalSellDigital:
		return `Digital Product Sales
- Focus on digital product keywords
- Include download and instant access terms
- Niche and specific offerings
- Template and resource keywords`
	case models.GoalAffiliate:
		return `Affiliate Marketing
- Focus on review and comparison keywords
- Include best/top recommendation terms
- High buyer intent phrases
- Product category keywords`
	case models.GoalAdsRevenue:
		return `Ad Revenue / Traffic
- Focus on high-volume informational keywords
- Include question-based terms
- Viral and trending topics
- Broad appeal keywords`
	case models.GoalServices:
		return `Service-Based Business
- Focus on problem-solving keywords
- Include location and service-specific terms
- Professional and B2B keywords
- Consultation and expertise terms`
	default:
		return `General Exploration
- Mix of all keyword types
- Educational foundation
- Broad market understanding
- Discovery-focused terms`
	}
}

// strategyContext gives competition-appetite notes.
func strategyContext(strategy models.Strategy) string {
	switch strategy {
	case models.StrategyEasyWins:
		return `LOW COMPETITION FOCUS
- Prioritize long-tail keywords (4-6 words)
- Specific niche terms
- Lower search volume but easier to rank
- Quick win opportunities`
	case models.StrategyModerate:
		return `BALANCED APPROACH
- Mix of medium-tail (3-4 words) and long-tail keywords
- Moderate competition acceptable
- Balance between volume and difficulty
- Sustainable growth focus`
	case models.StrategyHardMode:
		return `HIGH VOLUME FOCUS
- Can include shorter, more competitive keywords
- Higher search volume targets
- Willing to compete in popular niches
- Aggressive growth strategy`
	default:
		return `AI-OPTIMIZED STRATEGY
- Analyze and mix all approaches
- Balance opportunity with competition
- Focus on best ROI keywords
- Smart difficulty distribution`
	}
}
