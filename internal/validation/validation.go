package validation

import (
	"regexp"
	"strings"
)

// MaxTopicLength bounds the topic to keep prompts a predictable size.
const MaxTopicLength = 200

var whitespacePattern = regexp.MustCompile(`\s+`)

// NormalizeTopic trims and collapses internal whitespace so equivalent
// topics produce identical prompts.
func NormalizeTopic(topic string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(topic), " ")
}

// ValidateTopic checks a normalized topic, returning a user-facing
// message on failure.
func ValidateTopic(topic string) (bool, string) {
	if topic == "" {
		return false, "Topic is required"
	}
	if len(topic) > MaxTopicLength {
		return false, "Topic is too long"
	}
	return true, ""
}
