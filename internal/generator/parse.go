package generator

import (
	"encoding/json"
	"regexp"
	"strings"
)

// maxKeywordLength drops runaway lines that are clearly not keywords.
const maxKeywordLength = 100

var (
	codeFencePattern = regexp.MustCompile("```[a-zA-Z]*")
	numberingPattern = regexp.MustCompile(`^\d+[.)]\s*`)
)

// parseKeywords extracts keyword candidates from a raw model response.
// It prefers a JSON array (the format the prompt asks for) and falls
// back to one-keyword-per-line extraction for models that ignore the
// formatting constraints. Returns nil when nothing usable was found.
func parseKeywords(raw string) []string {
	text := codeFencePattern.ReplaceAllString(raw, "")

	if keywords := parseJSONArray(text); len(keywords) > 0 {
		return keywords
	}
	return parseLines(text)
}

// parseJSONArray extracts the first [...] span and decodes it as a
// string array. Anything else (objects, mixed types, truncated output)
// is rejected so the caller can fall back to line parsing.
func parseJSONArray(text string) []string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil
	}

	var decoded []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &decoded); err != nil {
		return nil
	}

	keywords := make([]string, 0, len(decoded))
	for _, kw := range decoded {
		if kw = sanitizeKeyword(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// parseLines treats every non-empty line as a candidate, stripping
// numbering and dropping bullets, headers, and meta-commentary.
func parseLines(text string) []string {
	var keywords []string
	for _, line := range strings.Split(text, "\n") {
		if kw := sanitizeKeyword(line); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// sanitizeKeyword normalizes one candidate, returning "" if it should
// be discarded.
func sanitizeKeyword(line string) string {
	line = numberingPattern.ReplaceAllString(strings.TrimSpace(line), "")
	line = strings.TrimSpace(line)

	if line == "" || len(line) >= maxKeywordLength {
		return ""
	}
	switch line[0] {
	case '*', '-', '#':
		return ""
	}
	if strings.HasPrefix(line, "•") {
		return ""
	}
	lower := strings.ToLower(line)
	// Meta-commentary the model sometimes emits around the list.
	if strings.Contains(lower, "generate") || strings.Contains(lower, "keyword") {
		return ""
	}
	return line
}

// padSuffixes are appended to cloned entries when the model returns
// fewer keywords than requested. Padded entries are format-identical to
// genuine ones but lower fidelity.
var padSuffixes = []string{" guide", " tips", " ideas", " for beginners"}

// padKeywords extends keywords to exactly count entries by cloning
// existing entries from the tail with a suffix appended. The first
// len(keywords) entries are returned unmodified.
func padKeywords(keywords []string, count int) []string {
	if len(keywords) >= count || len(keywords) == 0 {
		return keywords
	}

	padded := make([]string, len(keywords), count)
	copy(padded, keywords)
	for i := 0; len(padded) < count; i++ {
		base := keywords[len(keywords)-1-(i%len(keywords))]
		padded = append(padded, base+padSuffixes[i%len(padSuffixes)])
	}
	return padded
}
