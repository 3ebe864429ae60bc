package ingest

import (
	"regexp"
	"strings"
)

var (
	mentionRe    = regexp.MustCompile(`@\w+`)
	urlRe        = regexp.MustCompile(`https?://\S+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	sentenceRe   = regexp.MustCompile(`[.!?]`)
)

// isUseful applies the noise filter to raw content. Rejections are quality
// decisions, never errors.
func isUseful(content string) bool {
	if len(content) < minContentLength {
		return false
	}

	lower := strings.ToLower(content)

	chatCount := 0
	for _, indicator := range chatIndicators {
		if strings.Contains(lower, indicator) {
			chatCount++
		}
	}
	if chatCount > maxChatIndicators {
		return false
	}

	for _, keyword := range domainKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// cleanContent strips @-mentions and URLs and collapses whitespace.
func cleanContent(content string) string {
	content = mentionRe.ReplaceAllString(content, "")
	content = urlRe.ReplaceAllString(content, "")
	content = whitespaceRe.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}

// recognizedCategory reports whether a record's category label carries a
// known domain hint.
func recognizedCategory(category string) bool {
	_, ok := categoryHints[strings.ToLower(category)]
	return ok
}

// inferType resolves an entity type from the record's category label first,
// then from content keyword groups in rule order. It never fails; unmatched
// content is a concept.
func inferType(category, content string) string {
	if hint, ok := categoryHints[strings.ToLower(category)]; ok {
		return hint
	}

	lower := strings.ToLower(content)
	for _, rule := range typeRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Type
			}
		}
	}
	return ""
}

// extractName derives a short canonical label from cleaned content. An
// interrogative first sentence yields the two tokens after the question word;
// otherwise the first three tokens of the first sentence.
func extractName(content string) string {
	first := content
	interrogative := false
	if loc := sentenceRe.FindStringIndex(content); loc != nil {
		first = content[:loc[0]]
		interrogative = content[loc[0]] == '?'
	}
	first = strings.TrimSpace(first)
	words := strings.Fields(first)

	if interrogative {
		for i, w := range words {
			if questionWords[strings.ToLower(w)] && i < len(words)-1 {
				end := i + 3
				if end > len(words) {
					end = len(words)
				}
				return strings.Join(words[i+1:end], " ")
			}
		}
	}

	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// scoreConfidence computes ingestion-time confidence from content quality.
// Longer content and technical vocabulary raise it, open questions lower it,
// and a recognized category label adds extraction provenance. The result is
// clamped to [0.1, 1.0].
func scoreConfidence(content string, categorized bool) float64 {
	confidence := 0.5

	if len(content) > 100 {
		confidence += 0.2
	}
	if len(content) > 200 {
		confidence += 0.1
	}

	lower := strings.ToLower(content)
	for _, term := range techTerms {
		if strings.Contains(lower, term) {
			confidence += 0.05
		}
	}

	if strings.Contains(content, "?") {
		confidence -= 0.1
	}
	if categorized {
		confidence += 0.1
	}

	if confidence < 0.1 {
		confidence = 0.1
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
