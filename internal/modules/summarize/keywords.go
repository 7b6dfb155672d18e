package summarize

import (
	"regexp"
	"sort"
	"strings"
)

const maxKeywords = 10

// minKeywordLength excludes short words; stop words are filtered separately.
const minKeywordLength = 3

var nonWordRE = regexp.MustCompile(`[^\w\s]`)

// ExtractKeywords returns the ten most frequent qualifying words in text,
// ties broken by first-encountered order. The function is pure: the same
// input always yields the same ordered sequence.
func ExtractKeywords(text string) []string {
	cleaned := nonWordRE.ReplaceAllString(strings.ToLower(text), "")

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= minKeywordLength {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	// Stable sort keeps first-seen order among equal frequencies.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}
