package summarize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_FrequencyOrder(t *testing.T) {
	text := "Kubernetes cluster cluster cluster networking networking storage"

	keywords := ExtractKeywords(text)

	assert.Equal(t, []string{"cluster", "networking", "kubernetes", "storage"}, keywords)
}

func TestExtractKeywords_SkipsStopWordsAndShortWords(t *testing.T) {
	text := "The cat sat on the mat with some very large pumpkins and the dog ran far"

	keywords := ExtractKeywords(text)

	for _, kw := range keywords {
		assert.Greater(t, len(kw), 3)
		_, isStop := stopWords[kw]
		assert.False(t, isStop, "stop word %q leaked into keywords", kw)
	}
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "cat")
}

func TestExtractKeywords_StripsPunctuationAndLowercases(t *testing.T) {
	text := "Golang, Golang! GOLANG? Concurrency; concurrency."

	keywords := ExtractKeywords(text)

	assert.Equal(t, []string{"golang", "concurrency"}, keywords)
}

func TestExtractKeywords_CapsAtTen(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echofoxtrot", "golf",
		"hotel", "indigo", "juliet", "kilogram", "lima", "mikexray",
	}
	text := strings.Join(words, " ")

	keywords := ExtractKeywords(text)

	assert.Len(t, keywords, maxKeywords)
}

func TestExtractKeywords_Idempotent(t *testing.T) {
	text := "Distributed systems demand careful observability, tracing, and structured logging across services."

	first := ExtractKeywords(text)
	second := ExtractKeywords(text)

	assert.Equal(t, first, second)
}

func TestExtractKeywords_TieBreaksByFirstAppearance(t *testing.T) {
	text := "zebra apple zebra apple mango"

	keywords := ExtractKeywords(text)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, keywords)
}
