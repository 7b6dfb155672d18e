package summarize

// stopWords are common English function words excluded from keyword ranking.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "from": {}, "up": {}, "about": {}, "into": {},
	"through": {}, "during": {}, "before": {}, "after": {}, "above": {},
	"below": {}, "between": {}, "among": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "being": {}, "have": {},
	"has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "should": {}, "could": {}, "can": {}, "may": {},
	"might": {}, "must": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {},
	"we": {}, "they": {}, "me": {}, "him": {}, "her": {}, "us": {},
	"them": {}, "my": {}, "your": {}, "his": {}, "its": {}, "our": {},
	"their": {}, "as": {}, "if": {}, "then": {}, "than": {}, "so": {},
	"too": {}, "very": {}, "just": {}, "also": {}, "not": {}, "no": {},
	"nor": {}, "only": {}, "own": {}, "same": {}, "such": {}, "both": {},
	"each": {}, "few": {}, "more": {}, "most": {}, "other": {},
	"some": {}, "any": {}, "all": {}, "there": {}, "here": {},
	"when": {}, "where": {}, "why": {}, "how": {}, "what": {},
	"which": {}, "who": {}, "whom": {},
}
