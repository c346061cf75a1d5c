// Package lexicon holds the static word lists the analyzers match
// against: sentiment marker words, topic keyword sets, and the two
// stop-word sets. Everything here is fixed at startup and read-only,
// so concurrent analysis invocations can share it freely.
package lexicon

// Positive marker words. Matching is lowercase substring containment,
// so inflected forms ("loved", "recommended") hit their base word.
var Positive = map[string]struct{}{
	"good": {}, "great": {}, "excellent": {}, "amazing": {}, "wonderful": {}, "fantastic": {},
	"outstanding": {}, "perfect": {}, "love": {}, "like": {}, "enjoy": {}, "satisfied": {},
	"happy": {}, "pleased": {}, "impressed": {}, "recommend": {}, "best": {}, "awesome": {},
}

// Negative marker words.
var Negative = map[string]struct{}{
	"bad": {}, "terrible": {}, "awful": {}, "horrible": {}, "disappointed": {}, "frustrated": {},
	"angry": {}, "upset": {}, "hate": {}, "dislike": {}, "poor": {}, "worst": {}, "useless": {},
	"broken": {}, "defective": {}, "slow": {}, "expensive": {}, "difficult": {}, "confusing": {},
}

// Topic binds a label to its marker keywords. A row mentions the topic
// when its lowercased text contains any keyword as a substring.
type Topic struct {
	Label    string
	Keywords []string
}

// Topics in declaration order. The order is the tie-break for equal
// mention counts in the topic report.
var Topics = []Topic{
	{Label: "Customer Service", Keywords: []string{"service", "support", "help", "assistant", "representative", "agent"}},
	{Label: "Product Quality", Keywords: []string{"quality", "product", "item", "goods", "material", "durability"}},
	{Label: "Price/Value", Keywords: []string{"price", "cost", "expensive", "cheap", "value", "worth", "money"}},
	{Label: "Delivery/Shipping", Keywords: []string{"delivery", "shipping", "arrived", "package", "mail", "transport"}},
	{Label: "Website/App", Keywords: []string{"website", "app", "online", "interface", "user", "navigation"}},
	{Label: "Communication", Keywords: []string{"communication", "email", "phone", "message", "contact", "response"}},
}

// stopWords is the full stop-word set used by keyword extraction.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"may": {}, "might": {}, "can": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {},
}

// summaryStopWords is the smaller set used when picking summary themes.
var summaryStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
}

// IsStopWord reports membership in the keyword-extraction stop-word set.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// IsSummaryStopWord reports membership in the summary stop-word set.
func IsSummaryStopWord(word string) bool {
	_, ok := summaryStopWords[word]
	return ok
}
