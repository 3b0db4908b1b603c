package nlp

import "strings"

// english stop words, the usual closed-class set
var stopWords = buildStopWords(`
a about above after again against all am an and any are as at be because
been before being below between both but by can did do does doing down
during each few for from further had has have having he her here hers
herself him himself his how i if in into is it its itself just me more
most my myself no nor not now of off on once only or other our ours
ourselves out over own same she should so some such than that the their
theirs them themselves then there these they this those through to too
under until up very was we were what when where which while who whom why
will with you your yours yourself yourselves
`)

func buildStopWords(raw string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(raw) {
		set[w] = true
	}
	return set
}

// IsStopWord reports whether the lowercased word is an English stop word
func IsStopWord(word string) bool {
	return stopWords[strings.ToLower(word)]
}
