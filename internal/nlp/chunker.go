package nlp

import "strings"

// chunkWord is the minimal token view the chunker needs
type chunkWord struct {
	Text string
	Tag  string // Penn Treebank tag
}

func isNounTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

func isAdjectiveTag(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS":
		return true
	}
	return false
}

// nounChunks extracts flat noun phrases: maximal runs of adjectives and
// nouns that contain at least one noun. This stands in for a full
// dependency-based chunker; it is what turns "React Native" into one span.
func nounChunks(words []chunkWord) []Span {
	var chunks []Span
	var run []chunkWord
	hasNoun := false

	flush := func() {
		if hasNoun && len(run) > 0 {
			parts := make([]string, 0, len(run))
			for _, w := range run {
				parts = append(parts, w.Text)
			}
			chunks = append(chunks, Span{Text: strings.Join(parts, " "), Label: "NP"})
		}
		run = nil
		hasNoun = false
	}

	for _, w := range words {
		switch {
		case isNounTag(w.Tag):
			run = append(run, w)
			hasNoun = true
		case isAdjectiveTag(w.Tag) && !hasNoun:
			// adjectives may only open a chunk, not continue one past a noun
			run = append(run, w)
		default:
			flush()
		}
	}
	flush()

	return chunks
}
