package nlp

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// ProseTagger implements Tagger on top of jdkato/prose's statistical
// tokenizer, POS tagger and entity recognizer. Construct one at startup
// and share it; prose documents are created per call, so concurrent use
// is safe.
type ProseTagger struct{}

// NewProseTagger creates the process-wide tagger instance
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Annotate parses text into tokens, entity spans and noun-chunk spans
func (t *ProseTagger) Annotate(text string) (*Annotation, error) {
	if strings.TrimSpace(text) == "" {
		return &Annotation{}, nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("prose parse failed: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	words := make([]chunkWord, 0, len(proseTokens))
	for _, pt := range proseTokens {
		tokens = append(tokens, Token{
			Text: pt.Text,
			POS:  mapTag(pt.Tag),
			Stop: IsStopWord(pt.Text),
		})
		words = append(words, chunkWord{Text: pt.Text, Tag: pt.Tag})
	}

	entities := make([]Span, 0)
	for _, ent := range doc.Entities() {
		entities = append(entities, Span{
			Text:  ent.Text,
			Label: strings.ToUpper(ent.Label),
		})
	}

	return &Annotation{
		Tokens:     tokens,
		Entities:   entities,
		NounChunks: nounChunks(words),
	}, nil
}

func mapTag(tag string) POS {
	switch tag {
	case "NN", "NNS":
		return POSNoun
	case "NNP", "NNPS":
		return POSProperNoun
	}
	return POSOther
}
