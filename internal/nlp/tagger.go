// Package nlp defines the linguistic annotation contract the keyword
// pipeline consumes, plus a prose-backed implementation. Any tagger
// producing the same annotations is substitutable.
package nlp

// POS is the coarse part-of-speech category the pipeline distinguishes
type POS string

const (
	POSNoun       POS = "NOUN"
	POSProperNoun POS = "PROPN"
	POSOther      POS = "OTHER"
)

// Entity labels relevant to technical keyword extraction
const (
	EntityOrg       = "ORG"
	EntityProduct   = "PRODUCT"
	EntitySkill     = "SKILL"
	EntityLanguage  = "LANGUAGE"
	EntityWorkOfArt = "WORK_OF_ART"
)

// Token is a single annotated token
type Token struct {
	Text string
	POS  POS
	Stop bool
}

// Span is a labeled stretch of surface text (named entity or noun chunk)
type Span struct {
	Text  string
	Label string
}

// Annotation is the full parse of one text
type Annotation struct {
	Tokens     []Token
	Entities   []Span
	NounChunks []Span
}

// Tagger produces an Annotation for a text. Implementations must be safe
// for concurrent use; the pipeline holds a single instance per process.
type Tagger interface {
	Annotate(text string) (*Annotation, error)
}
