// Package skills implements the resume skill-extraction pipeline: isolating
// the Skills section of a markdown resume and distilling it into a
// normalized set of technical keyword phrases.
package skills

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/careergist/careergist/internal/nlp"
)

// SkillSet is a sorted, duplicate-free set of title-cased skill phrases.
// Phrases are compared in their normalized (title-cased) form.
type SkillSet []string

// Contains reports whether phrase (normalized form) is in the set
func (s SkillSet) Contains(phrase string) bool {
	i := sort.SearchStrings(s, phrase)
	return i < len(s) && s[i] == phrase
}

// Intersect returns the phrases present in both sets, sorted
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet, 0)
	for _, p := range s {
		if other.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeSet title-cases raw phrases into canonical comparison form,
// dropping blanks and duplicates. Role catalogs store skills lowercase;
// this brings them onto the same footing as extracted keywords.
func NormalizeSet(raw []string) SkillSet {
	seen := make(map[string]struct{}, len(raw))
	out := make(SkillSet, 0, len(raw))
	for _, r := range raw {
		p := TitleCase(strings.TrimSpace(r))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Config carries the extraction knobs. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	WeakWords []string
}

// DefaultConfig returns the extraction configuration with the curated
// weak-word blocklist.
func DefaultConfig() Config {
	return Config{WeakWords: DefaultWeakWords}
}

var splitRe = regexp.MustCompile(`[/,|•]`)

var entityLabels = map[string]struct{}{
	nlp.EntityOrg:       {},
	nlp.EntityProduct:   {},
	nlp.EntitySkill:     {},
	nlp.EntityLanguage:  {},
	nlp.EntityWorkOfArt: {},
}

// Extractor turns free text into a SkillSet using an injected linguistic
// tagger. It serves both resume skills-section text and combined job-title
// text from favorites and searches.
type Extractor struct {
	tagger nlp.Tagger
	weak   map[string]struct{}
}

// NewExtractor builds an Extractor around a shared tagger instance
func NewExtractor(tagger nlp.Tagger, cfg Config) *Extractor {
	weak := make(map[string]struct{}, len(cfg.WeakWords))
	for _, w := range cfg.WeakWords {
		weak[strings.ToLower(w)] = struct{}{}
	}
	return &Extractor{tagger: tagger, weak: weak}
}

// ExtractKeywords annotates text and runs the extraction passes: entity
// spans, noun chunks, strong standalone tokens, then substring-suppressing
// deduplication. Empty input yields an empty set; a tagger failure is
// returned as an error so it stays distinguishable from "no skills".
func (e *Extractor) ExtractKeywords(text string) (SkillSet, error) {
	if strings.TrimSpace(text) == "" {
		return SkillSet{}, nil
	}

	ann, err := e.tagger.Annotate(text)
	if err != nil {
		return nil, ErrTaggerFailed().WithCause(err)
	}

	candidates := make(map[string]struct{})

	for _, ent := range ann.Entities {
		if _, ok := entityLabels[ent.Label]; ok {
			e.addCleaned(ent.Text, candidates)
		}
	}

	for _, chunk := range ann.NounChunks {
		e.addCleaned(chunk.Text, candidates)
	}

	// strong standalone tokens skip the phrase filter; POS, length, stop
	// and blocklist checks already gate them
	for _, tok := range ann.Tokens {
		word := strings.TrimSpace(tok.Text)
		if (tok.POS == nlp.POSNoun || tok.POS == nlp.POSProperNoun) &&
			utf8.RuneCountInString(word) > 2 &&
			!tok.Stop && !e.isWeak(word) {
			candidates[word] = struct{}{}
		}
	}

	return e.dedupe(candidates), nil
}

func (e *Extractor) addCleaned(raw string, out map[string]struct{}) {
	for _, part := range splitRe.Split(raw, -1) {
		p := strings.TrimSpace(part)
		if e.isValuablePhrase(p) {
			out[p] = struct{}{}
		}
	}
}

// isValuablePhrase keeps one-word candidates only when title-cased in the
// source and not blocklisted, and 2-3 word candidates when no word is
// blocklisted. Anything longer is noise from a mis-chunked sentence.
func (e *Extractor) isValuablePhrase(phrase string) bool {
	words := strings.Fields(phrase)
	switch {
	case len(words) == 0:
		return false
	case len(words) == 1:
		return isTitleWord(words[0]) && !e.isWeak(words[0])
	case len(words) <= 3:
		for _, w := range words {
			if e.isWeak(w) {
				return false
			}
		}
		return true
	}
	return false
}

func (e *Extractor) isWeak(word string) bool {
	_, ok := e.weak[strings.ToLower(word)]
	return ok
}

// dedupe walks candidates longest-first so a phrase wholly contained in an
// already-accepted longer phrase is suppressed ("React" under "React
// Native"). Length ties break lexicographically to keep output
// deterministic.
func (e *Extractor) dedupe(candidates map[string]struct{}) SkillSet {
	ordered := make([]string, 0, len(candidates))
	for c := range candidates {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	accepted := make([]string, 0, len(ordered))
	result := make(SkillSet, 0, len(ordered))
	for _, kw := range ordered {
		low := strings.ToLower(kw)
		contained := false
		for _, seen := range accepted {
			if strings.Contains(seen, low) {
				contained = true
				break
			}
		}
		if contained {
			continue
		}
		accepted = append(accepted, low)
		result = append(result, TitleCase(kw))
	}

	sort.Strings(result)
	return result
}

// TitleCase uppercases every letter that follows a non-letter and
// lowercases the rest, so "machine learning" becomes "Machine Learning"
// and "AWS" becomes "Aws". This is the canonical display and comparison
// form for skill phrases.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// isTitleWord reports whether s is already title-cased: it has at least
// one letter, every letter opening a letter-run is uppercase and the rest
// are lowercase. "Python" and "O'Neill" qualify; "AWS" and "react" do not.
func isTitleWord(s string) bool {
	hasLetter := false
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if prevLetter {
				if unicode.IsUpper(r) {
					return false
				}
			} else if unicode.IsLower(r) {
				return false
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return hasLetter
}
