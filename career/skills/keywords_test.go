package skills_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careergist/careergist/career/skills"
	"github.com/careergist/careergist/internal/nlp"
	"github.com/careergist/careergist/pkg/errx"
)

// fakeTagger returns canned annotations keyed by input text, so extraction
// behavior is tested without a statistical model in the loop.
type fakeTagger struct {
	annotations map[string]*nlp.Annotation
	err         error
	calls       int
}

func (f *fakeTagger) Annotate(text string) (*nlp.Annotation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if ann, ok := f.annotations[text]; ok {
		return ann, nil
	}
	return &nlp.Annotation{}, nil
}

func tok(text string, pos nlp.POS) nlp.Token {
	return nlp.Token{Text: text, POS: pos, Stop: nlp.IsStopWord(text)}
}

func span(text, label string) nlp.Span {
	return nlp.Span{Text: text, Label: label}
}

func newExtractor(tagger nlp.Tagger) *skills.Extractor {
	return skills.NewExtractor(tagger, skills.DefaultConfig())
}

func TestExtractKeywordsEmptyInput(t *testing.T) {
	tagger := &fakeTagger{}
	e := newExtractor(tagger)

	got, err := e.ExtractKeywords("")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, tagger.calls, "tagger must not run on empty input")

	got, err = e.ExtractKeywords("   \n\t")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractKeywordsTaggerFailure(t *testing.T) {
	e := newExtractor(&fakeTagger{err: errors.New("model load failed")})

	got, err := e.ExtractKeywords("Python, Go")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errx.IsType(err, errx.TypeExternal),
		"tagger failure must not look like an empty skill set")
}

func TestExtractKeywordsSubstringSuppression(t *testing.T) {
	text := "React Native and React"
	tagger := &fakeTagger{annotations: map[string]*nlp.Annotation{
		text: {
			Tokens: []nlp.Token{
				tok("React", nlp.POSProperNoun),
				tok("Native", nlp.POSProperNoun),
				tok("and", nlp.POSOther),
				tok("React", nlp.POSProperNoun),
			},
			NounChunks: []nlp.Span{span("React Native", "NP")},
		},
	}}

	got, err := newExtractor(tagger).ExtractKeywords(text)
	require.NoError(t, err)
	assert.Equal(t, skills.SkillSet{"React Native"}, got)
}

func TestExtractKeywordsEntityPassSplitsDelimiters(t *testing.T) {
	text := "Python/Django | Flask"
	tagger := &fakeTagger{annotations: map[string]*nlp.Annotation{
		text: {
			Entities: []nlp.Span{span("Python/Django | Flask", nlp.EntityOrg)},
		},
	}}

	got, err := newExtractor(tagger).ExtractKeywords(text)
	require.NoError(t, err)
	assert.Equal(t, skills.SkillSet{"Django", "Flask", "Python"}, got)
}

func TestExtractKeywordsIgnoresIrrelevantEntities(t *testing.T) {
	text := "John Smith uses Kubernetes"
	tagger := &fakeTagger{annotations: map[string]*nlp.Annotation{
		text: {
			Entities: []nlp.Span{
				span("John Smith", "PERSON"),
				span("Kubernetes", nlp.EntityProduct),
			},
		},
	}}

	got, err := newExtractor(tagger).ExtractKeywords(text)
	require.NoError(t, err)
	assert.Equal(t, skills.SkillSet{"Kubernetes"}, got)
}

func TestExtractKeywordsWeakWordsDropped(t *testing.T) {
	text := "Senior Software Engineer, Python, Seattle"
	tagger := &fakeTagger{annotations: map[string]*nlp.Annotation{
		text: {
			Tokens: []nlp.Token{
				tok("Senior", nlp.POSProperNoun),
				tok("Software", nlp.POSProperNoun),
				tok("Engineer", nlp.POSProperNoun),
				tok("Python", nlp.POSProperNoun),
				tok("Seattle", nlp.POSProperNoun),
			},
			NounChunks: []nlp.Span{
				span("Senior Software Engineer", "NP"),
				span("Python", "NP"),
				span("Seattle", "NP"),
			},
		},
	}}

	got, err := newExtractor(tagger).ExtractKeywords(text)
	require.NoError(t, err)
	assert.Equal(t, skills.SkillSet{"Python"}, got)
}

func TestExtractKeywordsLongChunksDropped(t *testing.T) {
	text := "a very long noun phrase here"
	tagger := &fakeTagger{annotations: map[string]*nlp.Annotation{
		text: {
			NounChunks: []nlp.Span{span("very long noun phrase here", "NP")},
		},
	}}

	got, err := newExtractor(tagger).ExtractKeywords(text)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractKeywordsLowercaseSingleChunkNeedsTitleCase(t *testing.T) {
	text := "react and PostgreSQL"
	tagger := &fakeTagger{annotations: map[string]*nlp.Annotation{
		text: {
			NounChunks: []nlp.Span{
				span("react", "NP"),
				span("PostgreSQL", "NP"),
			},
		},
	}}

	// "react" fails the title-case gate for single-word phrases and
	// "PostgreSQL" has an uppercase letter mid-run, so neither survives
	// the chunk pass. No strong tokens were supplied to rescue them.
	got, err := newExtractor(tagger).ExtractKeywords(text)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractKeywordsStrongTokensBypassTitleGate(t *testing.T) {
	text := "terraform ansible"
	tagger := &fakeTagger{annotations: map[string]*nlp.Annotation{
		text: {
			Tokens: []nlp.Token{
				tok("terraform", nlp.POSNoun),
				tok("ansible", nlp.POSNoun),
			},
		},
	}}

	got, err := newExtractor(tagger).ExtractKeywords(text)
	require.NoError(t, err)
	assert.Equal(t, skills.SkillSet{"Ansible", "Terraform"}, got)
}

func TestExtractKeywordsInvariants(t *testing.T) {
	text := "Python, React Native, React, AWS Lambda, Lambda"
	tagger := &fakeTagger{annotations: map[string]*nlp.Annotation{
		text: {
			Tokens: []nlp.Token{
				tok("Python", nlp.POSProperNoun),
				tok("React", nlp.POSProperNoun),
				tok("Native", nlp.POSProperNoun),
				tok("AWS", nlp.POSProperNoun),
				tok("Lambda", nlp.POSProperNoun),
				tok("Lambda", nlp.POSProperNoun),
			},
			NounChunks: []nlp.Span{
				span("React Native", "NP"),
				span("AWS Lambda", "NP"),
				span("Python", "NP"),
			},
		},
	}}
	e := newExtractor(tagger)

	got, err := e.ExtractKeywords(text)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	// no element is a substring of another, case-insensitively
	for i, a := range got {
		for j, b := range got {
			if i == j {
				continue
			}
			assert.NotContains(t, strings.ToLower(b), strings.ToLower(a),
				"%q contained in %q", a, b)
		}
	}

	// no element lowercases to a blocklist entry
	weak := make(map[string]struct{})
	for _, w := range skills.DefaultWeakWords {
		weak[w] = struct{}{}
	}
	for _, p := range got {
		_, blocked := weak[strings.ToLower(p)]
		assert.False(t, blocked, "blocklisted phrase %q in result", p)
	}

	// identical input, identical output
	again, err := e.ExtractKeywords(text)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestExtractKeywordsIdempotent(t *testing.T) {
	first := "Python and React Native"
	tagger := &fakeTagger{annotations: map[string]*nlp.Annotation{
		first: {
			Tokens: []nlp.Token{
				tok("Python", nlp.POSProperNoun),
				tok("React", nlp.POSProperNoun),
				tok("Native", nlp.POSProperNoun),
			},
			NounChunks: []nlp.Span{
				span("Python", "NP"),
				span("React Native", "NP"),
			},
		},
		"Python, React Native": {
			Tokens: []nlp.Token{
				tok("Python", nlp.POSProperNoun),
				tok("React", nlp.POSProperNoun),
				tok("Native", nlp.POSProperNoun),
			},
			NounChunks: []nlp.Span{
				span("Python", "NP"),
				span("React Native", "NP"),
			},
		},
	}}
	e := newExtractor(tagger)

	got, err := e.ExtractKeywords(first)
	require.NoError(t, err)
	require.Equal(t, skills.SkillSet{"Python", "React Native"}, got)

	rendered := strings.Join(got, ", ")
	again, err := e.ExtractKeywords(rendered)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestExtractKeywordsCustomWeakWords(t *testing.T) {
	text := "Python Blockchain"
	tagger := &fakeTagger{annotations: map[string]*nlp.Annotation{
		text: {
			Tokens: []nlp.Token{
				tok("Python", nlp.POSProperNoun),
				tok("Blockchain", nlp.POSProperNoun),
			},
		},
	}}
	e := skills.NewExtractor(tagger, skills.Config{WeakWords: []string{"blockchain"}})

	got, err := e.ExtractKeywords(text)
	require.NoError(t, err)
	assert.Equal(t, skills.SkillSet{"Python"}, got)
}

func TestNormalizeSet(t *testing.T) {
	got := skills.NormalizeSet([]string{"python", "react native", " sql ", "python", ""})
	assert.Equal(t, skills.SkillSet{"Python", "React Native", "Sql"}, got)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Machine Learning", skills.TitleCase("machine learning"))
	assert.Equal(t, "Aws", skills.TitleCase("AWS"))
	assert.Equal(t, "React Native", skills.TitleCase("react NATIVE"))
	assert.Equal(t, "", skills.TitleCase(""))
}

func TestSkillSetIntersect(t *testing.T) {
	a := skills.SkillSet{"Python", "React", "Sql"}
	b := skills.SkillSet{"Go", "Python", "Sql"}
	assert.Equal(t, skills.SkillSet{"Python", "Sql"}, a.Intersect(b))
	assert.Empty(t, a.Intersect(skills.SkillSet{"Rust"}))
}
