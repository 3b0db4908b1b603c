package suggestionsrv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careergist/careergist/career/skills"
	"github.com/careergist/careergist/career/suggestion"
	"github.com/careergist/careergist/career/suggestion/suggestionsrv"
	"github.com/careergist/careergist/internal/nlp"
	"github.com/careergist/careergist/pkg/errx"
	"github.com/careergist/careergist/pkg/iam/user"
	"github.com/careergist/careergist/pkg/kernel"
)

const testResume = "## Skills\nPython, React, SQL\n## Education\nBS CS"

// scriptedTagger tags every whitespace-separated token a proper noun; good
// enough to drive the pipeline deterministically.
type scriptedTagger struct {
	err error
}

func (t *scriptedTagger) Annotate(text string) (*nlp.Annotation, error) {
	if t.err != nil {
		return nil, t.err
	}
	ann := &nlp.Annotation{}
	for _, field := range splitWords(text) {
		ann.Tokens = append(ann.Tokens, nlp.Token{Text: field, POS: nlp.POSProperNoun})
	}
	return ann, nil
}

func splitWords(text string) []string {
	var words []string
	var cur []rune
	for _, r := range text {
		if r == ' ' || r == '\n' || r == '\t' || r == ',' {
			if len(cur) > 0 {
				words = append(words, string(cur))
				cur = nil
			}
			continue
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		words = append(words, string(cur))
	}
	return words
}

type fakeCatalogRepo struct {
	records []suggestion.RoleRecord
	err     error
	calls   int
}

func (f *fakeCatalogRepo) ListRoles(ctx context.Context) ([]suggestion.RoleRecord, error) {
	f.calls++
	return f.records, f.err
}

type fakeSuggestionRepo struct {
	saved []*suggestion.CareerSuggestion
	err   error
}

func (f *fakeSuggestionRepo) Save(ctx context.Context, s *suggestion.CareerSuggestion) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, s)
	return nil
}

func (f *fakeSuggestionRepo) ListByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[suggestion.CareerSuggestion], error) {
	items := make([]suggestion.CareerSuggestion, 0, len(f.saved))
	for _, s := range f.saved {
		items = append(items, *s)
	}
	return kernel.NewPaginated(items, pagination.Page, pagination.PageSize, len(items)), nil
}

type fakeUserRepo struct {
	account *user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, id kernel.UserID, u *user.User) error {
	return nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	return f.account, nil
}
func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	return f.account != nil, nil
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	if f.account == nil {
		return nil, user.ErrUserNotFound()
	}
	return f.account, nil
}

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeCache struct {
	entries map[string]*suggestion.SuggestResponse
	gets    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*suggestion.SuggestResponse{}}
}

func (f *fakeCache) Get(ctx context.Context, userID kernel.UserID, resumeHash string) (*suggestion.SuggestResponse, bool, error) {
	f.gets++
	resp, ok := f.entries[userID.String()+":"+resumeHash]
	return resp, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, userID kernel.UserID, resumeHash string, resp *suggestion.SuggestResponse) error {
	f.sets++
	f.entries[userID.String()+":"+resumeHash] = resp
	return nil
}

func testCatalog() []suggestion.RoleRecord {
	return []suggestion.RoleRecord{
		{RoleTitle: "Backend Engineer", RequiredSkills: skills.SkillSet{"Python", "Sql"}},
		{RoleTitle: "Frontend Engineer", RequiredSkills: skills.SkillSet{"React"}},
		{RoleTitle: "Security Analyst", RequiredSkills: skills.SkillSet{"Siem"}},
	}
}

func newService(catalog *fakeCatalogRepo, repo *fakeSuggestionRepo, gen suggestion.Generator, cache suggestion.Cache) *suggestionsrv.SuggestionService {
	extractor := skills.NewExtractor(&scriptedTagger{}, skills.DefaultConfig())
	users := &fakeUserRepo{account: &user.User{
		ID:        kernel.NewUserID("user-1"),
		FirstName: "Ada",
		LastName:  "Lovelace",
	}}
	return suggestionsrv.NewSuggestionService(extractor, catalog, repo, users, gen, cache)
}

func TestSuggestHappyPath(t *testing.T) {
	catalog := &fakeCatalogRepo{records: testCatalog()}
	repo := &fakeSuggestionRepo{}
	gen := &fakeGenerator{reply: "1. Backend Engineer: Ada fits well.\n2. Frontend Engineer: Ada knows React."}
	svc := newService(catalog, repo, gen, nil)

	resp, err := svc.Suggest(context.Background(), kernel.NewUserID("user-1"), testResume)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Python", "React", "Sql"}, resp.SkillsExtracted)
	require.Len(t, resp.SuggestedRoles, 2)
	assert.Equal(t, "Backend Engineer", resp.SuggestedRoles[0].RoleTitle)
	assert.Equal(t, 2, resp.SuggestedRoles[0].MatchStrength)
	assert.Equal(t, "Ada fits well.", resp.SuggestedRoles[0].Explanation)
	assert.Equal(t, "Ada knows React.", resp.SuggestedRoles[1].Explanation)

	// the run is persisted
	require.Len(t, repo.saved, 1)
	assert.Equal(t, []string{"Backend Engineer", "Frontend Engineer"}, repo.saved[0].SuggestedRoles)
	assert.Equal(t, "user-1", repo.saved[0].UserID.String())

	// the prompt refers to the user by name
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Ada Lovelace")
}

func TestSuggestNoSkillsFound(t *testing.T) {
	catalog := &fakeCatalogRepo{records: testCatalog()}
	svc := newService(catalog, &fakeSuggestionRepo{}, nil, nil)

	_, err := svc.Suggest(context.Background(), kernel.NewUserID("user-1"), "## Experience\nVarious jobs")
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
	assert.Zero(t, catalog.calls, "catalog must not be read without skills")
}

func TestSuggestTaggerFailurePropagates(t *testing.T) {
	extractor := skills.NewExtractor(&scriptedTagger{err: errors.New("model crashed")}, skills.DefaultConfig())
	svc := suggestionsrv.NewSuggestionService(extractor, &fakeCatalogRepo{records: testCatalog()}, &fakeSuggestionRepo{}, &fakeUserRepo{}, nil, nil)

	_, err := svc.Suggest(context.Background(), kernel.NewUserID("user-1"), testResume)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeExternal),
		"tagger failure must surface as a service error, not an empty result")
}

func TestSuggestGenerationFailureFallsBack(t *testing.T) {
	catalog := &fakeCatalogRepo{records: testCatalog()}
	gen := &fakeGenerator{err: errors.New("rate limited")}
	svc := newService(catalog, &fakeSuggestionRepo{}, gen, nil)

	resp, err := svc.Suggest(context.Background(), kernel.NewUserID("user-1"), testResume)
	require.NoError(t, err, "generation failure is recoverable")
	require.NotEmpty(t, resp.SuggestedRoles)
	for _, m := range resp.SuggestedRoles {
		assert.Equal(t, suggestion.FallbackExplanation, m.Explanation)
	}
}

func TestSuggestPartialExplanationsFallBackPerRole(t *testing.T) {
	catalog := &fakeCatalogRepo{records: testCatalog()}
	gen := &fakeGenerator{reply: "1. Backend Engineer: Ada fits well."}
	svc := newService(catalog, &fakeSuggestionRepo{}, gen, nil)

	resp, err := svc.Suggest(context.Background(), kernel.NewUserID("user-1"), testResume)
	require.NoError(t, err)
	require.Len(t, resp.SuggestedRoles, 2)
	assert.Equal(t, "Ada fits well.", resp.SuggestedRoles[0].Explanation)
	assert.Equal(t, suggestion.FallbackExplanation, resp.SuggestedRoles[1].Explanation)
}

func TestSuggestUsesCache(t *testing.T) {
	catalog := &fakeCatalogRepo{records: testCatalog()}
	cache := newFakeCache()
	svc := newService(catalog, &fakeSuggestionRepo{}, nil, cache)

	first, err := svc.Suggest(context.Background(), kernel.NewUserID("user-1"), testResume)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.Suggest(context.Background(), kernel.NewUserID("user-1"), testResume)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, catalog.calls, "second request must be served from cache")

	// a different resume misses the cache
	_, err = svc.Suggest(context.Background(), kernel.NewUserID("user-1"), testResume+"\nGo")
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.calls)
}

func TestSuggestPersistFailure(t *testing.T) {
	catalog := &fakeCatalogRepo{records: testCatalog()}
	repo := &fakeSuggestionRepo{err: errors.New("db down")}
	svc := newService(catalog, repo, nil, nil)

	_, err := svc.Suggest(context.Background(), kernel.NewUserID("user-1"), testResume)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeInternal))
}
