package learningsrv_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careergist/careergist/career/learning"
	"github.com/careergist/careergist/career/learning/learningsrv"
	"github.com/careergist/careergist/career/resume"
	"github.com/careergist/careergist/career/skills"
	"github.com/careergist/careergist/internal/nlp"
	"github.com/careergist/careergist/pkg/errx"
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
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t' || r == ','
	}) {
		ann.Tokens = append(ann.Tokens, nlp.Token{Text: field, POS: nlp.POSProperNoun})
	}
	return ann, nil
}

type fakeResumeRepo struct {
	resumes []resume.Resume
}

func (f *fakeResumeRepo) Create(ctx context.Context, r *resume.Resume) error { return nil }
func (f *fakeResumeRepo) Update(ctx context.Context, id kernel.ResumeID, r *resume.Resume) error {
	return nil
}
func (f *fakeResumeRepo) GetByID(ctx context.Context, id kernel.ResumeID) (*resume.Resume, error) {
	return nil, resume.ErrResumeNotFound()
}
func (f *fakeResumeRepo) Delete(ctx context.Context, id kernel.ResumeID) error { return nil }
func (f *fakeResumeRepo) ListByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.Resume], error) {
	items := f.resumes
	if len(items) > pagination.PageSize {
		items = items[:pagination.PageSize]
	}
	return kernel.NewPaginated(items, pagination.Page, pagination.PageSize, len(f.resumes)), nil
}

type fakeProvider struct {
	courses []learning.Course
	err     error
	queries []string
}

func (f *fakeProvider) Search(ctx context.Context, query string, limit int) ([]learning.Course, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (f *fakeGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeCache struct {
	entries map[string]*learning.ResourcesResponse
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*learning.ResourcesResponse{}}
}

func (f *fakeCache) Get(ctx context.Context, skillsHash string) (*learning.ResourcesResponse, bool, error) {
	resp, ok := f.entries[skillsHash]
	return resp, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, skillsHash string, resp *learning.ResourcesResponse) error {
	f.sets++
	f.entries[skillsHash] = resp
	return nil
}

func testCourses(n int) []learning.Course {
	courses := make([]learning.Course, 0, n)
	for i := 0; i < n; i++ {
		courses = append(courses, learning.Course{
			ID:          fmt.Sprintf("course-%d", i),
			Title:       fmt.Sprintf("Course %d", i),
			Description: fmt.Sprintf("An in-depth course number %d covering plenty of practical material.", i),
			URL:         fmt.Sprintf("https://www.coursera.org/learn/course-%d", i),
			Platform:    "Coursera",
		})
	}
	return courses
}

func newService(repo *fakeResumeRepo, provider *fakeProvider, gen learning.Generator, cache learning.Cache) *learningsrv.LearningService {
	extractor := skills.NewExtractor(&scriptedTagger{}, skills.DefaultConfig())
	return learningsrv.NewLearningService(extractor, repo, provider, gen, cache)
}

func TestRecommendHappyPath(t *testing.T) {
	provider := &fakeProvider{courses: testCourses(2)}
	gen := &fakeGenerator{reply: `{"summary": "Short and sweet."}`}
	svc := newService(&fakeResumeRepo{}, provider, gen, nil)

	resp, err := svc.Recommend(context.Background(), testResume)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Python", "React", "Sql"}, resp.SkillsExtracted)

	// three skills rotate into two queries, each built only from them
	require.Len(t, provider.queries, 2)
	for _, q := range provider.queries {
		for _, word := range strings.Fields(q) {
			assert.Contains(t, resp.SkillsExtracted, word)
		}
	}

	// both queries returned the same courses; duplicates collapse
	require.Len(t, resp.Courses, 2)
	for _, course := range resp.Courses {
		assert.Equal(t, "Short and sweet.", course.ShortDescription)
		assert.Equal(t, "Coursera", course.Platform)
	}
}

func TestRecommendCapsCourses(t *testing.T) {
	provider := &fakeProvider{courses: testCourses(learning.MaxCourses + 5)}
	svc := newService(&fakeResumeRepo{}, provider, nil, nil)

	resp, err := svc.Recommend(context.Background(), testResume)
	require.NoError(t, err)
	assert.Len(t, resp.Courses, learning.MaxCourses)
	assert.Len(t, provider.queries, 1, "search stops once enough courses are found")
}

func TestRecommendNoSkills(t *testing.T) {
	provider := &fakeProvider{}
	svc := newService(&fakeResumeRepo{}, provider, nil, nil)

	_, err := svc.Recommend(context.Background(), "## Experience\nVarious jobs")
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
	assert.Empty(t, provider.queries, "provider must not be queried without skills")
}

func TestRecommendEmptyResume(t *testing.T) {
	svc := newService(&fakeResumeRepo{}, &fakeProvider{}, nil, nil)

	_, err := svc.Recommend(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
}

func TestRecommendProviderFailureIsRecoverable(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream down")}
	svc := newService(&fakeResumeRepo{}, provider, nil, nil)

	resp, err := svc.Recommend(context.Background(), testResume)
	require.NoError(t, err, "search failures degrade to an empty course list")
	assert.Empty(t, resp.Courses)
	assert.NotEmpty(t, resp.SkillsExtracted)
}

func TestRecommendGenerationFailureFallsBack(t *testing.T) {
	provider := &fakeProvider{courses: testCourses(1)}
	gen := &fakeGenerator{err: errors.New("rate limited")}
	svc := newService(&fakeResumeRepo{}, provider, gen, nil)

	resp, err := svc.Recommend(context.Background(), testResume)
	require.NoError(t, err)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, learning.FallbackSummary, resp.Courses[0].ShortDescription)
}

func TestRecommendUsesCache(t *testing.T) {
	provider := &fakeProvider{courses: testCourses(2)}
	cache := newFakeCache()
	svc := newService(&fakeResumeRepo{}, provider, nil, cache)

	first, err := svc.Recommend(context.Background(), testResume)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	searches := len(provider.queries)

	second, err := svc.Recommend(context.Background(), testResume)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, searches, len(provider.queries), "second request must be served from cache")
}

func TestRecommendForLatestResume(t *testing.T) {
	repo := &fakeResumeRepo{resumes: []resume.Resume{{Content: testResume}}}
	provider := &fakeProvider{courses: testCourses(1)}
	svc := newService(repo, provider, nil, nil)

	resp, err := svc.RecommendForLatestResume(context.Background(), kernel.NewUserID("user-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SkillsExtracted)
}

func TestRecommendForLatestResumeWithoutResume(t *testing.T) {
	svc := newService(&fakeResumeRepo{}, &fakeProvider{}, nil, nil)

	_, err := svc.RecommendForLatestResume(context.Background(), kernel.NewUserID("user-1"))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
}
