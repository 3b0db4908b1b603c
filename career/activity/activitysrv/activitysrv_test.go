package activitysrv_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careergist/careergist/career/activity"
	"github.com/careergist/careergist/career/activity/activitysrv"
	"github.com/careergist/careergist/career/resume"
	"github.com/careergist/careergist/career/skills"
	"github.com/careergist/careergist/internal/nlp"
	"github.com/careergist/careergist/pkg/errx"
	"github.com/careergist/careergist/pkg/iam/user"
	"github.com/careergist/careergist/pkg/kernel"
)

// scriptedTagger tags every whitespace-separated token a proper noun; good
// enough to drive the pipeline deterministically.
type scriptedTagger struct{}

func (t *scriptedTagger) Annotate(text string) (*nlp.Annotation, error) {
	ann := &nlp.Annotation{}
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t' || r == ','
	}) {
		ann.Tokens = append(ann.Tokens, nlp.Token{Text: field, POS: nlp.POSProperNoun})
	}
	return ann, nil
}

type fakeFavoriteRepo struct {
	favorites map[string]*activity.FavoriteJob
	deletes   int
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: map[string]*activity.FavoriteJob{}}
}

func (f *fakeFavoriteRepo) Create(ctx context.Context, fav *activity.FavoriteJob) error {
	f.favorites[fav.ID.String()] = fav
	return nil
}

func (f *fakeFavoriteRepo) GetByID(ctx context.Context, id kernel.FavoriteID) (*activity.FavoriteJob, error) {
	fav, ok := f.favorites[id.String()]
	if !ok {
		return nil, activity.ErrFavoriteNotFound()
	}
	return fav, nil
}

func (f *fakeFavoriteRepo) Delete(ctx context.Context, id kernel.FavoriteID) error {
	f.deletes++
	delete(f.favorites, id.String())
	return nil
}

func (f *fakeFavoriteRepo) ListByUser(ctx context.Context, userID kernel.UserID) ([]activity.FavoriteJob, error) {
	var out []activity.FavoriteJob
	for _, fav := range f.favorites {
		if fav.UserID == userID {
			out = append(out, *fav)
		}
	}
	return out, nil
}

type fakeSearchRepo struct {
	terms []activity.SearchTerm
}

func (f *fakeSearchRepo) Create(ctx context.Context, term *activity.SearchTerm) error {
	f.terms = append(f.terms, *term)
	return nil
}

func (f *fakeSearchRepo) ListByUser(ctx context.Context, userID kernel.UserID, limit int) ([]activity.SearchTerm, error) {
	if len(f.terms) > limit {
		return f.terms[:limit], nil
	}
	return f.terms, nil
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
	return kernel.NewPaginated(f.resumes, pagination.Page, pagination.PageSize, len(f.resumes)), nil
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

func newService(favorites *fakeFavoriteRepo, searches *fakeSearchRepo, resumes *fakeResumeRepo) *activitysrv.ActivityService {
	extractor := skills.NewExtractor(&scriptedTagger{}, skills.DefaultConfig())
	users := &fakeUserRepo{account: &user.User{
		ID:        kernel.NewUserID("user-1"),
		FirstName: "Ada",
		LastName:  "Lovelace",
	}}
	return activitysrv.NewActivityService(favorites, searches, resumes, users, extractor)
}

func TestCreateFavoriteValidation(t *testing.T) {
	svc := newService(newFakeFavoriteRepo(), &fakeSearchRepo{}, &fakeResumeRepo{})

	_, err := svc.CreateFavorite(context.Background(), kernel.NewUserID("user-1"), activity.CreateFavoriteRequest{Company: "Acme"})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	_, err = svc.CreateFavorite(context.Background(), kernel.NewUserID("user-1"), activity.CreateFavoriteRequest{Title: "Engineer"})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
}

func TestDeleteFavoriteOwnership(t *testing.T) {
	favorites := newFakeFavoriteRepo()
	svc := newService(favorites, &fakeSearchRepo{}, &fakeResumeRepo{})

	created, err := svc.CreateFavorite(context.Background(), kernel.NewUserID("user-1"), activity.CreateFavoriteRequest{
		Title:   "Backend Engineer",
		Company: "Acme",
	})
	require.NoError(t, err)

	// another user cannot delete it, and must not learn it exists
	err = svc.DeleteFavorite(context.Background(), kernel.NewUserID("user-2"), created.ID)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
	assert.Zero(t, favorites.deletes)

	require.NoError(t, svc.DeleteFavorite(context.Background(), kernel.NewUserID("user-1"), created.ID))
	assert.Equal(t, 1, favorites.deletes)
}

func TestLogSearchRejectsEmptyQuery(t *testing.T) {
	svc := newService(newFakeFavoriteRepo(), &fakeSearchRepo{}, &fakeResumeRepo{})

	_, err := svc.LogSearch(context.Background(), kernel.NewUserID("user-1"), activity.LogSearchRequest{Query: "   "})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
}

func TestDashboardKeywordOverlap(t *testing.T) {
	userID := kernel.NewUserID("user-1")
	favorites := newFakeFavoriteRepo()
	searches := &fakeSearchRepo{}
	resumes := &fakeResumeRepo{resumes: []resume.Resume{{
		UserID:  userID,
		Content: "## Skills\nPython, React, SQL\n## Education\nBS CS",
	}}}
	svc := newService(favorites, searches, resumes)

	_, err := svc.CreateFavorite(context.Background(), userID, activity.CreateFavoriteRequest{
		Title:   "Python Developer",
		Company: "Acme",
	})
	require.NoError(t, err)
	_, err = svc.LogSearch(context.Background(), userID, activity.LogSearchRequest{Query: "React jobs"})
	require.NoError(t, err)

	dashboard, err := svc.Dashboard(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, "Ada", dashboard.UserName)
	require.Len(t, dashboard.Resumes, 1)
	require.Len(t, dashboard.Favorite, 1)
	assert.Equal(t, []string{"React jobs"}, dashboard.SearchTerms)

	// interest keywords come from favorite titles and search queries
	assert.Contains(t, dashboard.Keywords, "Python")
	assert.Contains(t, dashboard.Keywords, "React")

	// only resume skills the user is pursuing show up in the overlap
	assert.ElementsMatch(t, []string{"Python", "React"}, dashboard.ResumeKeywords)
}
