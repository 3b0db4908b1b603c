package activitysrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careergist/careergist/career/activity"
	"github.com/careergist/careergist/career/resume"
	"github.com/careergist/careergist/career/skills"
	"github.com/careergist/careergist/pkg/errx"
	"github.com/careergist/careergist/pkg/iam/user"
	"github.com/careergist/careergist/pkg/kernel"
	"github.com/careergist/careergist/pkg/logx"
)

// dashboard considers at most this many recent resumes and searches
const (
	dashboardResumeLimit = 20
	dashboardSearchLimit = 50
)

// ActivityService provides business operations for favorites, search
// logging and the dashboard
type ActivityService struct {
	favoriteRepo activity.FavoriteRepository
	searchRepo   activity.SearchTermRepository
	resumeRepo   resume.Repository
	userRepo     user.UserRepository
	extractor    *skills.Extractor
}

// NewActivityService creates a new instance of the activity service
func NewActivityService(
	favoriteRepo activity.FavoriteRepository,
	searchRepo activity.SearchTermRepository,
	resumeRepo resume.Repository,
	userRepo user.UserRepository,
	extractor *skills.Extractor,
) *ActivityService {
	return &ActivityService{
		favoriteRepo: favoriteRepo,
		searchRepo:   searchRepo,
		resumeRepo:   resumeRepo,
		userRepo:     userRepo,
		extractor:    extractor,
	}
}

// CreateFavorite saves a job posting for the user
func (s *ActivityService) CreateFavorite(ctx context.Context, userID kernel.UserID, req activity.CreateFavoriteRequest) (*activity.FavoriteJob, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, activity.ErrInvalidRequest().WithDetail("title", "missing or empty")
	}
	if strings.TrimSpace(req.Company) == "" {
		return nil, activity.ErrInvalidRequest().WithDetail("company", "missing or empty")
	}

	now := time.Now()
	favorite := &activity.FavoriteJob{
		ID:          kernel.NewFavoriteID(uuid.NewString()),
		UserID:      userID,
		Title:       req.Title,
		Company:     req.Company,
		ExternalID:  req.JobID,
		Location:    req.Location,
		Description: req.Description,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, errx.Wrap(err, "failed to create favorite", errx.TypeInternal)
	}
	return favorite, nil
}

// DeleteFavorite removes one of the caller's favorites
func (s *ActivityService) DeleteFavorite(ctx context.Context, userID kernel.UserID, id kernel.FavoriteID) error {
	favorite, err := s.favoriteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !favorite.IsOwnedBy(userID) {
		return activity.ErrFavoriteNotFound().WithDetail("id", id.String())
	}

	if err := s.favoriteRepo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete favorite", errx.TypeInternal)
	}
	return nil
}

// ListFavorites retrieves the caller's favorites, newest first
func (s *ActivityService) ListFavorites(ctx context.Context, userID kernel.UserID) ([]activity.FavoriteJob, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list favorites", errx.TypeInternal)
	}
	return favorites, nil
}

// LogSearch records a search-bar entry
func (s *ActivityService) LogSearch(ctx context.Context, userID kernel.UserID, req activity.LogSearchRequest) (*activity.SearchTerm, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, activity.ErrInvalidRequest().WithDetail("query", "missing or empty")
	}

	term := &activity.SearchTerm{
		ID:        kernel.NewSearchTermID(uuid.NewString()),
		UserID:    userID,
		Query:     query,
		CreatedAt: time.Now(),
	}

	if err := s.searchRepo.Create(ctx, term); err != nil {
		return nil, errx.Wrap(err, "failed to log search", errx.TypeInternal)
	}
	return term, nil
}

// Dashboard aggregates the user's resumes, favorites and activity-derived
// keywords. Resume skills are intersected with keywords from favorited and
// searched job titles, so the dashboard surfaces skills the user is
// actively pursuing.
func (s *ActivityService) Dashboard(ctx context.Context, userID kernel.UserID) (*activity.DashboardResponse, error) {
	resumes, err := s.resumeRepo.ListByUser(ctx, userID, kernel.PaginationOptions{Page: 1, PageSize: dashboardResumeLimit})
	if err != nil {
		return nil, errx.Wrap(err, "failed to load resumes", errx.TypeInternal)
	}

	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load favorites", errx.TypeInternal)
	}

	terms, err := s.searchRepo.ListByUser(ctx, userID, dashboardSearchLimit)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load search terms", errx.TypeInternal)
	}

	resumeKeywords, err := s.resumeSkills(resumes.Items)
	if err != nil {
		return nil, err
	}

	interestKeywords, err := s.interestKeywords(favorites, terms)
	if err != nil {
		return nil, err
	}

	searchQueries := make([]string, 0, len(terms))
	for _, t := range terms {
		searchQueries = append(searchQueries, t.Query)
	}

	return &activity.DashboardResponse{
		UserName:       s.firstName(ctx, userID),
		Resumes:        resumes.Items,
		Favorite:       favorites,
		Keywords:       interestKeywords,
		ResumeKeywords: resumeKeywords.Intersect(interestKeywords),
		SearchTerms:    searchQueries,
	}, nil
}

// resumeSkills extracts keywords from the Skills sections of all resumes
// combined
func (s *ActivityService) resumeSkills(resumes []resume.Resume) (skills.SkillSet, error) {
	sections := make([]string, 0, len(resumes))
	for _, r := range resumes {
		if section := skills.ExtractSection(r.Content, "Skills"); section != "" {
			sections = append(sections, section)
		}
	}
	return s.extractor.ExtractKeywords(strings.Join(sections, "\n"))
}

// interestKeywords extracts keywords from favorited and searched job titles
func (s *ActivityService) interestKeywords(favorites []activity.FavoriteJob, terms []activity.SearchTerm) (skills.SkillSet, error) {
	titles := make([]string, 0, len(favorites)+len(terms))
	for _, f := range favorites {
		titles = append(titles, f.Title)
	}
	for _, t := range terms {
		titles = append(titles, t.Query)
	}
	return s.extractor.ExtractKeywords(strings.Join(titles, " "))
}

func (s *ActivityService) firstName(ctx context.Context, userID kernel.UserID) string {
	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logx.Warnf("could not resolve user name for %s: %v", userID, err)
		return ""
	}
	return string(account.FirstName)
}
