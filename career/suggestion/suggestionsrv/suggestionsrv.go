package suggestionsrv

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careergist/careergist/career/skills"
	"github.com/careergist/careergist/career/suggestion"
	"github.com/careergist/careergist/pkg/errx"
	"github.com/careergist/careergist/pkg/iam/user"
	"github.com/careergist/careergist/pkg/kernel"
	"github.com/careergist/careergist/pkg/logx"
)

// SuggestionService runs the career-suggestion pipeline: extract skills
// from the resume, match the role catalog, enrich with generated
// explanations and persist the run.
type SuggestionService struct {
	extractor   *skills.Extractor
	catalogRepo suggestion.CatalogRepository
	repo        suggestion.Repository
	userRepo    user.UserRepository
	generator   suggestion.Generator
	cache       suggestion.Cache
}

// NewSuggestionService creates a new instance of the suggestion service.
// generator and cache may be nil; the pipeline then skips explanations and
// caching respectively.
func NewSuggestionService(
	extractor *skills.Extractor,
	catalogRepo suggestion.CatalogRepository,
	repo suggestion.Repository,
	userRepo user.UserRepository,
	generator suggestion.Generator,
	cache suggestion.Cache,
) *SuggestionService {
	return &SuggestionService{
		extractor:   extractor,
		catalogRepo: catalogRepo,
		repo:        repo,
		userRepo:    userRepo,
		generator:   generator,
		cache:       cache,
	}
}

// Suggest generates ranked role suggestions for a resume
func (s *SuggestionService) Suggest(ctx context.Context, userID kernel.UserID, resume string) (*suggestion.SuggestResponse, error) {
	resumeHash := hashResume(resume)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, userID, resumeHash)
		if err != nil {
			logx.Warnf("suggestion cache read failed for user %s: %v", userID, err)
		} else if ok {
			return cached, nil
		}
	}

	section := skills.ExtractSection(resume, "Skills")
	userSkills, err := s.extractor.ExtractKeywords(section)
	if err != nil {
		return nil, err
	}
	if len(userSkills) == 0 {
		return nil, skills.ErrNoSkillsFound()
	}

	catalog, err := s.catalogRepo.ListRoles(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load role catalog", errx.TypeInternal)
	}

	matches := suggestion.MatchRoles(userSkills, catalog, suggestion.DefaultMatchLimit)
	s.explain(ctx, userID, userSkills, matches)

	roles := make([]string, 0, len(matches))
	for _, m := range matches {
		roles = append(roles, m.RoleTitle)
	}

	record := &suggestion.CareerSuggestion{
		ID:              kernel.NewSuggestionID(uuid.NewString()),
		UserID:          userID,
		SuggestedRoles:  roles,
		SkillsExtracted: userSkills,
		CreatedAt:       time.Now(),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, errx.Wrap(err, "failed to store career suggestion", errx.TypeInternal)
	}

	resp := &suggestion.SuggestResponse{
		SkillsExtracted: userSkills,
		SuggestedRoles:  matches,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, resumeHash, resp); err != nil {
			logx.Warnf("suggestion cache write failed for user %s: %v", userID, err)
		}
	}

	return resp, nil
}

// ListSuggestions retrieves a user's past suggestion runs
func (s *SuggestionService) ListSuggestions(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[suggestion.CareerSuggestion], error) {
	result, err := s.repo.ListByUser(ctx, userID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list career suggestions", errx.TypeInternal)
	}
	return result, nil
}

// userName resolves the display name for explanation prompts. Lookup
// failures fall back to a generic name; they never fail the pipeline.
func (s *SuggestionService) userName(ctx context.Context, userID kernel.UserID) string {
	if s.userRepo == nil {
		return ""
	}
	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logx.Warnf("could not resolve user name for %s: %v", userID, err)
		return ""
	}
	return account.FullName()
}

// explain fills match explanations from the generator, substituting the
// fallback text when generation fails or skips a role
func (s *SuggestionService) explain(ctx context.Context, userID kernel.UserID, userSkills skills.SkillSet, matches []suggestion.RoleMatch) {
	if s.generator == nil || len(matches) == 0 {
		return
	}
	userName := s.userName(ctx, userID)

	roles := make([]string, 0, len(matches))
	for _, m := range matches {
		roles = append(roles, m.RoleTitle)
	}

	reply, err := s.generator.Complete(ctx, buildExplanationPrompt(userName, userSkills, roles))
	explanations := map[string]string{}
	if err != nil {
		logx.Warnf("explanation generation failed: %v", err)
	} else {
		explanations = suggestion.ParseExplanations(reply)
	}

	for i := range matches {
		if text, ok := explanations[matches[i].RoleTitle]; ok {
			matches[i].Explanation = text
		} else {
			matches[i].Explanation = suggestion.FallbackExplanation
		}
	}
}

func buildExplanationPrompt(userName string, userSkills skills.SkillSet, roles []string) string {
	if userName == "" {
		userName = "the candidate"
	}
	return fmt.Sprintf(
		"The user has the following skills:\n\n%s\n\n"+
			"Here are some potential job roles: %s.\n\n"+
			"**Choose the %d most fitting roles** and explain each in 100 words.\n"+
			"Each explanation should refer to %s by name instead of saying 'the user'.\n"+
			"Use this format exactly:\n\n1. [Role]: [Explanation]\n2. ...\n\n"+
			"Do not include any extra formatting, headings, or introductions. Only return the list.",
		strings.Join(userSkills, ", "),
		strings.Join(roles, ", "),
		len(roles),
		userName,
	)
}

func hashResume(resume string) string {
	sum := sha256.Sum256([]byte(resume))
	return hex.EncodeToString(sum[:])
}
