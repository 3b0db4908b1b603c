package learningsrv

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"

	"github.com/careergist/careergist/career/learning"
	"github.com/careergist/careergist/career/resume"
	"github.com/careergist/careergist/career/skills"
	"github.com/careergist/careergist/pkg/errx"
	"github.com/careergist/careergist/pkg/kernel"
	"github.com/careergist/careergist/pkg/logx"
)

// LearningService recommends courses for the skills found in a resume:
// extract skills, rotate them into catalog searches and condense the
// course descriptions.
type LearningService struct {
	extractor  *skills.Extractor
	resumeRepo resume.Repository
	provider   learning.CourseProvider
	generator  learning.Generator
	cache      learning.Cache
	shuffle    func(n int, swap func(i, j int))
}

// NewLearningService creates a new instance of the learning service.
// generator and cache may be nil; recommendations then carry the
// fallback summary and are recomputed on every request.
func NewLearningService(
	extractor *skills.Extractor,
	resumeRepo resume.Repository,
	provider learning.CourseProvider,
	generator learning.Generator,
	cache learning.Cache,
) *LearningService {
	return &LearningService{
		extractor:  extractor,
		resumeRepo: resumeRepo,
		provider:   provider,
		generator:  generator,
		cache:      cache,
		shuffle:    rand.Shuffle,
	}
}

// RecommendForLatestResume recommends courses based on the user's most
// recently updated resume
func (s *LearningService) RecommendForLatestResume(ctx context.Context, userID kernel.UserID) (*learning.ResourcesResponse, error) {
	page, err := s.resumeRepo.ListByUser(ctx, userID, kernel.PaginationOptions{Page: 1, PageSize: 1})
	if err != nil {
		return nil, errx.Wrap(err, "failed to load latest resume", errx.TypeInternal)
	}
	if len(page.Items) == 0 {
		return nil, resume.ErrResumeNotFound()
	}
	return s.Recommend(ctx, page.Items[0].Content)
}

// Recommend recommends courses for the skills in the given resume text
func (s *LearningService) Recommend(ctx context.Context, resumeText string) (*learning.ResourcesResponse, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, learning.ErrInvalidRequest().WithDetail("resume", "missing or empty")
	}

	section := skills.ExtractSection(resumeText, "Skills")
	userSkills, err := s.extractor.ExtractKeywords(section)
	if err != nil {
		return nil, err
	}
	if len(userSkills) == 0 {
		return nil, skills.ErrNoSkillsFound()
	}

	skillsHash := hashSkills(userSkills)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, skillsHash)
		if err != nil {
			logx.Warnf("learning cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	relevant := userSkills
	if len(relevant) > learning.MaxRelevantSkills {
		relevant = relevant[:learning.MaxRelevantSkills]
	}

	shuffled := make([]string, len(relevant))
	copy(shuffled, relevant)
	s.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	queries := learning.RotateQueries(shuffled, learning.SkillsPerQuery, learning.MaxQueries)
	courses := s.search(ctx, queries)
	for i := range courses {
		courses[i].Description = learning.CapDescription(courses[i].Description, learning.DescriptionCap)
		courses[i].ShortDescription = s.condense(ctx, courses[i])
	}

	resp := &learning.ResourcesResponse{
		Courses:         courses,
		SkillsExtracted: userSkills,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, skillsHash, resp); err != nil {
			logx.Warnf("learning cache write failed: %v", err)
		}
	}

	return resp, nil
}

// search runs the rotated queries against the course provider, deduping
// by course ID. Individual query failures are logged and skipped so one
// bad search does not sink the whole recommendation.
func (s *LearningService) search(ctx context.Context, queries []string) []learning.Course {
	courses := make([]learning.Course, 0, learning.MaxCourses)
	seen := make(map[string]bool)

	for _, query := range queries {
		if len(courses) >= learning.MaxCourses {
			break
		}
		found, err := s.provider.Search(ctx, query, learning.MaxCourses)
		if err != nil {
			logx.Warnf("course search failed for query %q: %v", query, err)
			continue
		}
		for _, course := range found {
			if seen[course.ID] {
				continue
			}
			seen[course.ID] = true
			courses = append(courses, course)
			if len(courses) >= learning.MaxCourses {
				break
			}
		}
	}
	return courses
}

// condense asks the generator for a short course summary, falling back
// to a static message when generation is unavailable or unusable
func (s *LearningService) condense(ctx context.Context, course learning.Course) string {
	if s.generator == nil || strings.TrimSpace(course.Description) == "" {
		return learning.FallbackSummary
	}

	reply, err := s.generator.Complete(ctx, buildSummaryPrompt(course))
	if err != nil {
		logx.Warnf("summary generation failed for course %s: %v", course.ID, err)
		return learning.FallbackSummary
	}

	summary, ok := learning.ParseSummary(reply)
	if !ok {
		return learning.FallbackSummary
	}
	return learning.TruncateSummary(summary, learning.SummaryCap)
}

func buildSummaryPrompt(course learning.Course) string {
	return fmt.Sprintf(
		"Condense the following course description into at most 5 sentences.\n\n"+
			"Course: %s\n\nDescription:\n%s\n\n"+
			"Respond with only a JSON object in the form {\"summary\": \"...\"} and nothing else.",
		course.Title,
		course.Description,
	)
}

func hashSkills(userSkills skills.SkillSet) string {
	sum := sha256.Sum256([]byte(strings.Join(userSkills, "|")))
	return hex.EncodeToString(sum[:])
}
