package interviewsrv

import (
	"context"
	"fmt"
	"strings"

	"github.com/careergist/careergist/career/interview"
)

// InterviewService generates practice questions for a job title
type InterviewService struct {
	generator interview.Generator
}

// NewInterviewService creates a new instance of the interview service
func NewInterviewService(generator interview.Generator) *InterviewService {
	return &InterviewService{
		generator: generator,
	}
}

// GenerateQuestions produces interview questions for a job title. Unlike
// explanation generation, there is nothing useful to return without the
// generator, so failures propagate.
func (s *InterviewService) GenerateQuestions(ctx context.Context, title string) ([]string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, interview.ErrInvalidRequest().WithDetail("title", "missing or empty")
	}

	prompt := fmt.Sprintf("Generate %d job interview questions for a %s role.", interview.DefaultQuestionCount, title)
	reply, err := s.generator.Complete(ctx, prompt)
	if err != nil {
		return nil, interview.ErrGenerationFailed().WithCause(err)
	}

	questions := interview.ParseQuestions(reply)
	if len(questions) == 0 {
		return nil, interview.ErrGenerationFailed().WithDetail("reason", "no questions in generated reply")
	}
	return questions, nil
}
