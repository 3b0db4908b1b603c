package skills

import (
	"net/http"

	"github.com/careergist/careergist/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SKILLS")

var (
	CodeNoSkillsFound = ErrRegistry.Register("NONE_FOUND", errx.TypeValidation, http.StatusBadRequest, "No skills could be extracted from resume")
	CodeTaggerFailed  = ErrRegistry.Register("TAGGER_FAILED", errx.TypeExternal, http.StatusBadGateway, "Language tagger failed to annotate text")
)

// ErrNoSkillsFound signals an empty extraction result: the resume has no
// usable skills section. User-correctable, never retried.
func ErrNoSkillsFound() *errx.Error {
	return ErrRegistry.New(CodeNoSkillsFound)
}

// ErrTaggerFailed signals a tagger dependency failure. Kept distinct from
// the empty result so a broken tag pass can't masquerade as "no skills".
func ErrTaggerFailed() *errx.Error {
	return ErrRegistry.New(CodeTaggerFailed)
}
