package resumesrv

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careergist/careergist/career/resume"
	"github.com/careergist/careergist/internal/pdf"
	"github.com/careergist/careergist/pkg/errx"
	"github.com/careergist/careergist/pkg/fsx"
	"github.com/careergist/careergist/pkg/kernel"
	"github.com/careergist/careergist/pkg/logx"
)

// MaxImportFileSize caps uploaded resume files at 10MB
const MaxImportFileSize = 10 * 1024 * 1024

// ResumeService provides business operations for resumes
type ResumeService struct {
	repo       resume.Repository
	fileSystem fsx.FileSystem
	converter  resume.MarkdownConverter
}

// NewResumeService creates a new instance of the resume service
func NewResumeService(repo resume.Repository, fileSystem fsx.FileSystem, converter resume.MarkdownConverter) *ResumeService {
	return &ResumeService{
		repo:       repo,
		fileSystem: fileSystem,
		converter:  converter,
	}
}

// CreateResume creates a resume from caller-supplied markdown
func (s *ResumeService) CreateResume(ctx context.Context, userID kernel.UserID, req resume.CreateResumeRequest) (*resume.Resume, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, resume.ErrInvalidRequest().WithDetail("title", "missing or empty")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, resume.ErrInvalidRequest().WithDetail("content", "missing or empty")
	}

	now := time.Now()
	newResume := &resume.Resume{
		ID:        kernel.NewResumeID(uuid.NewString()),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, newResume); err != nil {
		return nil, errx.Wrap(err, "failed to create resume", errx.TypeInternal)
	}
	return newResume, nil
}

// GetResume retrieves a resume owned by the caller
func (s *ResumeService) GetResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) (*resume.Resume, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.IsOwnedBy(userID) {
		// do not reveal other users' resume IDs
		return nil, resume.ErrResumeNotFound().WithDetail("id", id.String())
	}
	return entity, nil
}

// UpdateResume updates a resume owned by the caller
func (s *ResumeService) UpdateResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID, req resume.UpdateResumeRequest) (*resume.Resume, error) {
	entity, err := s.GetResume(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) != "" {
		entity.Title = req.Title
	}
	if strings.TrimSpace(req.Content) != "" {
		entity.Content = req.Content
	}
	entity.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, errx.Wrap(err, "failed to update resume", errx.TypeInternal)
	}
	return entity, nil
}

// DeleteResume deletes a resume owned by the caller, including the stored
// original upload when present
func (s *ResumeService) DeleteResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) error {
	entity, err := s.GetResume(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete resume", errx.TypeInternal)
	}

	if entity.OriginalURL != "" && s.fileSystem != nil {
		if err := s.fileSystem.DeleteFile(ctx, string(entity.OriginalURL)); err != nil {
			logx.Warnf("failed to delete original resume file %s: %v", entity.OriginalURL, err)
		}
	}
	return nil
}

// ListResumes retrieves the caller's resumes, newest first
func (s *ResumeService) ListResumes(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.Resume], error) {
	result, err := s.repo.ListByUser(ctx, userID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list resumes", errx.TypeInternal)
	}
	return result, nil
}

// ImportResume converts an uploaded PDF or image into a markdown resume,
// stores the original file and creates the resume record
func (s *ResumeService) ImportResume(ctx context.Context, userID kernel.UserID, fileName, contentType string, data []byte) (*resume.Resume, error) {
	if len(data) == 0 {
		return nil, resume.ErrInvalidRequest().WithDetail("file", "empty upload")
	}
	if len(data) > MaxImportFileSize {
		return nil, resume.ErrFileTooLarge().WithDetail("size", len(data))
	}

	pages, err := renderPages(fileName, contentType, data)
	if err != nil {
		return nil, err
	}

	markdown, err := s.converter.ConvertPages(ctx, pages)
	if err != nil {
		return nil, resume.ErrImportFailed().WithCause(err)
	}

	title := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if title == "" {
		title = "Imported Resume"
	}

	now := time.Now()
	newResume := &resume.Resume{
		ID:        kernel.NewResumeID(uuid.NewString()),
		UserID:    userID,
		Title:     title,
		Content:   markdown,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if s.fileSystem != nil {
		path := s.fileSystem.Join("resumes", userID.String(), newResume.ID.String()+filepath.Ext(fileName))
		if err := s.fileSystem.WriteFile(ctx, path, data); err != nil {
			// losing the original is survivable; the markdown is the record
			logx.Warnf("failed to store original resume file: %v", err)
		} else {
			newResume.OriginalURL = kernel.BucketURL(path)
		}
	}

	if err := s.repo.Create(ctx, newResume); err != nil {
		return nil, errx.Wrap(err, "failed to create resume", errx.TypeInternal)
	}
	return newResume, nil
}

func renderPages(fileName, contentType string, data []byte) ([][]byte, error) {
	switch {
	case contentType == "application/pdf" || strings.EqualFold(filepath.Ext(fileName), ".pdf"):
		pages, err := pdf.RenderPages(data)
		if err != nil {
			return nil, resume.ErrInvalidRequest().WithDetail("file", "unreadable PDF").WithCause(err)
		}
		return pages, nil
	case strings.HasPrefix(contentType, "image/"),
		strings.EqualFold(filepath.Ext(fileName), ".jpg"),
		strings.EqualFold(filepath.Ext(fileName), ".jpeg"),
		strings.EqualFold(filepath.Ext(fileName), ".png"):
		page, err := pdf.NormalizeImage(data)
		if err != nil {
			return nil, resume.ErrInvalidRequest().WithDetail("file", "unreadable image").WithCause(err)
		}
		return [][]byte{page}, nil
	}
	return nil, resume.ErrUnsupportedFileType().
		WithDetail("content_type", contentType).
		WithDetail("file_name", fileName)
}
