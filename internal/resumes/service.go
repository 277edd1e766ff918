package resumes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/telemetry"
)

// ImageRemover deletes a stored image by storage key. Removing a missing
// object must not be an error.
type ImageRemover interface {
	Remove(ctx context.Context, storageKey string) error
}

// Service contains business logic for resumes.
type Service struct {
	Repo   Repo
	Images ImageRemover
}

// List returns all resumes for a user, most recently updated first.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Create builds the default resume template for the given title and persists it.
func (s *Service) Create(ctx context.Context, userID, title string) (Resume, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Resume{}, ErrInvalidInput
	}

	resume := NewDefault(userID, title)
	resume.ID = uuid.NewString()

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Get fetches a resume owned by the user.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// Update applies a shallow merge onto the stored record and persists the
// result. Fields absent from the update are left untouched; fields present
// replace the stored value whole.
func (s *Service) Update(ctx context.Context, userID, resumeID string, update Update) (Resume, error) {
	resume, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}

	update.Apply(&resume)
	resume.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Delete removes a resume. Referenced image files are deleted best-effort
// first; file removal failures are logged and never block the record delete.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	resume, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return err
	}

	s.removeImage(ctx, resume.ThumbnailLink)
	s.removeImage(ctx, resume.ProfileInfo.ProfilePreviewURL)

	deleted, err := s.Repo.Delete(ctx, userID, resumeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// SetImages updates the image links on a resume, deleting any previously
// stored files they replace. Empty arguments leave the existing link as is.
func (s *Service) SetImages(ctx context.Context, userID, resumeID, thumbnailLink, previewLink string) (Resume, error) {
	resume, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}

	if thumbnailLink != "" {
		if resume.ThumbnailLink != thumbnailLink {
			s.removeImage(ctx, resume.ThumbnailLink)
		}
		resume.ThumbnailLink = thumbnailLink
	}
	if previewLink != "" {
		if resume.ProfileInfo.ProfilePreviewURL != previewLink {
			s.removeImage(ctx, resume.ProfileInfo.ProfilePreviewURL)
		}
		resume.ProfileInfo.ProfilePreviewURL = previewLink
	}
	resume.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

func (s *Service) removeImage(ctx context.Context, link string) {
	if s.Images == nil || strings.TrimSpace(link) == "" {
		return
	}
	key := StorageKeyFromLink(link)
	if key == "" {
		return
	}
	if err := s.Images.Remove(ctx, key); err != nil {
		telemetry.Error("resume.image_cleanup_failed", map[string]any{
			"storage_key": key,
			"error":       err.Error(),
		})
	}
}

// StorageKeyFromLink extracts the object-store key from an uploaded-image
// link of the form <base>/uploads/<key>. Links without an /uploads/ segment
// yield "".
func StorageKeyFromLink(link string) string {
	const marker = "/uploads/"
	idx := strings.Index(link, marker)
	if idx < 0 {
		return ""
	}
	return strings.TrimLeft(link[idx+len(marker):], "/")
}
