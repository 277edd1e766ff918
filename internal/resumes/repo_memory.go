package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo, used in dev when no
// database is configured and by tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume // userID -> resumes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Resume),
	}
}

// ListByUser returns resumes for a user, most recently updated first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	userResumes := r.data[userID]
	r.mu.RUnlock()

	out := make([]Resume, len(userResumes))
	copy(out, userResumes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// Create stores a new resume for a user.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[resume.UserID] = append(r.data[resume.UserID], resume)
	return nil
}

// GetByID returns a resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	userResumes := r.data[userID]
	for i := range userResumes {
		if userResumes[i].ID == resumeID {
			return userResumes[i], nil
		}
	}
	return Resume{}, ErrNotFound
}

// Update replaces the stored state of a resume and refreshes UpdatedAt.
func (r *MemoryRepo) Update(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	userResumes := r.data[resume.UserID]
	for i := range userResumes {
		if userResumes[i].ID == resume.ID {
			if resume.UpdatedAt.IsZero() {
				resume.UpdatedAt = time.Now().UTC()
			}
			userResumes[i] = resume
			r.data[resume.UserID] = userResumes
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes a resume. Returns true iff a record was removed.
func (r *MemoryRepo) Delete(ctx context.Context, userID, resumeID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	userResumes := r.data[userID]
	for i := range userResumes {
		if userResumes[i].ID == resumeID {
			r.data[userID] = append(userResumes[:i], userResumes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var _ Repo = (*MemoryRepo)(nil)
