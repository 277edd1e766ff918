package resumes

import "context"

// Repo defines persistence operations for resumes. Every lookup filters by
// (id, user_id) jointly so records never leak across owners.
type Repo interface {
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userID, resumeID string) (Resume, error)
	Update(ctx context.Context, resume Resume) error
	Delete(ctx context.Context, userID, resumeID string) (bool, error)
}
