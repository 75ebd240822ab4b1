package resumes

import "context"

// Repo defines persistence operations for resumes. Ownership is enforced in
// the service layer by comparing the record's UserID to the caller.
type Repo interface {
	Create(ctx context.Context, resume ResumeData) error
	GetByID(ctx context.Context, id string) (ResumeData, error)
	ListByUser(ctx context.Context, userID string) ([]ResumeData, error)
	Update(ctx context.Context, resume ResumeData) error
	Delete(ctx context.Context, id string) error
}
