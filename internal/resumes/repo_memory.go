package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo used in dev mode and
// handler tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[string]ResumeData
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{resumes: make(map[string]ResumeData)}
}

// Create stores a new resume.
func (r *MemoryRepo) Create(ctx context.Context, resume ResumeData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes[resume.ID] = resume
	return nil
}

// GetByID returns a resume by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (ResumeData, error) {
	if err := ctx.Err(); err != nil {
		return ResumeData{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[id]
	if !ok {
		return ResumeData{}, ErrNotFound
	}
	return resume, nil
}

// ListByUser returns a user's resumes, most recently updated first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]ResumeData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []ResumeData
	for _, resume := range r.resumes {
		if resume.UserID == userID {
			out = append(out, resume)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// Update replaces an existing resume and bumps its updated_at.
func (r *MemoryRepo) Update(ctx context.Context, resume ResumeData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.resumes[resume.ID]
	if !ok {
		return ErrNotFound
	}
	resume.CreatedAt = existing.CreatedAt
	resume.UpdatedAt = time.Now().UTC()
	r.resumes[resume.ID] = resume
	return nil
}

// Delete removes a resume.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[id]; !ok {
		return ErrNotFound
	}
	delete(r.resumes, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
