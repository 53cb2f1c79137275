// Package newsletter provides the signup record store. Persistence past
// process lifetime is out of scope; the memory repository is the contract
// boundary a real backend would slot into.
package newsletter

import (
	"context"
	"sync"
	"time"
)

// Signup is a newsletter signup record. Name may be empty; Email has been
// validated before it reaches the repository.
type Signup struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository saves signup records
type Repository interface {
	Save(ctx context.Context, signup *Signup) error
}

// MemoryRepository keeps signups in process memory and never fails
type MemoryRepository struct {
	mu      sync.Mutex
	signups []Signup
}

// NewMemoryRepository creates an empty in-memory signup store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save appends the signup record. Always succeeds.
func (r *MemoryRepository) Save(ctx context.Context, signup *Signup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *signup
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.signups = append(r.signups, stored)
	return nil
}

// Signups returns a copy of the stored records
func (r *MemoryRepository) Signups() []Signup {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Signup, len(r.signups))
	copy(out, r.signups)
	return out
}
