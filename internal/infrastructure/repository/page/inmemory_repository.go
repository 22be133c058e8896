package page

import (
	"context"
	"sync"
	"time"

	domain "github.com/pagepilot/pagepilot/internal/domain/page"
)

// InMemoryRepository is a thread-safe repository useful for demos/tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	pages map[string]domain.Page
}

// NewInMemoryRepository creates an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{pages: make(map[string]domain.Page)}
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]domain.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Page
	for _, p := range r.pages {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*domain.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pages[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *InMemoryRepository) GetByFacebookID(ctx context.Context, facebookPageID string) (*domain.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.pages {
		if p.FacebookPageID == facebookPageID {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.pages {
		if existing.FacebookPageID == p.FacebookPageID {
			return nil, domain.ErrAlreadyExists
		}
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.pages[p.ID] = *p
	return p, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.pages[p.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.CreatedAt = stored.CreatedAt
	p.UpdatedAt = time.Now()
	r.pages[p.ID] = *p
	return p, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pages[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.pages, id)
	return nil
}
