package content

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/pagepilot/pagepilot/internal/domain/content"
)

// InMemoryRepository is a thread-safe repository useful for demos/tests.
type InMemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]domain.Content
}

// NewInMemoryRepository creates an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{rows: make(map[string]domain.Content)}
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Content
	for _, c := range r.rows {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, c := range r.rows {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*domain.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.rows[c.ID] = *c
	return c, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.rows[c.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.CreatedAt = stored.CreatedAt
	c.UpdatedAt = time.Now()
	r.rows[c.ID] = *c
	return c, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *InMemoryRepository) ScheduledDue(ctx context.Context, now time.Time) ([]domain.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Content
	for _, c := range r.rows {
		if c.Status == domain.StatusScheduled && c.ScheduledAt != nil && !c.ScheduledAt.After(now) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(*out[j].ScheduledAt) })
	return out, nil
}
