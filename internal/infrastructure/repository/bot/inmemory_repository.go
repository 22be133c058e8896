package bot

import (
	"context"
	"sync"
	"time"

	domain "github.com/pagepilot/pagepilot/internal/domain/bot"
)

// InMemoryRepository is a thread-safe repository useful for demos/tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	bots     map[string]domain.Bot
	messages []domain.Message
	records  map[string]domain.LearningRecord
}

// NewInMemoryRepository creates an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		bots:    make(map[string]domain.Bot),
		records: make(map[string]domain.LearningRecord),
	}
}

func (r *InMemoryRepository) GetByPage(ctx context.Context, pageID string) (*domain.Bot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bots {
		if b.PageID == pageID {
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, b *domain.Bot) (*domain.Bot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bots {
		if existing.PageID == b.PageID {
			return nil, domain.ErrAlreadyExists
		}
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.bots[b.ID] = *b
	return b, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, b *domain.Bot) (*domain.Bot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.bots[b.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b.CreatedAt = stored.CreatedAt
	b.UpdatedAt = time.Now()
	r.bots[b.ID] = *b
	return b, nil
}

func (r *InMemoryRepository) ListBots(ctx context.Context) ([]domain.Bot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Bot, 0, len(r.bots))
	for _, b := range r.bots {
		out = append(out, b)
	}
	return out, nil
}

func (r *InMemoryRepository) AppendMessage(ctx context.Context, m *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.CreatedAt = time.Now()
	r.messages = append(r.messages, *m)
	return nil
}

func (r *InMemoryRepository) ListMessages(ctx context.Context, botID string, limit int) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Message
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].BotID == botID {
			out = append(out, r.messages[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) LearningRecords(ctx context.Context, botID string) ([]domain.LearningRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LearningRecord
	for _, rec := range r.records {
		if rec.BotID == botID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) SaveLearningRecord(ctx context.Context, rec *domain.LearningRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ID] = *rec
	return nil
}

func (r *InMemoryRepository) IncrementUseCount(ctx context.Context, recordID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[recordID]
	if !ok {
		return domain.ErrNotFound
	}
	rec.UseCount++
	r.records[recordID] = rec
	return nil
}
