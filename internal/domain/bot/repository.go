package bot

import "context"

// Repository exposes data access for bots, conversations and learning
// records.
type Repository interface {
	GetByPage(ctx context.Context, pageID string) (*Bot, error)
	Create(ctx context.Context, b *Bot) (*Bot, error)
	Update(ctx context.Context, b *Bot) (*Bot, error)
	ListBots(ctx context.Context) ([]Bot, error)

	AppendMessage(ctx context.Context, m *Message) error
	ListMessages(ctx context.Context, botID string, limit int) ([]Message, error)

	LearningRecords(ctx context.Context, botID string) ([]LearningRecord, error)
	SaveLearningRecord(ctx context.Context, r *LearningRecord) error
	IncrementUseCount(ctx context.Context, recordID string) error
}
