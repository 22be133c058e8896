package bot

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/pagepilot/pagepilot/internal/domain/bot"
	"github.com/pagepilot/pagepilot/internal/infrastructure/database/entities"
)

// PostgresRepository persists bots, conversations and learning records via
// PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByPage(ctx context.Context, pageID string) (*domain.Bot, error) {
	var record entities.MessengerBot
	err := r.db.WithContext(ctx).First(&record, "page_id = ?", pageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return botToDomain(&record), nil
}

func (r *PostgresRepository) Create(ctx context.Context, b *domain.Bot) (*domain.Bot, error) {
	record := botToEntity(b)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return botToDomain(record), nil
}

func (r *PostgresRepository) Update(ctx context.Context, b *domain.Bot) (*domain.Bot, error) {
	record := botToEntity(b)
	tx := r.db.WithContext(ctx).Model(&entities.MessengerBot{}).
		Where("id = ?", b.ID).
		Select("is_active", "welcome_message", "fallback_message", "ai_model",
			"settings", "conversation_count", "success_count", "satisfaction").
		Updates(record)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	var fresh entities.MessengerBot
	if err := r.db.WithContext(ctx).First(&fresh, "id = ?", b.ID).Error; err != nil {
		return nil, err
	}
	return botToDomain(&fresh), nil
}

func (r *PostgresRepository) ListBots(ctx context.Context) ([]domain.Bot, error) {
	var records []entities.MessengerBot
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	bots := make([]domain.Bot, len(records))
	for i := range records {
		bots[i] = *botToDomain(&records[i])
	}
	return bots, nil
}

func (r *PostgresRepository) AppendMessage(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Create(&entities.Conversation{
		ID:              m.ID,
		BotID:           m.BotID,
		PageID:          m.PageID,
		ConversationKey: m.ConversationKey,
		Sender:          m.Sender,
		Message:         m.Message,
		Sentiment:       m.Sentiment,
		Intent:          m.Intent,
		ResponseTimeMs:  m.ResponseTimeMs,
	}).Error
}

func (r *PostgresRepository) ListMessages(ctx context.Context, botID string, limit int) ([]domain.Message, error) {
	var records []entities.Conversation
	err := r.db.WithContext(ctx).
		Where("bot_id = ?", botID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	messages := make([]domain.Message, len(records))
	for i, rec := range records {
		messages[i] = domain.Message{
			ID:              rec.ID,
			BotID:           rec.BotID,
			PageID:          rec.PageID,
			ConversationKey: rec.ConversationKey,
			Sender:          rec.Sender,
			Message:         rec.Message,
			Sentiment:       rec.Sentiment,
			Intent:          rec.Intent,
			ResponseTimeMs:  rec.ResponseTimeMs,
			CreatedAt:       rec.CreatedAt,
		}
	}
	return messages, nil
}

func (r *PostgresRepository) LearningRecords(ctx context.Context, botID string) ([]domain.LearningRecord, error) {
	var records []entities.LearningRecord
	err := r.db.WithContext(ctx).
		Where("bot_id = ?", botID).
		Order("use_count DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.LearningRecord, len(records))
	for i, rec := range records {
		out[i] = domain.LearningRecord{
			ID:       rec.ID,
			BotID:    rec.BotID,
			Question: rec.Question,
			Answer:   rec.Answer,
			UseCount: rec.UseCount,
		}
	}
	return out, nil
}

func (r *PostgresRepository) SaveLearningRecord(ctx context.Context, rec *domain.LearningRecord) error {
	return r.db.WithContext(ctx).Create(&entities.LearningRecord{
		ID:       rec.ID,
		BotID:    rec.BotID,
		Question: rec.Question,
		Answer:   rec.Answer,
		UseCount: rec.UseCount,
	}).Error
}

func (r *PostgresRepository) IncrementUseCount(ctx context.Context, recordID string) error {
	return r.db.WithContext(ctx).Model(&entities.LearningRecord{}).
		Where("id = ?", recordID).
		UpdateColumn("use_count", gorm.Expr("use_count + 1")).Error
}

func botToEntity(b *domain.Bot) *entities.MessengerBot {
	return &entities.MessengerBot{
		ID:                b.ID,
		PageID:            b.PageID,
		IsActive:          b.IsActive,
		WelcomeMessage:    b.WelcomeMessage,
		FallbackMessage:   b.FallbackMessage,
		AIModel:           b.AIModel,
		Settings:          entities.JSONColumn(b.Settings),
		ConversationCount: b.ConversationCount,
		SuccessCount:      b.SuccessCount,
		Satisfaction:      b.Satisfaction,
	}
}

func botToDomain(e *entities.MessengerBot) *domain.Bot {
	return &domain.Bot{
		ID:                e.ID,
		PageID:            e.PageID,
		IsActive:          e.IsActive,
		WelcomeMessage:    e.WelcomeMessage,
		FallbackMessage:   e.FallbackMessage,
		AIModel:           e.AIModel,
		Settings:          string(e.Settings),
		ConversationCount: e.ConversationCount,
		SuccessCount:      e.SuccessCount,
		Satisfaction:      e.Satisfaction,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
