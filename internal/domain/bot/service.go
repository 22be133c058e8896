package bot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/generation"
	"github.com/pagepilot/pagepilot/internal/infrastructure/metrics"
)

const defaultFallbackMessage = "I'm having trouble processing your message right now. Please try again or contact our support team."

// Options tunes the learning heuristics. The satisfaction score is a
// synthetic metric: base plus a random component up to spread.
type Options struct {
	LearningSampleRate float64
	SatisfactionBase   float64
	SatisfactionSpread float64
}

// Responder produces a customer-service reply with a messenger-tuned
// system prompt. The OpenAI adapter implements it.
type Responder interface {
	GenerateMessengerResponse(ctx context.Context, message, contextNote string) (string, error)
}

// Service describes the business logic surface for messenger bots.
type Service interface {
	GetByPage(ctx context.Context, pageID string) (*Bot, error)
	Create(ctx context.Context, pageID string, in UpdateInput) (*Bot, error)
	Update(ctx context.Context, pageID string, in UpdateInput) (*Bot, error)
	GenerateResponse(ctx context.Context, pageID, message, contextNote string) (*Reply, error)
	AggregateLearning(ctx context.Context) error
}

type service struct {
	repo       Repository
	dispatcher *generation.Dispatcher
	responder  Responder
	opts       Options
	log        zerolog.Logger
	now        func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService wires the bot service. responder may be nil; rng is injected so
// sampling is deterministic under test.
func NewService(repo Repository, dispatcher *generation.Dispatcher, responder Responder, opts Options, rng *rand.Rand, log zerolog.Logger) Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &service{
		repo:       repo,
		dispatcher: dispatcher,
		responder:  responder,
		opts:       opts,
		log:        log.With().Str("component", "bot-service").Logger(),
		now:        time.Now,
		rng:        rng,
	}
}

func (s *service) GetByPage(ctx context.Context, pageID string) (*Bot, error) {
	return s.repo.GetByPage(ctx, pageID)
}

func (s *service) Create(ctx context.Context, pageID string, in UpdateInput) (*Bot, error) {
	if strings.TrimSpace(pageID) == "" {
		return nil, fmt.Errorf("%w: pageId is required", ErrInvalidInput)
	}

	b := &Bot{
		ID:              uuid.NewString(),
		PageID:          pageID,
		IsActive:        true,
		AIModel:         string(generation.ModelGPT5),
		FallbackMessage: defaultFallbackMessage,
		Settings:        "{}",
	}
	applyUpdate(b, in)

	return s.repo.Create(ctx, b)
}

func (s *service) Update(ctx context.Context, pageID string, in UpdateInput) (*Bot, error) {
	b, err := s.repo.GetByPage(ctx, pageID)
	if err != nil {
		return nil, err
	}
	applyUpdate(b, in)
	return s.repo.Update(ctx, b)
}

// GenerateResponse answers a customer message. The lookup order is:
// learned records first (substring match in either direction), then the
// configured AI backend, then the bot's fallback message. The bot always
// answers.
func (s *service) GenerateResponse(ctx context.Context, pageID, message, contextNote string) (*Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	b, err := s.repo.GetByPage(ctx, pageID)
	if err != nil {
		return nil, err
	}
	if !b.IsActive {
		return nil, ErrInactive
	}

	start := s.now()
	sentiment := ClassifySentiment(message)
	intent := ClassifyIntent(message)

	answer, source := s.answer(ctx, b, message, contextNote)

	satisfaction := s.opts.SatisfactionBase + s.randomFloat()*s.opts.SatisfactionSpread
	elapsed := s.now().Sub(start).Milliseconds()

	s.recordExchange(ctx, b, message, answer, sentiment, intent, elapsed)
	s.updateCounters(ctx, b, source, satisfaction)

	if source == SourceGenerated {
		s.maybeLearn(ctx, b, message, answer)
	}

	metrics.RecordBotMessage(source)

	return &Reply{
		Answer:       answer,
		Source:       source,
		Sentiment:    sentiment,
		Intent:       intent,
		Satisfaction: satisfaction,
	}, nil
}

func (s *service) answer(ctx context.Context, b *Bot, message, contextNote string) (string, string) {
	if record := s.matchLearned(ctx, b, message); record != nil {
		if err := s.repo.IncrementUseCount(ctx, record.ID); err != nil {
			s.log.Warn().Err(err).Str("record_id", record.ID).Msg("bump learning use count")
		}
		return record.Answer, SourceLearned
	}

	if s.responder != nil && generation.Model(b.AIModel) == generation.ModelGPT5 {
		reply, err := s.responder.GenerateMessengerResponse(ctx, message, contextNote)
		if err == nil {
			return reply, SourceGenerated
		}
		s.log.Warn().Err(err).Str("bot_id", b.ID).Msg("messenger responder failed, dispatching")
	}

	prompt := message
	if contextNote != "" {
		prompt = fmt.Sprintf("Customer message: %s\n\nContext: %s", message, contextNote)
	}
	resp := s.dispatcher.Generate(ctx, generation.Request{
		Prompt:      prompt,
		ContentType: generation.ContentTypePost,
		Model:       generation.Model(b.AIModel),
	})
	if resp.Model == generation.FallbackModel {
		fallback := b.FallbackMessage
		if fallback == "" {
			fallback = defaultFallbackMessage
		}
		return fallback, SourceFallback
	}
	return resp.Content, SourceGenerated
}

// matchLearned scans learning records linearly for a substring match in
// either direction against the lowercased message.
func (s *service) matchLearned(ctx context.Context, b *Bot, message string) *LearningRecord {
	records, err := s.repo.LearningRecords(ctx, b.ID)
	if err != nil {
		s.log.Warn().Err(err).Msg("load learning records")
		return nil
	}

	lower := strings.ToLower(message)
	for i := range records {
		question := strings.ToLower(records[i].Question)
		if question == "" {
			continue
		}
		if strings.Contains(lower, question) || strings.Contains(question, lower) {
			return &records[i]
		}
	}
	return nil
}

func (s *service) recordExchange(ctx context.Context, b *Bot, message, answer, sentiment, intent string, elapsedMs int64) {
	key := uuid.NewString()
	userMsg := &Message{
		ID:              uuid.NewString(),
		BotID:           b.ID,
		PageID:          b.PageID,
		ConversationKey: key,
		Sender:          "user",
		Message:         message,
		Sentiment:       sentiment,
		Intent:          intent,
	}
	botMsg := &Message{
		ID:              uuid.NewString(),
		BotID:           b.ID,
		PageID:          b.PageID,
		ConversationKey: key,
		Sender:          "bot",
		Message:         answer,
		ResponseTimeMs:  elapsedMs,
	}
	if err := s.repo.AppendMessage(ctx, userMsg); err != nil {
		s.log.Warn().Err(err).Msg("append user message")
	}
	if err := s.repo.AppendMessage(ctx, botMsg); err != nil {
		s.log.Warn().Err(err).Msg("append bot message")
	}
}

func (s *service) updateCounters(ctx context.Context, b *Bot, source string, satisfaction float64) {
	b.ConversationCount++
	if source != SourceFallback {
		b.SuccessCount++
	}
	b.Satisfaction = satisfaction
	if _, err := s.repo.Update(ctx, b); err != nil {
		s.log.Warn().Err(err).Str("bot_id", b.ID).Msg("update bot counters")
	}
}

// maybeLearn persists the exchange as a learning record with the configured
// sampling probability. Persistence is best effort.
func (s *service) maybeLearn(ctx context.Context, b *Bot, message, answer string) {
	if s.randomFloat() >= s.opts.LearningSampleRate {
		return
	}
	record := &LearningRecord{
		ID:       uuid.NewString(),
		BotID:    b.ID,
		Question: strings.ToLower(message),
		Answer:   answer,
	}
	if err := s.repo.SaveLearningRecord(ctx, record); err != nil {
		s.log.Warn().Err(err).Msg("save learning record")
		return
	}
	metrics.LearningRecordsTotal.Inc()
}

// AggregateLearning recomputes each bot's derived satisfaction from the
// sentiment distribution of its stored conversations.
func (s *service) AggregateLearning(ctx context.Context) error {
	bots, err := s.repo.ListBots(ctx)
	if err != nil {
		return err
	}

	for i := range bots {
		msgs, err := s.repo.ListMessages(ctx, bots[i].ID, 500)
		if err != nil {
			s.log.Warn().Err(err).Str("bot_id", bots[i].ID).Msg("list messages for aggregation")
			continue
		}

		var positive, negative, labeled int
		intents := map[string]int{}
		for _, m := range msgs {
			if m.Sender != "user" {
				continue
			}
			labeled++
			switch m.Sentiment {
			case "positive":
				positive++
			case "negative":
				negative++
			}
			if m.Intent != "" {
				intents[m.Intent]++
			}
		}
		if labeled == 0 {
			continue
		}

		ratio := float64(positive) / float64(labeled)
		bots[i].Satisfaction = s.opts.SatisfactionBase + ratio*s.opts.SatisfactionSpread
		if _, err := s.repo.Update(ctx, &bots[i]); err != nil {
			s.log.Warn().Err(err).Str("bot_id", bots[i].ID).Msg("update aggregated satisfaction")
			continue
		}
		s.log.Info().
			Str("bot_id", bots[i].ID).
			Int("messages", labeled).
			Int("negative", negative).
			Interface("intents", intents).
			Float64("satisfaction", bots[i].Satisfaction).
			Msg("aggregated bot learning stats")
	}
	return nil
}

func (s *service) randomFloat() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func applyUpdate(b *Bot, in UpdateInput) {
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
	if in.WelcomeMessage != nil {
		b.WelcomeMessage = *in.WelcomeMessage
	}
	if in.FallbackMessage != nil {
		b.FallbackMessage = *in.FallbackMessage
	}
	if in.AIModel != nil {
		b.AIModel = *in.AIModel
	}
	if in.Settings != nil {
		b.Settings = *in.Settings
	}
}
