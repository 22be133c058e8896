package content_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/content"
	"github.com/pagepilot/pagepilot/internal/domain/generation"
	"github.com/pagepilot/pagepilot/internal/domain/page"
	contentrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/content"
	pagerepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/page"
)

type fakePublisher struct {
	calls []string
	err   error
}

func (f *fakePublisher) PublishPost(ctx context.Context, pageID, accessToken, message, imageURL string) (string, error) {
	f.calls = append(f.calls, pageID)
	if f.err != nil {
		return "", f.err
	}
	return "post-1", nil
}

func newFixture(t *testing.T, publisher content.Publisher) (content.Service, *contentrepo.InMemoryRepository, *pagerepo.InMemoryRepository) {
	t.Helper()
	repo := contentrepo.NewInMemoryRepository()
	pages := pagerepo.NewInMemoryRepository()
	dispatcher := generation.NewDispatcher(nil, nil, nil, zerolog.Nop())
	svc := content.NewService(repo, dispatcher, nil, publisher, pages, zerolog.Nop())
	return svc, repo, pages
}

func TestGenerateEmptyPromptCreatesNothing(t *testing.T) {
	svc, repo, _ := newFixture(t, nil)

	_, err := svc.Generate(context.Background(), "user-1", content.GenerateInput{Prompt: "   "})
	if !errors.Is(err, generation.ErrEmptyPrompt) {
		t.Fatalf("err = %v, want ErrEmptyPrompt", err)
	}

	count, _ := repo.CountByUser(context.Background(), "user-1")
	if count != 0 {
		t.Errorf("stored %d rows, want 0", count)
	}
}

func TestGenerateInvalidEnums(t *testing.T) {
	svc, _, _ := newFixture(t, nil)
	ctx := context.Background()

	cases := []content.GenerateInput{
		{Prompt: "p", ContentType: "video"},
		{Prompt: "p", Model: "gpt-2"},
		{Prompt: "p", Style: "sarcastic"},
	}
	for _, in := range cases {
		if _, err := svc.Generate(ctx, "user-1", in); !errors.Is(err, content.ErrInvalidInput) {
			t.Errorf("Generate(%+v) err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestGeneratePersistsFallbackDraft(t *testing.T) {
	svc, _, _ := newFixture(t, nil)

	row, err := svc.Generate(context.Background(), "user-1", content.GenerateInput{
		Prompt: "summer sale",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if row.Status != content.StatusDraft {
		t.Errorf("Status = %q, want draft", row.Status)
	}
	if !strings.Contains(row.Content, "summer sale") {
		t.Errorf("content %q should embed the prompt", row.Content)
	}
	if row.AIModel != generation.FallbackModel {
		t.Errorf("AIModel = %q, want %q", row.AIModel, generation.FallbackModel)
	}
	if row.Prompt != "summer sale" {
		t.Errorf("Prompt = %q", row.Prompt)
	}
}

func TestScheduledDueBoundary(t *testing.T) {
	svc, repo, _ := newFixture(t, nil)
	ctx := context.Background()

	row, err := svc.Generate(ctx, "user-1", content.GenerateInput{Prompt: "p"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	past := time.Now().Add(-time.Minute)
	if _, err := svc.Schedule(ctx, "user-1", row.ID, past); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	due, err := svc.ScheduledDue(ctx)
	if err != nil {
		t.Fatalf("ScheduledDue: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("due = %d rows, want 1", len(due))
	}

	future := time.Now().Add(time.Hour)
	if _, err := svc.Schedule(ctx, "user-1", row.ID, future); err != nil {
		t.Fatalf("Schedule future: %v", err)
	}
	due, err = svc.ScheduledDue(ctx)
	if err != nil {
		t.Fatalf("ScheduledDue: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("future row should not be due, got %d", len(due))
	}

	stored, _ := repo.Get(ctx, row.ID)
	if stored.Status != content.StatusScheduled {
		t.Errorf("Status = %q, want scheduled", stored.Status)
	}
}

func TestUnscheduleRemovesFromDue(t *testing.T) {
	svc, _, _ := newFixture(t, nil)
	ctx := context.Background()

	row, err := svc.Generate(ctx, "user-1", content.GenerateInput{Prompt: "p"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := svc.Schedule(ctx, "user-1", row.ID, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	updated, err := svc.Unschedule(ctx, "user-1", row.ID)
	if err != nil {
		t.Fatalf("Unschedule: %v", err)
	}
	if updated.Status != content.StatusDraft || updated.ScheduledAt != nil {
		t.Errorf("row = %+v, want draft without scheduledAt", updated)
	}

	due, _ := svc.ScheduledDue(ctx)
	if len(due) != 0 {
		t.Errorf("unscheduled row still due")
	}
}

func TestPublishFailureMarksFailed(t *testing.T) {
	publisher := &fakePublisher{err: fmt.Errorf("graph unreachable")}
	svc, repo, pages := newFixture(t, publisher)
	ctx := context.Background()

	p, err := pages.Create(ctx, &page.Page{ID: "pg-1", UserID: "user-1", FacebookPageID: "fb-1", Name: "Shop"})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	row, err := svc.Generate(ctx, "user-1", content.GenerateInput{Prompt: "p", PageID: &p.ID})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := svc.Publish(ctx, "user-1", row.ID); err == nil {
		t.Fatal("Publish should fail when the publisher fails")
	}

	stored, _ := repo.Get(ctx, row.ID)
	if stored.Status != content.StatusFailed {
		t.Errorf("Status = %q, want failed", stored.Status)
	}
}

func TestPublishDueBatch(t *testing.T) {
	publisher := &fakePublisher{}
	svc, repo, pages := newFixture(t, publisher)
	ctx := context.Background()

	p, err := pages.Create(ctx, &page.Page{ID: "pg-1", UserID: "user-1", FacebookPageID: "fb-1", Name: "Shop"})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	for i := 0; i < 2; i++ {
		row, err := svc.Generate(ctx, "user-1", content.GenerateInput{Prompt: "p", PageID: &p.ID})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if _, err := svc.Schedule(ctx, "user-1", row.ID, time.Now().Add(-time.Minute)); err != nil {
			t.Fatalf("Schedule: %v", err)
		}
	}

	if err := svc.PublishDue(ctx); err != nil {
		t.Fatalf("PublishDue: %v", err)
	}
	if len(publisher.calls) != 2 {
		t.Errorf("published %d rows, want 2", len(publisher.calls))
	}

	rows, _ := repo.ListByUser(ctx, "user-1", 10)
	for _, r := range rows {
		if r.Status != content.StatusPublished {
			t.Errorf("row %s status = %q, want published", r.ID, r.Status)
		}
		if r.PublishedAt == nil {
			t.Errorf("row %s missing publishedAt", r.ID)
		}
	}
}

func TestOwnershipHiddenBehindNotFound(t *testing.T) {
	svc, _, _ := newFixture(t, nil)
	ctx := context.Background()

	row, err := svc.Generate(ctx, "user-1", content.GenerateInput{Prompt: "p"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := svc.Update(ctx, "intruder", row.ID, content.UpdateInput{}); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("foreign update err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "intruder", row.ID); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("foreign delete err = %v, want ErrNotFound", err)
	}
}
