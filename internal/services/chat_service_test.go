package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SAP-F-2025/learning-data-service/internal/events"
	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
)

func TestChatService_SaveAndList(t *testing.T) {
	env := newTestEnv(t)
	svc := NewChatService(env.repo, env.logger, env.validator, env.publisher)
	ctx := context.Background()

	start := env.now
	for i, user := range []string{"u1", "u2", "u1"} {
		if _, err := svc.Save(ctx, &models.ChatSaveRequest{UserID: user, Message: "hi", Response: "hello"}); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
		env.now = env.now.Add(time.Hour)
	}

	all, err := svc.List(ctx, repositories.ChatFilters{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 interactions, got %d", len(all))
	}
	if !all[0].Timestamp.After(all[2].Timestamp) {
		t.Error("expected newest first")
	}

	user := "u1"
	end := start.Add(time.Hour)
	filtered, err := svc.List(ctx, repositories.ChatFilters{UserID: &user, StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("filtered List: %v", err)
	}
	if len(filtered) != 1 || !filtered[0].Timestamp.Equal(start) {
		t.Errorf("expected only the first u1 message, got %+v", filtered)
	}

	if got := env.publisher.types(); len(got) != 3 || got[0] != events.ChatRecorded {
		t.Errorf("expected three chat.recorded events, got %v", got)
	}
}

func TestChatService_InvertedRangeMatchesNothing(t *testing.T) {
	env := newTestEnv(t)
	svc := NewChatService(env.repo, env.logger, env.validator, env.publisher)
	ctx := context.Background()

	if _, err := svc.Save(ctx, &models.ChatSaveRequest{UserID: "u1", Message: "hi"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	start := env.now.Add(time.Hour)
	end := env.now.Add(-time.Hour)
	list, err := svc.List(ctx, repositories.ChatFilters{StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected no results, got %d", len(list))
	}
}

func TestChatService_SaveValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewChatService(env.repo, env.logger, env.validator, env.publisher)

	if _, err := svc.Save(context.Background(), &models.ChatSaveRequest{UserID: "u1"}); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed for empty message, got %v", err)
	}
}
