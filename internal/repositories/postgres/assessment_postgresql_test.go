package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
)

func TestAssessmentPostgreSQL_Save(t *testing.T) {
	repo, clock := testRepository(t)
	ctx := context.Background()

	saved, err := repo.Assessment().Save(ctx, &models.Assessment{
		UserID:     "u1",
		Title:      "Go concurrency",
		Skills:     []string{"goroutines", "channels"},
		Difficulty: "intermediate",
		Score:      72.5,
		Status:     models.AssessmentPending,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Error("Save: expected generated id")
	}
	if saved.Status != models.AssessmentCompleted {
		t.Errorf("Save: expected status completed, got %s", saved.Status)
	}
	if saved.CompletedAt == nil || !saved.CompletedAt.Equal(clock.Now()) {
		t.Errorf("Save: expected completed_at %v, got %v", clock.Now(), saved.CompletedAt)
	}

	got, err := repo.Assessment().GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID: expected assessment")
	}
	if got.Title != saved.Title || got.Score != saved.Score || got.Status != models.AssessmentCompleted {
		t.Errorf("GetByID: got %+v", got)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "goroutines" || got.Skills[1] != "channels" {
		t.Errorf("GetByID: skills not preserved: %v", got.Skills)
	}

	missing, err := repo.Assessment().GetByID(ctx, "missing")
	if err != nil || missing != nil {
		t.Errorf("GetByID missing: expected (nil, nil), got (%+v, %v)", missing, err)
	}
}

func TestAssessmentPostgreSQL_KeepsCallerID(t *testing.T) {
	repo, _ := testRepository(t)
	ctx := context.Background()

	saved, err := repo.Assessment().Save(ctx, &models.Assessment{ID: "assess-42", UserID: "u1", Title: "SQL"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID != "assess-42" {
		t.Errorf("expected caller id to be kept, got %s", saved.ID)
	}
}

func TestAssessmentPostgreSQL_ListByUser(t *testing.T) {
	repo, clock := testRepository(t)
	ctx := context.Background()

	for _, a := range []struct{ id, user string }{
		{"a1", "u1"},
		{"a2", "u2"},
		{"a3", "u1"},
	} {
		clock.Advance(time.Minute)
		if _, err := repo.Assessment().Save(ctx, &models.Assessment{ID: a.id, UserID: a.user, Title: a.id}); err != nil {
			t.Fatalf("Save %s: %v", a.id, err)
		}
	}

	list, err := repo.Assessment().ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 2 || list[0].ID != "a3" || list[1].ID != "a1" {
		t.Fatalf("ListByUser: unexpected result %+v", list)
	}

	none, err := repo.Assessment().ListByUser(ctx, "u3")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no assessments, got %d", len(none))
	}
}
