package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
)

func TestChatPostgreSQL_List(t *testing.T) {
	repo, clock := testRepository(t)
	ctx := context.Background()

	// one interaction per hour, alternating users
	base := clock.Now()
	var stamps []time.Time
	for i := 0; i < 6; i++ {
		user := "u1"
		if i%2 == 1 {
			user = "u2"
		}
		clock.Set(base.Add(time.Duration(i) * time.Hour))
		saved, err := repo.Chat().Save(ctx, user, "question", "answer")
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		stamps = append(stamps, saved.Timestamp)
	}

	u1 := "u1"
	start := stamps[1]
	end := stamps[4]

	tests := []struct {
		name    string
		filters repositories.ChatFilters
		want    []time.Time
	}{
		{
			name:    "no filters returns everything newest first",
			filters: repositories.ChatFilters{},
			want:    []time.Time{stamps[5], stamps[4], stamps[3], stamps[2], stamps[1], stamps[0]},
		},
		{
			name:    "inclusive date range",
			filters: repositories.ChatFilters{StartDate: &start, EndDate: &end},
			want:    []time.Time{stamps[4], stamps[3], stamps[2], stamps[1]},
		},
		{
			name:    "user and range combine",
			filters: repositories.ChatFilters{UserID: &u1, StartDate: &start, EndDate: &end},
			want:    []time.Time{stamps[4], stamps[2]},
		},
		{
			name:    "start only",
			filters: repositories.ChatFilters{StartDate: &end},
			want:    []time.Time{stamps[5], stamps[4]},
		},
		{
			name:    "user only",
			filters: repositories.ChatFilters{UserID: &u1},
			want:    []time.Time{stamps[4], stamps[2], stamps[0]},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Chat().List(ctx, tt.filters)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d interactions, got %d", len(tt.want), len(got))
			}
			for i, ts := range tt.want {
				if !got[i].Timestamp.Equal(ts) {
					t.Errorf("position %d: expected %v, got %v", i, ts, got[i].Timestamp)
				}
			}
		})
	}
}
