package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HackathonPostgreSQL struct {
	uow *unitOfWork
}

func NewHackathonPostgreSQL(uow *unitOfWork) repositories.HackathonRepository {
	return &HackathonPostgreSQL{uow: uow}
}

func (h *HackathonPostgreSQL) Create(ctx context.Context, hackathon *models.Hackathon) (*models.Hackathon, error) {
	hackathon.CreatedAt = h.uow.timestamp()
	if hackathon.Status == "" {
		hackathon.Status = models.HackathonUpcoming
	}

	if err := h.uow.write(ctx, "create", func(tx *gorm.DB) error {
		return tx.Create(hackathon).Error
	}); err != nil {
		return nil, fmt.Errorf("failed to create hackathon: %w", err)
	}
	return hackathon, nil
}

func (h *HackathonPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	err := h.uow.read(ctx, "get_by_id", func(db *gorm.DB) error {
		return db.First(&hackathon, id).Error
	})
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hackathon: %w", err)
	}
	return &hackathon, nil
}

func (h *HackathonPostgreSQL) List(ctx context.Context, filters repositories.HackathonFilters) ([]*models.Hackathon, error) {
	var hackathons []*models.Hackathon
	err := h.uow.read(ctx, "list", func(db *gorm.DB) error {
		return applyHackathonFilters(db.Model(&models.Hackathon{}), filters).
			Order("created_at DESC").
			Order("id DESC").
			Find(&hackathons).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathons: %w", err)
	}
	return hackathons, nil
}

// Join is idempotent per (user, hackathon). The pair is read first; the insert
// uses ON CONFLICT DO NOTHING against idx_hackathon_participant_pair so a
// concurrent join that commits first wins and its row is returned instead.
func (h *HackathonPostgreSQL) Join(ctx context.Context, userID string, hackathonID uint) (*models.HackathonParticipant, error) {
	var participant models.HackathonParticipant

	err := h.uow.write(ctx, "join", func(tx *gorm.DB) error {
		found := tx.Where("user_id = ? AND hackathon_id = ?", userID, hackathonID).
			Limit(1).
			Find(&participant)
		if found.Error != nil {
			return found.Error
		}
		if found.RowsAffected > 0 {
			return nil
		}

		participant = models.HackathonParticipant{
			UserID:      userID,
			HackathonID: hackathonID,
			JoinedAt:    h.uow.timestamp(),
		}
		inserted := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "hackathon_id"}},
			DoNothing: true,
		}).Create(&participant)
		if inserted.Error != nil {
			return inserted.Error
		}
		if inserted.RowsAffected > 0 {
			return nil
		}

		h.uow.logger.DebugContext(ctx, "Concurrent join won the insert, returning its row",
			"user_id", userID,
			"hackathon_id", hackathonID)
		participant = models.HackathonParticipant{}
		return tx.Where("user_id = ? AND hackathon_id = ?", userID, hackathonID).First(&participant).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to join hackathon: %w", err)
	}
	return &participant, nil
}

func (h *HackathonPostgreSQL) ListParticipants(ctx context.Context, hackathonID uint) ([]*models.HackathonParticipant, error) {
	var participants []*models.HackathonParticipant
	err := h.uow.read(ctx, "list_participants", func(db *gorm.DB) error {
		return db.Where("hackathon_id = ?", hackathonID).
			Order("joined_at DESC").
			Order("id DESC").
			Find(&participants).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathon participants: %w", err)
	}
	return participants, nil
}
