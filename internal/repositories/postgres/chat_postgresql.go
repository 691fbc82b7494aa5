package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatPostgreSQL struct {
	uow *unitOfWork
}

func NewChatPostgreSQL(uow *unitOfWork) repositories.ChatRepository {
	return &ChatPostgreSQL{uow: uow}
}

func (c *ChatPostgreSQL) Save(ctx context.Context, userID, message, response string) (*models.ChatInteraction, error) {
	interaction := &models.ChatInteraction{
		UserID:    userID,
		Message:   message,
		Response:  response,
		Timestamp: c.uow.timestamp(),
	}

	if err := c.uow.write(ctx, "save", func(tx *gorm.DB) error {
		return tx.Create(interaction).Error
	}); err != nil {
		return nil, fmt.Errorf("failed to save chat interaction: %w", err)
	}
	return interaction, nil
}

// List returns interactions matching every filter that is set, most recent first
func (c *ChatPostgreSQL) List(ctx context.Context, filters repositories.ChatFilters) ([]*models.ChatInteraction, error) {
	var interactions []*models.ChatInteraction
	err := c.uow.read(ctx, "list", func(db *gorm.DB) error {
		query := applyChatFilters(db.Model(&models.ChatInteraction{}), filters)
		return query.
			Order(clause.OrderByColumn{Column: chatTimestampColumn, Desc: true}).
			Order("id DESC").
			Find(&interactions).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list chat interactions: %w", err)
	}
	return interactions, nil
}
