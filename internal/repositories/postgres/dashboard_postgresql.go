package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dashboardRepository struct {
	uow *unitOfWork
}

func NewDashboardRepository(uow *unitOfWork) repositories.DashboardRepository {
	return &dashboardRepository{uow: uow}
}

// ===== METRICS SNAPSHOT =====

// Recompute rebuilds the metrics row from users and assessments.
//
// The four reads and the upsert share one transaction. On PostgreSQL it runs
// REPEATABLE READ so all counters come from a single snapshot; other dialects
// use their default isolation and concurrent writers may yield a mix of instants.
// The row always has id = 1 and the write is an upsert, so there is never a
// second row. Under REPEATABLE READ the later of two overlapping recomputations
// fails with a serialization error (SQLSTATE 40001) once the first commits; that
// error is returned to the caller like any other storage fault.
func (r *dashboardRepository) Recompute(ctx context.Context) (*models.DashboardMetrics, error) {
	now := r.uow.timestamp()
	metrics := models.DashboardMetrics{ID: models.DashboardMetricsID}

	var opts []*sql.TxOptions
	if r.uow.dialect() == "postgres" {
		opts = append(opts, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	}

	err := r.uow.write(ctx, "recompute", func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Count(&metrics.TotalUsers).Error; err != nil {
			return fmt.Errorf("failed to get total users: %w", err)
		}

		if err := tx.Model(&models.User{}).
			Where("last_login >= ?", now.Add(-repositories.ActiveUserWindow)).
			Count(&metrics.ActiveUsers).Error; err != nil {
			return fmt.Errorf("failed to get active users: %w", err)
		}

		if err := tx.Model(&models.Assessment{}).
			Where("status = ?", models.AssessmentCompleted).
			Count(&metrics.AssessmentsCompleted).Error; err != nil {
			return fmt.Errorf("failed to get completed assessments: %w", err)
		}

		// AVG is NULL when nothing is completed; the mean is defined as 0 then
		var result struct {
			AvgScore *float64
		}
		if err := tx.Model(&models.Assessment{}).
			Where("status = ?", models.AssessmentCompleted).
			Select("AVG(score) AS avg_score").
			Scan(&result).Error; err != nil {
			return fmt.Errorf("failed to get average score: %w", err)
		}
		if result.AvgScore != nil {
			metrics.AverageScore = *result.AvgScore
		}

		metrics.LastUpdated = now

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_users",
				"active_users",
				"assessments_completed",
				"average_score",
				"last_updated",
			}),
		}).Create(&metrics).Error
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to update dashboard metrics: %w", err)
	}

	return &metrics, nil
}

func (r *dashboardRepository) Get(ctx context.Context) (*models.DashboardMetrics, error) {
	var metrics models.DashboardMetrics
	err := r.uow.read(ctx, "get", func(db *gorm.DB) error {
		return db.First(&metrics, models.DashboardMetricsID).Error
	})
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard metrics: %w", err)
	}
	return &metrics, nil
}
