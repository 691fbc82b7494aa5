package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/learning-data-service/internal/metrics"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// unitOfWork scopes each repository operation to its own database session.
// Reads never commit; writes commit once on success and roll back on error or panic.
type unitOfWork struct {
	db     *gorm.DB
	logger *slog.Logger
	now    func() time.Time
	repo   string
}

func newUnitOfWork(db *gorm.DB, logger *slog.Logger, now func() time.Time, repo string) *unitOfWork {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &unitOfWork{
		db:     db,
		logger: logger.With("repo", repo),
		now:    now,
		repo:   repo,
	}
}

// timestamp is the current time as stored by the database (UTC, microsecond precision)
func (u *unitOfWork) timestamp() time.Time {
	return u.now().UTC().Truncate(time.Microsecond)
}

func (u *unitOfWork) read(ctx context.Context, op string, fn func(db *gorm.DB) error) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveOperation(u.repo, op, start, err) }()

	return fn(u.db.WithContext(ctx))
}

// write runs fn in a transaction. When the unit of work is already inside
// WithTransaction the write becomes a savepoint of the outer transaction.
func (u *unitOfWork) write(ctx context.Context, op string, fn func(tx *gorm.DB) error, opts ...*sql.TxOptions) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveOperation(u.repo, op, start, err) }()

	return u.db.WithContext(ctx).Transaction(fn, opts...)
}

// dialect reports the name of the underlying GORM dialector, e.g. "postgres" or "sqlite"
func (u *unitOfWork) dialect() string {
	return u.db.Dialector.Name()
}

// notFound maps a missing row to the absent result
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// chatTimestampColumn is quoted by the dialect since "timestamp" is also a type name
var chatTimestampColumn = clause.Column{Name: "timestamp"}

// applyChatFilters adds each filter that is set. Conditions are combined with AND.
func applyChatFilters(query *gorm.DB, filters repositories.ChatFilters) *gorm.DB {
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.StartDate != nil {
		query = query.Where(clause.Gte{Column: chatTimestampColumn, Value: filters.StartDate.UTC()})
	}
	if filters.EndDate != nil {
		query = query.Where(clause.Lte{Column: chatTimestampColumn, Value: filters.EndDate.UTC()})
	}
	return query
}

func applyHackathonFilters(query *gorm.DB, filters repositories.HackathonFilters) *gorm.DB {
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	return query
}
