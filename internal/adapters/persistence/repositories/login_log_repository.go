package repositories

import (
	"context"
	"time"

	"hosteldesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// loginLogRepository implements LoginLogRepository interface
type loginLogRepository struct {
	db *gorm.DB
}

// NewLoginLogRepository creates a new login log repository
func NewLoginLogRepository(db *gorm.DB) LoginLogRepository {
	return &loginLogRepository{db: db}
}

// Create appends a login attempt entry
func (r *loginLogRepository) Create(ctx context.Context, entry *models.LoginLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List lists entries most recent first with pagination
func (r *loginLogRepository) List(ctx context.Context, offset, limit int) ([]*models.LoginLog, int64, error) {
	var entries []*models.LoginLog
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.LoginLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("time DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Delete hard deletes an entry. Deleting an absent id is a no-op.
func (r *loginLogRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.LoginLog{}, id).Error
}

// DeleteOlderThan removes entries recorded before the cutoff and reports how
// many were removed.
func (r *loginLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("time < ?", cutoff).
		Delete(&models.LoginLog{})
	return result.RowsAffected, result.Error
}
