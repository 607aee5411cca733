package repositories

import (
	"context"

	"hosteldesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// complaintRepository implements ComplaintRepository interface
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create creates a new complaint
func (r *complaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// ListByUserID lists a user's complaints in insertion order
func (r *complaintRepository) ListByUserID(ctx context.Context, userID uint) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// ListWithOwner lists all complaints joined with their owners. The inner join
// drops complaints whose owner no longer exists.
func (r *complaintRepository) ListWithOwner(ctx context.Context) ([]*models.ComplaintWithOwner, error) {
	var rows []*models.ComplaintWithOwner
	err := r.db.WithContext(ctx).
		Table("complaints").
		Select(`complaints.id, complaints.user_id, complaints.category,
			complaints.description, complaints.status, complaints.created_at,
			users.name AS owner_name, users.email AS owner_email, users.room AS owner_room`).
		Joins("JOIN users ON users.id = complaints.user_id").
		Order("complaints.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus overwrites a complaint's status unconditionally
func (r *complaintRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete hard deletes a complaint. Deleting an absent id is a no-op.
func (r *complaintRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Complaint{}, id).Error
}

// CountByStatus counts complaints currently holding the given status
func (r *complaintRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
