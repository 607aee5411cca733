package repositories

import (
	"context"
	"time"

	"hosteldesk/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	// List returns users newest first.
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	Delete(ctx context.Context, id uint) error
}

// ComplaintRepository defines complaint repository interface
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	// ListByUserID returns a user's complaints in insertion order.
	ListByUserID(ctx context.Context, userID uint) ([]*models.Complaint, error)
	// ListWithOwner returns all complaints inner-joined with their owners.
	// Complaints whose owner has been deleted are not included.
	ListWithOwner(ctx context.Context) ([]*models.ComplaintWithOwner, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// LoginLogRepository defines login audit log repository interface
type LoginLogRepository interface {
	Create(ctx context.Context, entry *models.LoginLog) error
	// List returns entries most recent first.
	List(ctx context.Context, offset, limit int) ([]*models.LoginLog, int64, error)
	Delete(ctx context.Context, id uint) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}
