package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"hosteldesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	users  []*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return errors.New("duplicate email")
		}
	}
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	sorted := make([]*models.User, len(f.users))
	copy(sorted, f.users)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID > sorted[j].ID })

	total := int64(len(sorted))
	if offset >= len(sorted) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], total, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeComplaintRepo struct {
	complaints []*models.Complaint
	users      *fakeUserRepo
	nextID     uint
}

func newFakeComplaintRepo(users *fakeUserRepo) *fakeComplaintRepo {
	return &fakeComplaintRepo{users: users, nextID: 1}
}

func (f *fakeComplaintRepo) Create(_ context.Context, complaint *models.Complaint) error {
	complaint.ID = f.nextID
	complaint.CreatedAt = time.Now()
	f.nextID++
	f.complaints = append(f.complaints, complaint)
	return nil
}

func (f *fakeComplaintRepo) ListByUserID(_ context.Context, userID uint) ([]*models.Complaint, error) {
	var result []*models.Complaint
	for _, c := range f.complaints {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeComplaintRepo) ListWithOwner(ctx context.Context) ([]*models.ComplaintWithOwner, error) {
	var rows []*models.ComplaintWithOwner
	for _, c := range f.complaints {
		owner, err := f.users.GetByID(ctx, c.UserID)
		if err != nil {
			continue // inner join: orphaned complaints do not appear
		}
		rows = append(rows, &models.ComplaintWithOwner{
			ID:          c.ID,
			UserID:      c.UserID,
			Category:    c.Category,
			Description: c.Description,
			Status:      c.Status,
			CreatedAt:   c.CreatedAt,
			OwnerName:   owner.Name,
			OwnerEmail:  owner.Email,
			OwnerRoom:   owner.Room,
		})
	}
	return rows, nil
}

func (f *fakeComplaintRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	for _, c := range f.complaints {
		if c.ID == id {
			c.Status = status
		}
	}
	return nil
}

func (f *fakeComplaintRepo) Delete(_ context.Context, id uint) error {
	for i, c := range f.complaints {
		if c.ID == id {
			f.complaints = append(f.complaints[:i], f.complaints[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeComplaintRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, c := range f.complaints {
		if c.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeLoginLogRepo struct {
	entries []*models.LoginLog
	nextID  uint
}

func newFakeLoginLogRepo() *fakeLoginLogRepo {
	return &fakeLoginLogRepo{nextID: 1}
}

func (f *fakeLoginLogRepo) Create(_ context.Context, entry *models.LoginLog) error {
	entry.ID = f.nextID
	f.nextID++
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeLoginLogRepo) List(_ context.Context, offset, limit int) ([]*models.LoginLog, int64, error) {
	sorted := make([]*models.LoginLog, len(f.entries))
	copy(sorted, f.entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time.After(sorted[j].Time) })

	total := int64(len(sorted))
	if offset >= len(sorted) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], total, nil
}

func (f *fakeLoginLogRepo) Delete(_ context.Context, id uint) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeLoginLogRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []*models.LoginLog
	var removed int64
	for _, e := range f.entries {
		if e.Time.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	f.entries = kept
	return removed, nil
}

type fakeTokenRepo struct {
	tokens []*models.RefreshToken
	nextID uint
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{nextID: 1}
}

func (f *fakeTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	token.ID = f.nextID
	token.CreatedAt = time.Now()
	f.nextID++
	f.tokens = append(f.tokens, token)
	return nil
}

func (f *fakeTokenRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	for _, t := range f.tokens {
		if t.TokenHash == tokenHash {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTokenRepo) Revoke(_ context.Context, id uint) error {
	now := time.Now()
	for _, t := range f.tokens {
		if t.ID == id {
			t.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeTokenRepo) RevokeByTokenHash(_ context.Context, tokenHash string) error {
	now := time.Now()
	for _, t := range f.tokens {
		if t.TokenHash == tokenHash && t.RevokedAt == nil {
			t.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeTokenRepo) DeleteByUserID(_ context.Context, userID uint) error {
	var kept []*models.RefreshToken
	for _, t := range f.tokens {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	f.tokens = kept
	return nil
}

func (f *fakeTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	var kept []*models.RefreshToken
	var removed int64
	for _, t := range f.tokens {
		if t.IsExpired() {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	f.tokens = kept
	return removed, nil
}
