package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Hostel    string    `gorm:"size:50" json:"hostel"`
	Room      string    `gorm:"size:20" json:"room"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Hostel    string    `json:"hostel"`
	Room      string    `json:"room"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Hostel:    u.Hostel,
		Room:      u.Room,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Complaint represents complaints table. UserID is a plain reference, not a
// foreign key constraint: deleting a user leaves its complaints in place, and
// the admin listing hides them through its inner join.
type Complaint struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      string    `gorm:"size:50;not null" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// ComplaintWithOwner is the admin listing row: a complaint joined with its
// owner's identity.
type ComplaintWithOwner struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerName   string    `json:"owner_name"`
	OwnerEmail  string    `json:"owner_email"`
	OwnerRoom   string    `json:"owner_room"`
}

// LoginLog represents login_logs table. One row per login attempt, success or
// failure. Email is stored as submitted and need not reference a user.
type LoginLog struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	Email  string    `gorm:"size:100;not null" json:"email"`
	Status string    `gorm:"size:20;not null" json:"status"`
	Time   time.Time `gorm:"index;not null" json:"time"`
}

func (LoginLog) TableName() string {
	return "login_logs"
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// AutoMigrate creates tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Complaint{},
		&LoginLog{},
		&RefreshToken{},
	)
}
