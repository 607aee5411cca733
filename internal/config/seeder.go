package config

import (
	"context"
	"log"

	"hosteldesk/internal/adapters/persistence/models"
	"hosteldesk/internal/adapters/persistence/repositories"
	"hosteldesk/internal/core/domain"
	"hosteldesk/internal/pkg/password"
)

// Default bootstrap admin credential, used only when ADMIN_EMAIL and
// ADMIN_PASSWORD are not set. Fine for a dev instance, a liability anywhere
// else; the seeder warns loudly when it falls back to these.
const (
	DefaultAdminEmail    = "admin@gmail.com"
	DefaultAdminPassword = "admin123"
)

// Seeder ensures the portal has exactly one bootstrap admin account.
type Seeder struct {
	userRepo repositories.UserRepository
	cfg      *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo repositories.UserRepository, cfg *Config) *Seeder {
	return &Seeder{userRepo: userRepo, cfg: cfg}
}

// Run seeds the admin account if no admin exists yet. Safe to run on every
// startup: once any admin-role user is present this does nothing.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.userRepo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash(s.cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Admin",
		Email:    s.cfg.Admin.Email,
		Hostel:   "Admin Block",
		Room:     "000",
		Password: hashedPassword,
		Role:     domain.RoleAdmin,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("admin account created: %s", admin.Email)
	if s.cfg.Admin.Email == DefaultAdminEmail || s.cfg.Admin.Password == DefaultAdminPassword {
		log.Println("WARNING: admin account uses the default credential; set ADMIN_EMAIL and ADMIN_PASSWORD")
	}
	return nil
}
