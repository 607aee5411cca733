package services

import (
	"context"
	"log"
	"time"

	"hosteldesk/internal/adapters/persistence/repositories"
	"hosteldesk/internal/config"

	"github.com/robfig/cron/v3"
)

// RetentionService runs scheduled housekeeping: expired refresh tokens are
// always purged; login audit entries are purged only when a retention window
// is configured (LOGIN_LOG_RETENTION_DAYS > 0).
type RetentionService struct {
	tokenRepo repositories.RefreshTokenRepository
	logRepo   repositories.LoginLogRepository
	cfg       *config.Config
	cron      *cron.Cron
}

// NewRetentionService creates a new retention service
func NewRetentionService(
	tokenRepo repositories.RefreshTokenRepository,
	logRepo repositories.LoginLogRepository,
	cfg *config.Config,
) *RetentionService {
	return &RetentionService{
		tokenRepo: tokenRepo,
		logRepo:   logRepo,
		cfg:       cfg,
		cron:      cron.New(),
	}
}

// Start schedules the sweep and starts the cron runner.
func (s *RetentionService) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.Retention.Schedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("retention sweep scheduled: %q", s.cfg.Retention.Schedule)
	return nil
}

// Stop stops the cron runner, waiting for a running sweep to finish.
func (s *RetentionService) Stop() {
	<-s.cron.Stop().Done()
}

// sweep runs one housekeeping pass.
func (s *RetentionService) sweep() {
	ctx := context.Background()

	if n, err := s.tokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("retention: failed to purge expired refresh tokens: %v", err)
	} else if n > 0 {
		log.Printf("retention: purged %d expired refresh tokens", n)
	}

	if days := s.cfg.Retention.LoginLogDays; days > 0 {
		cutoff := time.Now().AddDate(0, 0, -days)
		if n, err := s.logRepo.DeleteOlderThan(ctx, cutoff); err != nil {
			log.Printf("retention: failed to purge login logs: %v", err)
		} else if n > 0 {
			log.Printf("retention: purged %d login log entries older than %d days", n, days)
		}
	}
}
