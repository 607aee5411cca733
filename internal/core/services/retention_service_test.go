package services

import (
	"testing"
	"time"

	"hosteldesk/internal/adapters/persistence/models"
	"hosteldesk/internal/config"
	"hosteldesk/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestSweepPurgesExpiredTokens(t *testing.T) {
	tokens := newFakeTokenRepo()
	logs := newFakeLoginLogRepo()

	tokens.tokens = []*models.RefreshToken{
		{ID: 1, UserID: 1, TokenHash: "dead", ExpiresAt: time.Now().Add(-time.Hour)},
		{ID: 2, UserID: 1, TokenHash: "live", ExpiresAt: time.Now().Add(time.Hour)},
	}
	logs.entries = []*models.LoginLog{
		{ID: 1, Email: "old@example.com", Status: domain.LoginFailed, Time: time.Now().AddDate(0, 0, -90)},
	}

	cfg := testConfig()
	cfg.Retention = config.RetentionConfig{Schedule: "@daily", LoginLogDays: 0}

	svc := NewRetentionService(tokens, logs, cfg)
	svc.sweep()

	assert.Len(t, tokens.tokens, 1)
	assert.Equal(t, "live", tokens.tokens[0].TokenHash)

	// Log pruning is off by default; the audit trail stays intact
	assert.Len(t, logs.entries, 1)
}

func TestSweepPrunesOldLogsWhenConfigured(t *testing.T) {
	tokens := newFakeTokenRepo()
	logs := newFakeLoginLogRepo()

	logs.entries = []*models.LoginLog{
		{ID: 1, Email: "old@example.com", Status: domain.LoginFailed, Time: time.Now().AddDate(0, 0, -90)},
		{ID: 2, Email: "new@example.com", Status: domain.LoginSuccess, Time: time.Now().AddDate(0, 0, -1)},
	}

	cfg := testConfig()
	cfg.Retention = config.RetentionConfig{Schedule: "@daily", LoginLogDays: 30}

	svc := NewRetentionService(tokens, logs, cfg)
	svc.sweep()

	assert.Len(t, logs.entries, 1)
	assert.Equal(t, "new@example.com", logs.entries[0].Email)
}
