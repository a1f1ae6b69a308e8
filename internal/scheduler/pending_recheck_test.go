package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shop-manager-api/infrastructure/kvstore"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/internal/usecases/holding"
)

func newTestService(t *testing.T) (*PendingRecheckService, *kvstore.MemoryStore) {
	store := kvstore.NewMemoryStore()

	tracker := holding.NewService(store, config.Dashboard{
		AllowBannerDismissal:      true,
		BannerDismissalDurationMs: 24 * 60 * 60 * 1000,
		BannerSnoozeDurationMs:    1, // Soneca de 1ms para o teste expirar imediatamente
	})
	t.Cleanup(tracker.Close)

	appConfig := &config.Config{
		PendingRecheck: config.PendingRecheck{
			CronSchedule: "* * * * *",
			Enabled:      true,
		},
	}

	return NewPendingRecheckService(tracker, appConfig), store
}

func TestPendingRecheckService_RecheckClearsExpiredSnooze(t *testing.T) {
	service, store := newTestService(t)

	snoozeKey := kvstore.KeyBannerSnoozePrefix + domain.BannerPending
	assert.NoError(t, service.tracker.Snooze(time.Now().Add(-time.Second)))

	_, exists := store.Get(snoozeKey)
	assert.True(t, exists)

	service.recheck()

	_, exists = store.Get(snoozeKey)
	assert.False(t, exists)
	assert.False(t, service.lastRunCompletedAt.IsZero())
}

func TestPendingRecheckService_GetStatus(t *testing.T) {
	service, _ := newTestService(t)

	status := service.GetStatus()

	assert.Equal(t, true, status["recheck_enabled"])
	assert.Equal(t, "* * * * *", status["recheck_cron"])
}
