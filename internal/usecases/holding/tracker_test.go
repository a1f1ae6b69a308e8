package holding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shop-manager-api/infrastructure/kvstore"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

var defaultDashboardConfig = config.Dashboard{
	AllowBannerDismissal:      true,
	BannerDismissalDurationMs: 24 * 60 * 60 * 1000,
	BannerSnoozeDurationMs:    60 * 60 * 1000,
}

func newTracker(t *testing.T, cfg config.Dashboard) (*Service, *kvstore.MemoryStore) {
	store := kvstore.NewMemoryStore()
	tracker := NewService(store, cfg)
	t.Cleanup(tracker.Close)
	return tracker, store
}

func TestService_HeldSales_MalformedValue(t *testing.T) {
	tracker, store := newTracker(t, defaultDashboardConfig)

	store.Set(kvstore.KeyHeldSales, "{not json")

	// Valor malformado equivale a lista vazia, sem erro
	assert.Empty(t, tracker.HeldSales())
	assert.Equal(t, 0, tracker.Summary().Count)
}

func TestService_AddAndRemoveHold(t *testing.T) {
	tracker, _ := newTracker(t, defaultDashboardConfig)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	hold, err := tracker.AddHold([]domain.SaleItem{{ProductID: "p1", Quantity: 2, UnitPrice: 50}}, "cliente foi buscar dinheiro", now)
	assert.NoError(t, err)
	assert.NotEmpty(t, hold.ID)

	holds := tracker.HeldSales()
	assert.Len(t, holds, 1)
	assert.Equal(t, hold.ID, holds[0].ID)

	summary := tracker.Summary()
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 100.0, summary.TotalValue)
	assert.Equal(t, now, *summary.OldestTimestamp)

	assert.NoError(t, tracker.RemoveHold(hold.ID))
	assert.Empty(t, tracker.HeldSales())

	assert.ErrorIs(t, tracker.RemoveHold("inexistente"), ErrHoldNotFound)
}

func TestService_DismissHidesUntilDurationExpires(t *testing.T) {
	tracker, _ := newTracker(t, defaultDashboardConfig)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	_, err := tracker.AddHold([]domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}}, "", now)
	assert.NoError(t, err)

	assert.True(t, tracker.BannerStatus(now).Visible)

	assert.NoError(t, tracker.Dismiss(now))

	hidden := tracker.BannerStatus(now.Add(time.Hour))
	assert.False(t, hidden.Visible)
	assert.Equal(t, domain.BannerDismissed, hidden.State)
	assert.Equal(t, now.Add(24*time.Hour), *hidden.Until)

	// Passadas 24h o banner volta sozinho
	reappeared := tracker.BannerStatus(now.Add(24*time.Hour + time.Minute))
	assert.True(t, reappeared.Visible)
	assert.Equal(t, domain.BannerVisible, reappeared.State)
}

func TestService_PermanentDismiss(t *testing.T) {
	cfg := defaultDashboardConfig
	cfg.BannerDismissalDurationMs = 0

	tracker, _ := newTracker(t, cfg)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	_, err := tracker.AddHold([]domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}}, "", now)
	assert.NoError(t, err)

	assert.NoError(t, tracker.Dismiss(now))

	// Duração zero: a dispensa não expira nunca, nem muito depois
	status := tracker.BannerStatus(now.AddDate(1, 0, 0))
	assert.False(t, status.Visible)
	assert.Equal(t, domain.BannerDismissed, status.State)
	assert.Nil(t, status.Until)
}

func TestService_SnoozeHidesForWindow(t *testing.T) {
	tracker, _ := newTracker(t, defaultDashboardConfig)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	_, err := tracker.AddHold([]domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}}, "", now)
	assert.NoError(t, err)

	assert.NoError(t, tracker.Snooze(now))

	snoozed := tracker.BannerStatus(now.Add(30 * time.Minute))
	assert.False(t, snoozed.Visible)
	assert.Equal(t, domain.BannerSnoozed, snoozed.State)
	assert.Equal(t, now.Add(time.Hour), *snoozed.Until)

	awake := tracker.BannerStatus(now.Add(61 * time.Minute))
	assert.True(t, awake.Visible)
}

func TestService_DismissalDisabled(t *testing.T) {
	cfg := defaultDashboardConfig
	cfg.AllowBannerDismissal = false

	tracker, store := newTracker(t, cfg)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	_, err := tracker.AddHold([]domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}}, "", now)
	assert.NoError(t, err)

	assert.ErrorIs(t, tracker.Dismiss(now), ErrDismissalDisabled)
	assert.ErrorIs(t, tracker.Snooze(now), ErrDismissalDisabled)
	assert.True(t, tracker.BannerStatus(now).Visible)

	// Marcador antigo gravado antes da configuração mudar é ignorado
	store.Set(kvstore.KeyBannerDismissalPrefix+domain.BannerPending, "1710496800000")
	assert.True(t, tracker.BannerStatus(now).Visible)
}

func TestService_NewHoldClearsSuppression(t *testing.T) {
	tracker, store := newTracker(t, defaultDashboardConfig)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	_, err := tracker.AddHold([]domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}}, "", now)
	assert.NoError(t, err)

	assert.NoError(t, tracker.Dismiss(now))
	assert.False(t, tracker.BannerStatus(now).Visible)

	// Uma venda nova pendurada força o banner de volta imediatamente
	_, err = tracker.AddHold([]domain.SaleItem{{ProductID: "p2", Quantity: 1, UnitPrice: 20}}, "", now.Add(time.Minute))
	assert.NoError(t, err)

	status := tracker.BannerStatus(now.Add(2 * time.Minute))
	assert.True(t, status.Visible)

	_, dismissed := store.Get(kvstore.KeyBannerDismissalPrefix + domain.BannerPending)
	assert.False(t, dismissed)
}

func TestService_NewHoldClearsPermanentDismiss(t *testing.T) {
	cfg := defaultDashboardConfig
	cfg.BannerDismissalDurationMs = 0

	tracker, _ := newTracker(t, cfg)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	_, err := tracker.AddHold([]domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}}, "", now)
	assert.NoError(t, err)

	assert.NoError(t, tracker.Dismiss(now))
	assert.False(t, tracker.BannerStatus(now.AddDate(0, 1, 0)).Visible)

	// Mesmo a dispensa permanente cai quando o conjunto de pendências muda
	_, err = tracker.AddHold([]domain.SaleItem{{ProductID: "p2", Quantity: 1, UnitPrice: 20}}, "", now.Add(time.Minute))
	assert.NoError(t, err)

	assert.True(t, tracker.BannerStatus(now.Add(2*time.Minute)).Visible)
}

func TestService_RemovalDoesNotClearSuppression(t *testing.T) {
	tracker, _ := newTracker(t, defaultDashboardConfig)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	first, err := tracker.AddHold([]domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}}, "", now)
	assert.NoError(t, err)
	_, err = tracker.AddHold([]domain.SaleItem{{ProductID: "p2", Quantity: 1, UnitPrice: 20}}, "", now)
	assert.NoError(t, err)

	assert.NoError(t, tracker.Dismiss(now))

	// Retomar uma venda não é novidade: o banner continua escondido
	assert.NoError(t, tracker.RemoveHold(first.ID))
	assert.False(t, tracker.BannerStatus(now.Add(time.Minute)).Visible)
}

func TestService_ReevaluateClearsExpiredMarkers(t *testing.T) {
	tracker, store := newTracker(t, defaultDashboardConfig)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, tracker.Snooze(now))
	_, exists := store.Get(kvstore.KeyBannerSnoozePrefix + domain.BannerPending)
	assert.True(t, exists)

	// Antes de expirar o marcador permanece
	tracker.Reevaluate(now.Add(30 * time.Minute))
	_, exists = store.Get(kvstore.KeyBannerSnoozePrefix + domain.BannerPending)
	assert.True(t, exists)

	tracker.Reevaluate(now.Add(2 * time.Hour))
	_, exists = store.Get(kvstore.KeyBannerSnoozePrefix + domain.BannerPending)
	assert.False(t, exists)
}

func TestService_BannerHiddenWithoutPendingSales(t *testing.T) {
	tracker, _ := newTracker(t, defaultDashboardConfig)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	// Sem vendas em espera não há o que anunciar
	status := tracker.BannerStatus(now)
	assert.False(t, status.Visible)
	assert.Equal(t, domain.BannerVisible, status.State)
}

func TestService_ExternalWriterForcesVisibility(t *testing.T) {
	tracker, store := newTracker(t, defaultDashboardConfig)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, tracker.Dismiss(now))

	// Outro contexto (outro caixa) grava uma venda nova direto no store
	store.Set(kvstore.KeyHeldSales, `[{"id":"ext1","items":[{"product_id":"p1","quantity":1,"unit_price":10}],"timestamp":"2024-03-15T10:05:00Z"}]`)

	status := tracker.BannerStatus(now.Add(10 * time.Minute))
	assert.True(t, status.Visible)
}
