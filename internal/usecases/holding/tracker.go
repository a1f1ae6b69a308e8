// Package holding rastreia as vendas em espera do PDV e governa a
// visibilidade do banner de pendências no dashboard.
package holding

import (
	"strconv"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/infrastructure/kvstore"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrDismissalDisabled indica que a configuração proíbe esconder o banner
var ErrDismissalDisabled = errors.New("dispensa de banner desabilitada pela configuração")

// ErrHoldNotFound indica que a venda em espera não existe mais no store
var ErrHoldNotFound = errors.New("venda em espera não encontrada")

// Tracker é a interface do rastreador de vendas em espera
type Tracker interface {
	// HeldSales relê a lista corrente do store compartilhado
	HeldSales() []domain.HeldSale

	// Summary devolve o resumo agregado das vendas em espera
	Summary() domain.HeldSaleSummary

	// BannerStatus avalia o estado do banner contra o relógio informado
	BannerStatus(now time.Time) domain.BannerStatus

	// Dismiss esconde o banner pela duração configurada (ou de forma
	// permanente quando a duração é zero)
	Dismiss(now time.Time) error

	// Snooze esconde o banner pela janela de soneca configurada
	Snooze(now time.Time) error

	// AddHold pendura uma nova venda no store compartilhado
	AddHold(items []domain.SaleItem, note string, now time.Time) (*domain.HeldSale, error)

	// RemoveHold retira uma venda em espera do store compartilhado
	RemoveHold(id string) error

	// Reevaluate reavalia os marcadores de supressão contra o relógio,
	// limpando sonecas expiradas
	Reevaluate(now time.Time)

	// Close cancela a assinatura no store compartilhado
	Close()
}

// Service implementa Tracker sobre o store chave-valor compartilhado.
//
// O serviço não mantém cópia da lista de vendas: toda leitura relê o valor
// inteiro do store, então sinais de mudança repetidos são inofensivos.
type Service struct {
	store kvstore.Store
	cfg   config.Dashboard

	mu          sync.Mutex
	knownIDs    map[string]struct{}
	unsubscribe func()
}

func NewService(store kvstore.Store, cfg config.Dashboard) *Service {
	s := &Service{
		store:    store,
		cfg:      cfg,
		knownIDs: map[string]struct{}{},
	}

	for _, hold := range s.HeldSales() {
		s.knownIDs[hold.ID] = struct{}{}
	}

	s.unsubscribe = store.Subscribe(s.onStoreChange)

	return s
}

// Close cancela a assinatura no store
func (s *Service) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// HeldSales relê e decodifica a lista de vendas em espera. Valor ausente ou
// JSON malformado equivalem à lista vazia; o rastreador nunca propaga erro
// de decodificação para cima.
func (s *Service) HeldSales() []domain.HeldSale {
	raw, ok := s.store.Get(kvstore.KeyHeldSales)
	if !ok || raw == "" {
		return []domain.HeldSale{}
	}

	var holds []domain.HeldSale
	if err := json.Unmarshal([]byte(raw), &holds); err != nil {
		logrus.WithError(err).Warn("Lista de vendas em espera malformada, tratando como vazia")
		return []domain.HeldSale{}
	}

	return holds
}

func (s *Service) Summary() domain.HeldSaleSummary {
	return domain.SummarizeHeldSales(s.HeldSales())
}

// BannerStatus avalia o banner de pendências de forma preguiçosa: os
// marcadores persistidos são interpretados contra a configuração corrente,
// então mudar a configuração tem efeito retroativo sobre marcadores antigos.
func (s *Service) BannerStatus(now time.Time) domain.BannerStatus {
	status := domain.BannerStatus{Key: domain.BannerPending, State: domain.BannerVisible}
	hasPending := len(s.HeldSales()) > 0

	if !s.cfg.AllowBannerDismissal {
		// Dispensa desabilitada: marcadores persistidos são ignorados
		status.Visible = hasPending
		return status
	}

	if until, snoozed := s.snoozedUntil(); snoozed && now.Before(until) {
		status.State = domain.BannerSnoozed
		status.Until = &until
		return status
	}

	if dismissedAt, dismissed := s.dismissedAt(); dismissed {
		if s.cfg.BannerDismissalDurationMs == 0 {
			// Dispensa permanente: só uma nova venda em espera reativa
			status.State = domain.BannerDismissed
			return status
		}

		until := dismissedAt.Add(time.Duration(s.cfg.BannerDismissalDurationMs) * time.Millisecond)
		if now.Before(until) {
			status.State = domain.BannerDismissed
			status.Until = &until
			return status
		}
	}

	status.Visible = hasPending
	return status
}

// Dismiss registra o marcador de dispensa. A transição é rejeitada quando a
// configuração proíbe esconder o banner.
func (s *Service) Dismiss(now time.Time) error {
	if !s.cfg.AllowBannerDismissal {
		return ErrDismissalDisabled
	}

	s.store.Set(dismissalKey(), formatEpochMillis(now))
	s.store.Delete(snoozeKey())

	logrus.WithField("banner", domain.BannerPending).Info("Banner de pendências dispensado")
	return nil
}

// Snooze registra o marcador de soneca até now + janela configurada
func (s *Service) Snooze(now time.Time) error {
	if !s.cfg.AllowBannerDismissal {
		return ErrDismissalDisabled
	}

	until := now.Add(time.Duration(s.cfg.BannerSnoozeDurationMs) * time.Millisecond)
	s.store.Set(snoozeKey(), formatEpochMillis(until))
	s.store.Delete(dismissalKey())

	logrus.WithFields(logrus.Fields{
		"banner": domain.BannerPending,
		"until":  until,
	}).Info("Banner de pendências adiado")
	return nil
}

// AddHold pendura uma venda nova. A escrita do valor inteiro dispara a
// notificação de mudança, que por sua vez limpa os marcadores de supressão.
func (s *Service) AddHold(items []domain.SaleItem, note string, now time.Time) (*domain.HeldSale, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador da venda em espera")
	}

	hold := domain.HeldSale{
		ID:        id,
		Items:     items,
		Note:      note,
		Timestamp: now,
	}

	if err := s.writeHolds(append(s.HeldSales(), hold)); err != nil {
		return nil, err
	}

	return &hold, nil
}

// RemoveHold retira a venda em espera identificada do store
func (s *Service) RemoveHold(id string) error {
	holds := s.HeldSales()

	remaining := make([]domain.HeldSale, 0, len(holds))
	for _, hold := range holds {
		if hold.ID != id {
			remaining = append(remaining, hold)
		}
	}

	if len(remaining) == len(holds) {
		return ErrHoldNotFound
	}

	return s.writeHolds(remaining)
}

// Reevaluate remove marcadores de soneca já expirados. Chamado pelo tick
// periódico; é idempotente e seguro de repetir.
func (s *Service) Reevaluate(now time.Time) {
	if until, snoozed := s.snoozedUntil(); snoozed && !now.Before(until) {
		s.store.Delete(snoozeKey())
	}

	if dismissedAt, dismissed := s.dismissedAt(); dismissed && s.cfg.BannerDismissalDurationMs > 0 {
		until := dismissedAt.Add(time.Duration(s.cfg.BannerDismissalDurationMs) * time.Millisecond)
		if !now.Before(until) {
			s.store.Delete(dismissalKey())
		}
	}
}

// onStoreChange reage a mudanças na lista de vendas em espera. Uma venda
// nova força o banner de volta ao estado visível, limpando os marcadores,
// mesmo no caso de uma dispensa permanente.
func (s *Service) onStoreChange(key string) {
	if key != kvstore.KeyHeldSales {
		return
	}

	holds := s.HeldSales()

	s.mu.Lock()
	hasNew := false
	currentIDs := make(map[string]struct{}, len(holds))
	for _, hold := range holds {
		currentIDs[hold.ID] = struct{}{}
		if _, known := s.knownIDs[hold.ID]; !known {
			hasNew = true
		}
	}
	s.knownIDs = currentIDs
	s.mu.Unlock()

	if hasNew {
		s.store.Delete(dismissalKey())
		s.store.Delete(snoozeKey())
		logrus.Info("Nova venda em espera detectada, banner reativado")
	}
}

func (s *Service) writeHolds(holds []domain.HeldSale) error {
	raw, err := json.Marshal(holds)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar vendas em espera")
	}

	s.store.Set(kvstore.KeyHeldSales, string(raw))
	return nil
}

func (s *Service) dismissedAt() (time.Time, bool) {
	return s.readEpochMillis(dismissalKey())
}

func (s *Service) snoozedUntil() (time.Time, bool) {
	return s.readEpochMillis(snoozeKey())
}

// readEpochMillis lê um marcador temporal persistido como epoch em
// milissegundos; valor malformado equivale a marcador ausente
func (s *Service) readEpochMillis(key string) (time.Time, bool) {
	raw, ok := s.store.Get(key)
	if !ok || raw == "" {
		return time.Time{}, false
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logrus.WithField("key", key).Warn("Marcador de banner malformado, ignorando")
		return time.Time{}, false
	}

	return time.UnixMilli(millis), true
}

func formatEpochMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func dismissalKey() string {
	return kvstore.KeyBannerDismissalPrefix + domain.BannerPending
}

func snoozeKey() string {
	return kvstore.KeyBannerSnoozePrefix + domain.BannerPending
}
