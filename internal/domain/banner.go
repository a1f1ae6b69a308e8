package domain

import "time"

// BannerState é o estado de visibilidade de um banner de notificação
type BannerState string

const (
	BannerVisible   BannerState = "visible"
	BannerDismissed BannerState = "dismissed"
	BannerSnoozed   BannerState = "snoozed"
)

// BannerPending é a chave do banner de vendas em espera.
// Outras chaves ficam reservadas para banners futuros.
const BannerPending = "pending"

// DismissalState é o registro persistido por banner: um timestamp de
// dispensa (ou marcador permanente) ou um timestamp de soneca.
type DismissalState struct {
	DismissedAt  *time.Time `json:"dismissed_at,omitempty"`
	Permanent    bool       `json:"permanent,omitempty"`
	SnoozedUntil *time.Time `json:"snoozed_until,omitempty"`
}

// BannerStatus é o estado corrente do banner exposto à apresentação
type BannerStatus struct {
	Key     string      `json:"key"`
	State   BannerState `json:"state"`
	Visible bool        `json:"visible"`
	// Until informa quando a supressão expira, quando aplicável
	Until *time.Time `json:"until,omitempty"`
}
