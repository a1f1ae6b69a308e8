package domain

import "time"

// PeriodMode é o seletor de intervalo de tempo escolhido pelo usuário
type PeriodMode string

const (
	PeriodToday     PeriodMode = "today"
	PeriodThisMonth PeriodMode = "this_month"
	PeriodCustom    PeriodMode = "custom"
	PeriodAllTime   PeriodMode = "all_time"
)

// BucketGrain é a granularidade dos buckets do gráfico para o período
type BucketGrain string

const (
	GrainHour  BucketGrain = "hour"
	GrainDay   BucketGrain = "day"
	GrainMonth BucketGrain = "month"
)

// Interval é um intervalo fechado [Start, End]. Um intervalo com All=true
// aceita qualquer timestamp (modo AllTime); um intervalo com End anterior a
// Start é vazio e não aceita nenhum: não é erro, só produz agregados zerados.
type Interval struct {
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
	All   bool      `json:"all,omitempty"`
}

// Empty indica se o intervalo não aceita nenhum timestamp
func (i Interval) Empty() bool {
	if i.All {
		return false
	}
	return i.Start.IsZero() && i.End.IsZero() || i.End.Before(i.Start)
}

// Contains verifica se o timestamp pertence ao intervalo.
// Timestamps zerados (registro com data malformada) nunca pertencem.
func (i Interval) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	if i.All {
		return true
	}
	if i.Empty() {
		return false
	}
	return !t.Before(i.Start) && !t.After(i.End)
}

// Period é o resultado da resolução de um PeriodMode: o intervalo corrente,
// o intervalo de comparação imediatamente anterior e a granularidade do gráfico.
type Period struct {
	Mode     PeriodMode  `json:"mode"`
	Current  Interval    `json:"current"`
	Previous Interval    `json:"previous"`
	Grain    BucketGrain `json:"grain"`
}

// ResolvePeriod converte o seletor de período em intervalos concretos.
//
// Regras por modo:
//   - Today: corrente = [meia-noite de hoje, agora]; anterior = ontem inteiro; grão = hora
//   - ThisMonth: corrente = [dia 1, agora]; anterior = mês anterior inteiro; grão = dia
//   - Custom: corrente = [start 00:00:00.000, end 23:59:59.999]; anterior = janela
//     de mesmo tamanho imediatamente antes do início; grão = dia
//   - AllTime: corrente irrestrito; anterior vazio (nenhuma comparação); grão = mês
func ResolvePeriod(mode PeriodMode, customStart, customEnd time.Time, now time.Time) Period {
	switch mode {
	case PeriodThisMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		prevMonthStart := monthStart.AddDate(0, -1, 0)

		return Period{
			Mode:     mode,
			Current:  Interval{Start: monthStart, End: now},
			Previous: Interval{Start: prevMonthStart, End: monthStart.Add(-time.Millisecond)},
			Grain:    GrainDay,
		}

	case PeriodCustom:
		current := Interval{
			Start: time.Date(customStart.Year(), customStart.Month(), customStart.Day(), 0, 0, 0, 0, customStart.Location()),
			End:   time.Date(customEnd.Year(), customEnd.Month(), customEnd.Day(), 23, 59, 59, int(999*time.Millisecond), customEnd.Location()),
		}

		// Intervalo vazio (end < start) não produz comparação
		if current.Empty() {
			return Period{Mode: mode, Current: current, Grain: GrainDay}
		}

		length := current.End.Sub(current.Start)
		prevEnd := current.Start.Add(-time.Millisecond)

		return Period{
			Mode:     mode,
			Current:  current,
			Previous: Interval{Start: prevEnd.Add(-length), End: prevEnd},
			Grain:    GrainDay,
		}

	case PeriodAllTime:
		return Period{
			Mode:    mode,
			Current: Interval{All: true},
			Grain:   GrainMonth,
		}

	default: // Today
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		return Period{
			Mode:     PeriodToday,
			Current:  Interval{Start: dayStart, End: now},
			Previous: Interval{Start: dayStart.AddDate(0, 0, -1), End: dayStart.Add(-time.Millisecond)},
			Grain:    GrainHour,
		}
	}
}

// ParsePeriodMode valida o parâmetro de modo vindo da API.
// Valores desconhecidos caem no modo Today.
func ParsePeriodMode(raw string) PeriodMode {
	switch PeriodMode(raw) {
	case PeriodThisMonth, PeriodCustom, PeriodAllTime:
		return PeriodMode(raw)
	default:
		return PeriodToday
	}
}
