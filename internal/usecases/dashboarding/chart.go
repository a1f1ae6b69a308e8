package dashboarding

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
	monthLabel     = "Jan 2006"
)

// BuildChartBuckets agrupa as vendas nos buckets do gráfico conforme a
// granularidade do período. Na granularidade por hora as 24 horas do dia
// são pré-semeadas com zeros; dias e meses só existem quando há venda.
// A saída sai ordenada cronologicamente pela chave.
func BuildChartBuckets(sales []*domain.Sale, grain domain.BucketGrain) []domain.ChartBucket {
	buckets := make(map[string]*domain.ChartBucket)

	if grain == domain.GrainHour {
		for hour := 0; hour < 24; hour++ {
			key := fmt.Sprintf("%02d", hour)
			buckets[key] = &domain.ChartBucket{Key: key, Label: hourLabel(hour)}
		}
	}

	for _, sale := range sales {
		key, label := bucketKey(sale.Timestamp, grain)

		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.ChartBucket{Key: key, Label: label}
			buckets[key] = bucket
		}

		bucket.Revenue += sale.Total
		bucket.Orders++
	}

	out := make([]domain.ChartBucket, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Revenue = utils.RoundWithTwoDecimalPlace(bucket.Revenue)
		out = append(out, *bucket)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// bucketKey devolve a chave ordenável e o rótulo de exibição do bucket
func bucketKey(t time.Time, grain domain.BucketGrain) (string, string) {
	switch grain {
	case domain.GrainHour:
		return fmt.Sprintf("%02d", t.Hour()), hourLabel(t.Hour())
	case domain.GrainMonth:
		return t.Format(monthKeyLayout), t.Format(monthLabel)
	default:
		return t.Format(dayKeyLayout), t.Format(dayKeyLayout)
	}
}

func hourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
