package equity

import (
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
)

// Entry é a projeção mínima de uma contribuição já precificada, suficiente
// para agregação e para a série de velocidade.
type Entry struct {
	UserID     ulid.ULID
	Multiplier int
	Slices     float64
	Date       time.Time
	CreatedAt  time.Time
}

type UserTotals struct {
	Slices      float64
	EquityPct   float64
	TimeSlices  float64
	MoneySlices float64
}

type Totals struct {
	PerUser           map[ulid.ULID]UserTotals
	GlobalTotalSlices float64
}

// Aggregate reduz a lista completa de contribuições em totais por usuário e
// no total global de fatias. Todo usuário conhecido aparece no resultado,
// mesmo com zero contribuições. A redução é independente de ordem.
//
// A divisão time/money usa o multiplicador (2 vs 4) como discriminante, não a
// categoria. É o multiplicador que alimenta os gráficos.
func Aggregate(entries []Entry, userIDs []ulid.ULID) Totals {
	perUser := make(map[ulid.ULID]UserTotals, len(userIDs))
	for _, id := range userIDs {
		perUser[id] = UserTotals{}
	}

	var global float64
	for _, e := range entries {
		totals := perUser[e.UserID]
		totals.Slices += e.Slices
		if e.Multiplier == MultiplierMoney {
			totals.MoneySlices += e.Slices
		} else {
			totals.TimeSlices += e.Slices
		}
		perUser[e.UserID] = totals
		global += e.Slices
	}

	for id, totals := range perUser {
		if global > 0 {
			totals.EquityPct = totals.Slices / global * 100
		}
		perUser[id] = totals
	}

	return Totals{
		PerUser:           perUser,
		GlobalTotalSlices: global,
	}
}

type VelocityPoint struct {
	Date             time.Time
	CumulativeSlices float64
}

// VelocitySeries produz a soma acumulada de fatias por dia de calendário, em
// ordem crescente de data efetiva. Contribuições no mesmo dia atualizam o
// ponto existente em vez de criar um novo. A série é recomputada do zero a
// cada chamada; entrada vazia produz série vazia.
func VelocitySeries(entries []Entry) []VelocityPoint {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	points := make([]VelocityPoint, 0, len(sorted))
	var running float64
	for _, e := range sorted {
		running += e.Slices
		bucket := e.Date.UTC().Truncate(24 * time.Hour)

		if len(points) > 0 && points[len(points)-1].Date.Equal(bucket) {
			points[len(points)-1].CumulativeSlices = running
			continue
		}
		points = append(points, VelocityPoint{Date: bucket, CumulativeSlices: running})
	}

	return points
}
