package report

import (
	"context"
	"sort"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/contribution"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Contributions contribution.Repository
	Users         user.Repository
}

// Ledger computa os totais do recorte filtrado do livro: fatias, FMV, horas
// (linhas time) e dinheiro (linhas money), mais subtotais por usuário em
// ordem decrescente de fatias.
func (s *Service) Ledger(ctx context.Context, filters *contribution.Filters) (*LedgerReport, error) {
	contributions, err := s.Contributions.ListAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[ulid.ULID]string, len(users))
	for _, u := range users {
		if u.Name != "" {
			names[u.Id] = u.Name
		} else {
			names[u.Id] = u.Email
		}
	}

	rep := &LedgerReport{}
	subtotals := make(map[ulid.ULID]*UserSubtotal)

	for _, c := range contributions {
		rep.Summary.TotalSlices += c.Slices
		rep.Summary.TotalFMV += c.FairMarketValue
		rep.Summary.Count++

		if c.Category == equity.CategoryTime {
			rep.Summary.TotalHours += c.Amount
		} else {
			rep.Summary.TotalCash += c.Amount
		}

		sub, ok := subtotals[c.UserId]
		if !ok {
			sub = &UserSubtotal{UserId: c.UserId.String(), Name: names[c.UserId]}
			subtotals[c.UserId] = sub
		}
		sub.Slices += c.Slices
		sub.Count++
	}

	rep.PerUser = make([]UserSubtotal, 0, len(subtotals))
	for _, sub := range subtotals {
		rep.PerUser = append(rep.PerUser, *sub)
	}
	sort.Slice(rep.PerUser, func(i, j int) bool {
		if rep.PerUser[i].Slices == rep.PerUser[j].Slices {
			return rep.PerUser[i].UserId < rep.PerUser[j].UserId
		}
		return rep.PerUser[i].Slices > rep.PerUser[j].Slices
	})

	return rep, nil
}
