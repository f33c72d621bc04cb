package dashboard

import (
	"context"
	"sort"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/contribution"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"

	"github.com/oklog/ulid/v2"
)

const recentMovesLimit = 10

type Repository interface {
	ListUsers(ctx context.Context) ([]*user.User, error)
	ListContributions(ctx context.Context) ([]*contribution.Contribution, error)
}

type Service struct {
	Repository Repository
}

// GetDashboard carrega o conjunto completo de usuários e contribuições e
// deriva as estatísticas via motor de equity.
func (s *Service) GetDashboard(ctx context.Context, currentUserID ulid.ULID) (*Dashboard, error) {
	users, err := s.Repository.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	contributions, err := s.Repository.ListContributions(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]ulid.ULID, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.Id)
	}

	entries := make([]equity.Entry, 0, len(contributions))
	for _, c := range contributions {
		entries = append(entries, c.ToEntry())
	}

	totals := equity.Aggregate(entries, userIDs)
	velocity := equity.VelocitySeries(entries)

	dash := &Dashboard{
		Stats: UserStats{
			UserSlices:  totals.PerUser[currentUserID].Slices,
			TotalSlices: totals.GlobalTotalSlices,
			UserEquity:  totals.PerUser[currentUserID].EquityPct,
		},
	}

	for _, u := range users {
		userTotals := totals.PerUser[u.Id]

		dash.Team = append(dash.Team, TeamMember{
			UserId:      u.Id.String(),
			Name:        u.Name,
			Email:       u.Email,
			Title:       u.Title,
			TotalSlices: userTotals.Slices,
			Equity:      userTotals.EquityPct,
		})

		// gráficos só mostram quem já contribuiu
		if userTotals.Slices > 0 {
			name := u.Name
			if name == "" {
				name = u.Email
			}
			dash.Pie = append(dash.Pie, PieSlice{Name: name, Value: userTotals.Slices})
			dash.Breakdown = append(dash.Breakdown, BreakdownItem{
				Name:  name,
				Time:  userTotals.TimeSlices,
				Money: userTotals.MoneySlices,
			})
		}
	}

	for _, point := range velocity {
		dash.Velocity = append(dash.Velocity, VelocityItem{
			Date:        point.Date,
			TotalSlices: point.CumulativeSlices,
		})
	}

	dash.RecentMoves = recentActivity(contributions, users)

	return dash, nil
}

func recentActivity(contributions []*contribution.Contribution, users []*user.User) []ActivityItem {
	names := make(map[ulid.ULID]string, len(users))
	for _, u := range users {
		if u.Name != "" {
			names[u.Id] = u.Name
		} else {
			names[u.Id] = u.Email
		}
	}

	sorted := make([]*contribution.Contribution, len(contributions))
	copy(sorted, contributions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	limit := recentMovesLimit
	if len(sorted) < limit {
		limit = len(sorted)
	}

	items := make([]ActivityItem, 0, limit)
	for _, c := range sorted[:limit] {
		items = append(items, ActivityItem{
			UserName:    names[c.UserId],
			Category:    string(c.Category),
			Slices:      c.Slices,
			Description: c.Description,
			Date:        c.Date,
		})
	}
	return items
}

// Project responde à simulação "e se": qual seria a participação do usuário
// se ele adicionasse mais uma contribuição agora.
func (s *Service) Project(ctx context.Context, currentUserID ulid.ULID, amount float64, category equity.Category) (equity.Projection, error) {
	users, err := s.Repository.ListUsers(ctx)
	if err != nil {
		return equity.Projection{}, err
	}

	contributions, err := s.Repository.ListContributions(ctx)
	if err != nil {
		return equity.Projection{}, err
	}

	var hourlyRate float64
	for _, u := range users {
		if u.Id == currentUserID {
			hourlyRate = u.HourlyRate
			break
		}
	}

	var total, userTotal float64
	for _, c := range contributions {
		total += c.Slices
		if c.UserId == currentUserID {
			userTotal += c.Slices
		}
	}

	return equity.Project(total, userTotal, amount, category, hourlyRate)
}
