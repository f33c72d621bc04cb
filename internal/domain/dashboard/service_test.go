package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/contribution"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/dashboard"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"

	"github.com/oklog/ulid/v2"
)

type fakeRepository struct {
	users         []*user.User
	contributions []*contribution.Contribution
}

func (f *fakeRepository) ListUsers(_ context.Context) ([]*user.User, error) {
	return f.users, nil
}

func (f *fakeRepository) ListContributions(_ context.Context) ([]*contribution.Contribution, error) {
	return f.contributions, nil
}

func TestGetDashboard(t *testing.T) {
	t.Parallel()

	alice := &user.User{Id: ulid.Make(), Name: "Alice", Email: "alice@example.com", HourlyRate: 60}
	bob := &user.User{Id: ulid.Make(), Name: "Bob", Email: "bob@example.com"}
	carol := &user.User{Id: ulid.Make(), Email: "carol@example.com"}

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	contributions := []*contribution.Contribution{
		{
			Id: ulid.Make(), UserId: alice.Id, Category: equity.CategoryTime,
			Amount: 5, FairMarketValue: 300, Multiplier: equity.MultiplierTime, Slices: 600,
			Date: base, CreatedAt: base,
		},
		{
			Id: ulid.Make(), UserId: bob.Id, Category: equity.CategoryMoney,
			Amount: 50, FairMarketValue: 50, Multiplier: equity.MultiplierMoney, Slices: 200,
			Date: base.Add(24 * time.Hour), CreatedAt: base.Add(24 * time.Hour),
		},
	}

	svc := &dashboard.Service{Repository: &fakeRepository{
		users:         []*user.User{alice, bob, carol},
		contributions: contributions,
	}}

	dash, err := svc.GetDashboard(context.Background(), alice.Id)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if dash.Stats.TotalSlices != 800 {
		t.Errorf("total de fatias esperado 800, veio %v", dash.Stats.TotalSlices)
	}
	if dash.Stats.UserSlices != 600 {
		t.Errorf("fatias do usuário esperadas 600, veio %v", dash.Stats.UserSlices)
	}
	if dash.Stats.UserEquity != 75 {
		t.Errorf("equity esperado 75, veio %v", dash.Stats.UserEquity)
	}

	// todos os usuários aparecem no grid, mesmo sem contribuições
	if len(dash.Team) != 3 {
		t.Fatalf("esperados 3 membros no grid, vieram %d", len(dash.Team))
	}

	// mas os gráficos só mostram quem tem fatias
	if len(dash.Pie) != 2 {
		t.Errorf("esperadas 2 fatias no gráfico, vieram %d", len(dash.Pie))
	}
	if len(dash.Breakdown) != 2 {
		t.Errorf("esperados 2 itens no breakdown, vieram %d", len(dash.Breakdown))
	}

	for _, item := range dash.Breakdown {
		switch item.Name {
		case "Alice":
			if item.Time != 600 || item.Money != 0 {
				t.Errorf("breakdown de Alice esperado time=600 money=0, veio time=%v money=%v", item.Time, item.Money)
			}
		case "Bob":
			if item.Time != 0 || item.Money != 200 {
				t.Errorf("breakdown de Bob esperado time=0 money=200, veio time=%v money=%v", item.Time, item.Money)
			}
		}
	}

	if len(dash.Velocity) != 2 {
		t.Fatalf("esperados 2 pontos de velocidade, vieram %d", len(dash.Velocity))
	}
	if dash.Velocity[0].TotalSlices != 600 || dash.Velocity[1].TotalSlices != 800 {
		t.Errorf("soma acumulada esperada [600 800], veio [%v %v]",
			dash.Velocity[0].TotalSlices, dash.Velocity[1].TotalSlices)
	}

	if len(dash.RecentMoves) != 2 {
		t.Fatalf("esperadas 2 atividades recentes, vieram %d", len(dash.RecentMoves))
	}
	// mais recente primeiro
	if dash.RecentMoves[0].UserName != "Bob" {
		t.Errorf("atividade mais recente esperada de Bob, veio %q", dash.RecentMoves[0].UserName)
	}
}

func TestGetDashboardEmpty(t *testing.T) {
	t.Parallel()

	alice := &user.User{Id: ulid.Make(), Name: "Alice"}
	svc := &dashboard.Service{Repository: &fakeRepository{users: []*user.User{alice}}}

	dash, err := svc.GetDashboard(context.Background(), alice.Id)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if dash.Stats.TotalSlices != 0 || dash.Stats.UserEquity != 0 {
		t.Errorf("dashboard vazio deveria zerar estatísticas: %+v", dash.Stats)
	}
	if len(dash.Team) != 1 {
		t.Errorf("esperado 1 membro no grid, vieram %d", len(dash.Team))
	}
	if len(dash.Pie) != 0 || len(dash.Velocity) != 0 || len(dash.RecentMoves) != 0 {
		t.Error("coleções deveriam estar vazias sem contribuições")
	}
}

func TestProject(t *testing.T) {
	t.Parallel()

	alice := &user.User{Id: ulid.Make(), Name: "Alice", HourlyRate: 10}
	contributions := []*contribution.Contribution{
		{Id: ulid.Make(), UserId: alice.Id, Multiplier: equity.MultiplierTime, Slices: 100},
	}

	svc := &dashboard.Service{Repository: &fakeRepository{
		users:         []*user.User{alice},
		contributions: contributions,
	}}

	// 5h x 10/h x 2 = 100 fatias novas: 200 de 200 no total
	projection, err := svc.Project(context.Background(), alice.Id, 5, equity.CategoryTime)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if projection.NewTotalSlices != 200 {
		t.Errorf("novo total esperado 200, veio %v", projection.NewTotalSlices)
	}
	if projection.NewEquityPct != 100 {
		t.Errorf("novo equity esperado 100, veio %v", projection.NewEquityPct)
	}
}
