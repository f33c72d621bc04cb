package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/contribution"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/report"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeContributionRepository struct {
	items []*contribution.Contribution
}

func (f *fakeContributionRepository) Create(_ context.Context, _ *contribution.Contribution) error {
	return nil
}
func (f *fakeContributionRepository) Update(_ context.Context, _ *contribution.Contribution) error {
	return nil
}
func (f *fakeContributionRepository) Delete(_ context.Context, _ ulid.ULID) error { return nil }
func (f *fakeContributionRepository) DeleteMany(_ context.Context, ids []ulid.ULID) (int64, error) {
	return int64(len(ids)), nil
}
func (f *fakeContributionRepository) GetByID(_ context.Context, _ ulid.ULID) (*contribution.Contribution, error) {
	return nil, appErrors.ErrContributionNotFound
}
func (f *fakeContributionRepository) GetAll(_ context.Context, _ *contribution.Filters, _ *pkg.PaginationParams) ([]*contribution.Contribution, int64, error) {
	return f.items, int64(len(f.items)), nil
}
func (f *fakeContributionRepository) ListAll(_ context.Context, _ *contribution.Filters) ([]*contribution.Contribution, error) {
	return f.items, nil
}

type fakeUserRepository struct {
	users []*user.User
}

func (f *fakeUserRepository) Create(_ context.Context, _ *user.User) error { return nil }
func (f *fakeUserRepository) Update(_ context.Context, _ *user.User) error { return nil }
func (f *fakeUserRepository) Delete(_ context.Context, _ ulid.ULID) error  { return nil }
func (f *fakeUserRepository) GetByID(_ context.Context, _ ulid.ULID) (*user.User, error) {
	return nil, appErrors.ErrUserNotFound
}
func (f *fakeUserRepository) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, appErrors.ErrUserNotFound
}
func (f *fakeUserRepository) List(_ context.Context) ([]*user.User, error) { return f.users, nil }

func TestLedger(t *testing.T) {
	t.Parallel()

	alice := &user.User{Id: ulid.Make(), Name: "Alice"}
	bob := &user.User{Id: ulid.Make(), Email: "bob@example.com"}

	now := time.Now()
	items := []*contribution.Contribution{
		{
			Id: ulid.Make(), UserId: alice.Id, Category: equity.CategoryTime,
			Amount: 5, FairMarketValue: 300, Multiplier: equity.MultiplierTime, Slices: 600, Date: now,
		},
		{
			Id: ulid.Make(), UserId: alice.Id, Category: equity.CategoryTime,
			Amount: 2, FairMarketValue: 120, Multiplier: equity.MultiplierTime, Slices: 240, Date: now,
		},
		{
			Id: ulid.Make(), UserId: bob.Id, Category: equity.CategoryMoney,
			Amount: 100, FairMarketValue: 100, Multiplier: equity.MultiplierMoney, Slices: 400, Date: now,
		},
	}

	svc := &report.Service{
		Contributions: &fakeContributionRepository{items: items},
		Users:         &fakeUserRepository{users: []*user.User{alice, bob}},
	}

	rep, err := svc.Ledger(context.Background(), nil)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if rep.Summary.TotalSlices != 1240 {
		t.Errorf("total de fatias esperado 1240, veio %v", rep.Summary.TotalSlices)
	}
	if rep.Summary.TotalFMV != 520 {
		t.Errorf("FMV total esperado 520, veio %v", rep.Summary.TotalFMV)
	}
	if rep.Summary.TotalHours != 7 {
		t.Errorf("horas totais esperadas 7, vieram %v", rep.Summary.TotalHours)
	}
	if rep.Summary.TotalCash != 100 {
		t.Errorf("dinheiro total esperado 100, veio %v", rep.Summary.TotalCash)
	}
	if rep.Summary.Count != 3 {
		t.Errorf("contagem esperada 3, veio %d", rep.Summary.Count)
	}

	if len(rep.PerUser) != 2 {
		t.Fatalf("esperados 2 subtotais, vieram %d", len(rep.PerUser))
	}
	// ordenado por fatias em ordem decrescente
	if rep.PerUser[0].Name != "Alice" || rep.PerUser[0].Slices != 840 || rep.PerUser[0].Count != 2 {
		t.Errorf("primeiro subtotal inesperado: %+v", rep.PerUser[0])
	}
	// nome ausente cai para o email
	if rep.PerUser[1].Name != "bob@example.com" || rep.PerUser[1].Slices != 400 {
		t.Errorf("segundo subtotal inesperado: %+v", rep.PerUser[1])
	}
}

func TestLedgerEmpty(t *testing.T) {
	t.Parallel()

	svc := &report.Service{
		Contributions: &fakeContributionRepository{},
		Users:         &fakeUserRepository{},
	}

	rep, err := svc.Ledger(context.Background(), nil)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if rep.Summary.Count != 0 || rep.Summary.TotalSlices != 0 {
		t.Errorf("relatório vazio deveria zerar o sumário: %+v", rep.Summary)
	}
	if len(rep.PerUser) != 0 {
		t.Errorf("esperado nenhum subtotal, vieram %d", len(rep.PerUser))
	}
}
