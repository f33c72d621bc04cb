package contribution_test

import (
	"context"
	"testing"
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/contribution"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeContributionRepository struct {
	createFn     func(ctx context.Context, c *contribution.Contribution) error
	updateFn     func(ctx context.Context, c *contribution.Contribution) error
	deleteFn     func(ctx context.Context, id ulid.ULID) error
	deleteManyFn func(ctx context.Context, ids []ulid.ULID) (int64, error)
	getByIDFn    func(ctx context.Context, id ulid.ULID) (*contribution.Contribution, error)
}

func (f *fakeContributionRepository) Create(ctx context.Context, c *contribution.Contribution) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeContributionRepository) Update(ctx context.Context, c *contribution.Contribution) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, c)
	}
	return nil
}

func (f *fakeContributionRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeContributionRepository) DeleteMany(ctx context.Context, ids []ulid.ULID) (int64, error) {
	if f.deleteManyFn != nil {
		return f.deleteManyFn(ctx, ids)
	}
	return int64(len(ids)), nil
}

func (f *fakeContributionRepository) GetByID(ctx context.Context, id ulid.ULID) (*contribution.Contribution, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrContributionNotFound
}

func (f *fakeContributionRepository) GetAll(ctx context.Context, filters *contribution.Filters, pagination *pkg.PaginationParams) ([]*contribution.Contribution, int64, error) {
	return nil, 0, nil
}

func (f *fakeContributionRepository) ListAll(ctx context.Context, filters *contribution.Filters) ([]*contribution.Contribution, error) {
	return nil, nil
}

type fakeUserRepository struct {
	getByIDFn func(ctx context.Context, id ulid.ULID) (*user.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, _ *user.User) error { return nil }
func (f *fakeUserRepository) Update(ctx context.Context, _ *user.User) error { return nil }
func (f *fakeUserRepository) Delete(ctx context.Context, _ ulid.ULID) error  { return nil }
func (f *fakeUserRepository) GetByEmail(ctx context.Context, _ string) (*user.User, error) {
	return nil, appErrors.ErrUserNotFound
}
func (f *fakeUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }
func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &user.User{Id: id, HourlyRate: 10}, nil
}

func newService(repo *fakeContributionRepository, userRepo *fakeUserRepository) contribution.Service {
	return contribution.Service{
		Repository:  repo,
		UserService: user.NewService(userRepo),
	}
}

func TestServiceCreatePricesDerivedFields(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	var created *contribution.Contribution
	repo := &fakeContributionRepository{
		createFn: func(ctx context.Context, c *contribution.Contribution) error {
			created = c
			return nil
		},
	}
	svc := newService(repo, &fakeUserRepository{})

	entity, err := svc.Create(ctx, contribution.CreateInput{
		UserId:      userID,
		Category:    equity.CategoryTime,
		Amount:      5,
		Description: "sprint review",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatalf("expected repository create to be called")
	}
	if entity.FairMarketValue != 50 || entity.Multiplier != 2 || entity.Slices != 100 {
		t.Fatalf("unexpected pricing: %+v", entity)
	}
	if pkg.IsEmptyULID(entity.Id) {
		t.Fatalf("expected generated id")
	}
	if entity.Date.IsZero() {
		t.Fatalf("expected date defaulted to now")
	}
}

func TestServiceCreateValidations(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	tests := []struct {
		name        string
		category    equity.Category
		amount      float64
		hourlyRate  float64
		wantErrCode string
	}{
		{
			name:        "time without hourly rate is a hard precondition",
			category:    equity.CategoryTime,
			amount:      5,
			hourlyRate:  0,
			wantErrCode: appErrors.ErrInvalidRate.Code,
		},
		{
			name:        "negative amount rejected",
			category:    equity.CategoryMoney,
			amount:      -10,
			hourlyRate:  10,
			wantErrCode: appErrors.ErrInvalidAmount.Code,
		},
		{
			name:        "unknown category rejected",
			category:    equity.Category("stock"),
			amount:      10,
			hourlyRate:  10,
			wantErrCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&fakeContributionRepository{}, &fakeUserRepository{
				getByIDFn: func(ctx context.Context, id ulid.ULID) (*user.User, error) {
					return &user.User{Id: id, HourlyRate: tt.hourlyRate}, nil
				},
			})

			_, err := svc.Create(ctx, contribution.CreateInput{
				UserId:   userID,
				Category: tt.category,
				Amount:   tt.amount,
			})
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantErrCode {
				t.Fatalf("expected code %s, got %s", tt.wantErrCode, appErr.Code)
			}
		})
	}
}

func TestServiceCreateUnknownUser(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeContributionRepository{}, &fakeUserRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*user.User, error) {
			return nil, appErrors.ErrUserNotFound
		},
	})

	_, err := svc.Create(context.Background(), contribution.CreateInput{
		UserId:   ulid.Make(),
		Category: equity.CategoryMoney,
		Amount:   100,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrUserNotFound.Code {
		t.Fatalf("expected USER_NOT_FOUND, got %v", err)
	}
}

func TestServiceUpdateReprices(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	contributionID := ulid.Make()
	ctx := context.Background()

	stored := &contribution.Contribution{
		Id:              contributionID,
		UserId:          userID,
		Category:        equity.CategoryTime,
		Amount:          5,
		FairMarketValue: 50,
		Multiplier:      2,
		Slices:          100,
		Date:            time.Now(),
	}

	var updated *contribution.Contribution
	repo := &fakeContributionRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*contribution.Contribution, error) {
			copy := *stored
			return &copy, nil
		},
		updateFn: func(ctx context.Context, c *contribution.Contribution) error {
			updated = c
			return nil
		},
	}
	svc := newService(repo, &fakeUserRepository{})

	// mudar para money deve reprecificar com multiplicador 4
	newCategory := equity.CategoryMoney
	newAmount := 200.0
	entity, err := svc.Update(ctx, contributionID, contribution.UpdateInput{
		Category: &newCategory,
		Amount:   &newAmount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatalf("expected repository update to be called")
	}
	if entity.FairMarketValue != 200 || entity.Multiplier != 4 || entity.Slices != 800 {
		t.Fatalf("expected repricing to 200/4/800, got %+v", entity)
	}
}

func TestServiceDeleteManyRequiresIds(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeContributionRepository{}, &fakeUserRepository{})

	_, err := svc.DeleteMany(context.Background(), nil)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error, got %v", err)
	}

	count, err := svc.DeleteMany(context.Background(), []ulid.ULID{ulid.Make(), ulid.Make()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 deletions, got %d", count)
	}
}
