package contribution

import (
	"context"
	"strings"
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository  Repository
	UserService *user.Service
}

type CreateInput struct {
	UserId      ulid.ULID
	Category    equity.Category
	Amount      float64
	Description string
	Date        time.Time
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Contribution, error) {
	if !input.Category.IsValid() {
		return nil, appErrors.NewValidationError("category", "deve ser 'time' ou 'money'")
	}

	owner, err := s.UserService.GetByID(ctx, input.UserId)
	if err != nil {
		return nil, err
	}

	pricing, err := equity.Price(input.Category, input.Amount, owner.HourlyRate)
	if err != nil {
		return nil, err
	}

	now := pkg.SetTimestamps()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	entity := &Contribution{
		Id:              pkg.GenerateULIDObject(),
		UserId:          input.UserId,
		Category:        input.Category,
		Amount:          input.Amount,
		FairMarketValue: pricing.FairMarketValue,
		Multiplier:      pricing.Multiplier,
		Slices:          pricing.Slices,
		Description:     strings.TrimSpace(input.Description),
		Date:            date,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// CreateImported persiste uma linha já precificada pela reconciliação de CSV.
// A importação arredonda horas e fatias para 2 casas antes de chegar aqui, e
// esses valores são gravados como estão.
func (s *Service) CreateImported(ctx context.Context, entity *Contribution) error {
	if err := s.UserService.Exists(ctx, entity.UserId); err != nil {
		return err
	}

	now := pkg.SetTimestamps()
	entity.Id = pkg.GenerateULIDObject()
	entity.CreatedAt = now
	entity.UpdatedAt = now
	if entity.Date.IsZero() {
		entity.Date = now
	}

	return s.Repository.Create(ctx, entity)
}

type UpdateInput struct {
	UserId      *ulid.ULID
	Category    *equity.Category
	Amount      *float64
	Description *string
	Date        *time.Time
}

// Update recalcula os campos derivados a partir do amount/categoria/usuário
// possivelmente alterados. A contribuição é editável como um todo, mas os
// campos derivados nunca são definidos diretamente.
func (s *Service) Update(ctx context.Context, id ulid.ULID, input UpdateInput) (*Contribution, error) {
	stored, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.UserId != nil {
		stored.UserId = *input.UserId
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, appErrors.NewValidationError("category", "deve ser 'time' ou 'money'")
		}
		stored.Category = *input.Category
	}
	if input.Amount != nil {
		stored.Amount = *input.Amount
	}
	if input.Description != nil {
		stored.Description = strings.TrimSpace(*input.Description)
	}
	if input.Date != nil && !input.Date.IsZero() {
		stored.Date = *input.Date
	}

	owner, err := s.UserService.GetByID(ctx, stored.UserId)
	if err != nil {
		return nil, err
	}

	pricing, err := equity.Price(stored.Category, stored.Amount, owner.HourlyRate)
	if err != nil {
		return nil, err
	}

	stored.FairMarketValue = pricing.FairMarketValue
	stored.Multiplier = pricing.Multiplier
	stored.Slices = pricing.Slices
	stored.UpdatedAt = pkg.SetTimestamps()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

func (s *Service) DeleteMany(ctx context.Context, ids []ulid.ULID) (int64, error) {
	if len(ids) == 0 {
		return 0, appErrors.NewValidationError("ids", "é obrigatório")
	}
	return s.Repository.DeleteMany(ctx, ids)
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*Contribution, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context, filters *Filters, pagination *pkg.PaginationParams) ([]*Contribution, int64, error) {
	return s.Repository.GetAll(ctx, filters, pagination)
}

func (s *Service) ListAll(ctx context.Context, filters *Filters) ([]*Contribution, error) {
	return s.Repository.ListAll(ctx, filters)
}
