package user

import (
	"context"
	"strings"

	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, user *User) error {
	user.Id = pkg.GenerateULIDObject()

	now := pkg.SetTimestamps()
	user.CreatedAt = now
	user.UpdatedAt = now

	user.Name = strings.TrimSpace(user.Name)
	if user.Role == "" {
		user.Role = RoleViewer
	}
	if !user.Role.IsValid() {
		return appErrors.NewValidationError("role", "papel inválido")
	}

	if user.MarketSalaryMonthly > 0 && user.HourlyRate <= 0 {
		user.HourlyRate = HourlyRateFromSalary(user.MarketSalaryMonthly)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), 12)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}
	user.Password = string(hashedPassword)

	return s.Repository.Create(ctx, user)
}

type UpdateInput struct {
	Name                *string
	Email               *string
	Role                *Role
	MarketSalaryMonthly *float64
	HourlyRate          *float64
	Title               *string
	AvatarOptions       *string
}

func (s *Service) Update(ctx context.Context, userID ulid.ULID, input UpdateInput) (*User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "nome não pode estar vazio")
		}
		user.Name = name
	}
	if input.Email != nil && *input.Email != "" {
		user.Email = *input.Email
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, appErrors.NewValidationError("role", "papel inválido")
		}
		user.Role = *input.Role
	}
	if input.Title != nil {
		user.Title = *input.Title
	}
	if input.AvatarOptions != nil {
		user.AvatarOptions = *input.AvatarOptions
	}

	// Mudança de salário recalcula a taxa horária, a menos que uma taxa
	// explícita acompanhe a requisição.
	if input.MarketSalaryMonthly != nil {
		if *input.MarketSalaryMonthly < 0 {
			return nil, appErrors.NewValidationError("market_salary_monthly", "deve ser maior ou igual a zero")
		}
		user.MarketSalaryMonthly = *input.MarketSalaryMonthly
		user.HourlyRate = HourlyRateFromSalary(*input.MarketSalaryMonthly)
	}
	if input.HourlyRate != nil {
		if *input.HourlyRate < 0 {
			return nil, appErrors.NewValidationError("hourly_rate", "deve ser maior ou igual a zero")
		}
		user.HourlyRate = *input.HourlyRate
	}

	user.UpdatedAt = pkg.SetTimestamps()

	if err := s.Repository.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.Repository.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.Repository.List(ctx)
}

func (s *Service) Exists(ctx context.Context, userID ulid.ULID) error {
	_, err := s.GetByID(ctx, userID)
	return err
}

func (s *Service) UpdatePassword(ctx context.Context, userID ulid.ULID, currentPassword, newPassword, newPasswordConfirm string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}

	if newPassword != newPasswordConfirm {
		return appErrors.NewValidationError("new_password_confirm", "as senhas não conferem")
	}

	if len(newPassword) < 8 {
		return appErrors.NewValidationError("new_password", "deve conter no mínimo 8 caracteres")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}

	user.Password = string(hashedPassword)
	user.UpdatedAt = pkg.SetTimestamps()

	return s.Repository.Update(ctx, user)
}
