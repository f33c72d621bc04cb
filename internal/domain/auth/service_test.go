package auth_test

import (
	"context"
	"testing"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/auth"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
}

func (f *fakeUserRepository) Create(_ context.Context, _ *user.User) error { return nil }
func (f *fakeUserRepository) Update(_ context.Context, _ *user.User) error { return nil }
func (f *fakeUserRepository) Delete(_ context.Context, _ ulid.ULID) error  { return nil }
func (f *fakeUserRepository) GetByID(_ context.Context, _ ulid.ULID) (*user.User, error) {
	return nil, appErrors.ErrUserNotFound
}
func (f *fakeUserRepository) List(_ context.Context) ([]*user.User, error) { return nil, nil }
func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, appErrors.ErrUserNotFound
}

func TestPasswordRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "válida", password: "Passw0rd!", wantErr: false},
		{name: "curta", password: "Ab$1", wantErr: true},
		{name: "sem maiúscula", password: "passw0rd!", wantErr: true},
		{name: "sem caractere especial", password: "Passw0rdX", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := auth.PasswordRequirements(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("PasswordRequirements(%q) erro = %v, esperado erro: %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.MinCost)
	stored := &user.User{
		Id:       ulid.Make(),
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: string(hash),
	}

	repo := &fakeUserRepository{
		getByEmailFn: func(_ context.Context, email string) (*user.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, appErrors.ErrUserNotFound
		},
	}
	svc := auth.NewService(repo, user.NewService(repo), "")

	t.Run("sucesso", func(t *testing.T) {
		entity, err := svc.Login(context.Background(), auth.Login{Email: "alice@example.com", Password: "Passw0rd!"})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if entity.Id != stored.Id {
			t.Errorf("usuário errado retornado: %v", entity.Id)
		}
	})

	t.Run("senha errada", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.Login{Email: "alice@example.com", Password: "wrong"})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "INVALID_CREDENTIALS" {
			t.Fatalf("esperado INVALID_CREDENTIALS, veio %v", err)
		}
	})

	// email inexistente responde o mesmo código da senha errada
	t.Run("email desconhecido", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.Login{Email: "ghost@example.com", Password: "Passw0rd!"})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "INVALID_CREDENTIALS" {
			t.Fatalf("esperado INVALID_CREDENTIALS, veio %v", err)
		}
	})
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepository{
		getByEmailFn: func(_ context.Context, _ string) (*user.User, error) {
			return &user.User{Id: ulid.Make()}, nil
		},
	}
	svc := auth.NewService(repo, user.NewService(repo), "")

	err := svc.Register(context.Background(), &user.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "EMAIL_ALREADY_EXISTS" {
		t.Fatalf("esperado EMAIL_ALREADY_EXISTS, veio %v", err)
	}
}
