package user

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type User struct {
	Id                  ulid.ULID `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Password            string    `json:"-"`
	Role                Role      `json:"role"`
	MarketSalaryMonthly float64   `json:"marketSalaryMonthly"`
	HourlyRate          float64   `json:"hourlyRate"`
	Title               string    `json:"title"`
	Avatar              string    `json:"avatar"`
	AvatarOptions       string    `json:"avatarOptions"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleViewer:
		return true
	}
	return false
}

// HourlyRateFromSalary deriva a taxa horária do salário mensal de mercado
// assumindo um ano de trabalho de 2000 horas. Função pura, recalculada sempre
// que o salário muda.
func HourlyRateFromSalary(monthlySalary float64) float64 {
	if monthlySalary <= 0 {
		return 0
	}
	return monthlySalary * 12 / 2000
}
