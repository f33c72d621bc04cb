package contracts

type UserCreateRequest struct {
	Name                string  `json:"name" binding:"required"`
	Email               string  `json:"email" binding:"required,email"`
	Password            string  `json:"password" binding:"required,min=8"`
	Role                string  `json:"role" binding:"omitempty,oneof=admin viewer"`
	MarketSalaryMonthly float64 `json:"marketSalaryMonthly" binding:"omitempty,gte=0"`
	Title               string  `json:"title" binding:"omitempty"`
}

type UserUpdateRequest struct {
	Name                *string  `json:"name" binding:"omitempty"`
	Email               *string  `json:"email" binding:"omitempty,email"`
	Role                *string  `json:"role" binding:"omitempty,oneof=admin viewer"`
	MarketSalaryMonthly *float64 `json:"marketSalaryMonthly" binding:"omitempty,gte=0"`
	HourlyRate          *float64 `json:"hourlyRate" binding:"omitempty,gte=0"`
	Title               *string  `json:"title" binding:"omitempty"`
	AvatarOptions       *string  `json:"avatarOptions" binding:"omitempty"`
}

type UserDeletionResponse struct {
	Message string `json:"message"`
}
