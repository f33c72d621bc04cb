package contracts

import "time"

type ContributionCreateRequest struct {
	UserId      string     `json:"userId" binding:"required"`
	Category    string     `json:"category" binding:"required,oneof=time money"`
	Amount      float64    `json:"amount" binding:"omitempty,gte=0"`
	Description string     `json:"description" binding:"omitempty,max=500"`
	Date        *time.Time `json:"date" binding:"omitempty"`
}

type ContributionUpdateRequest struct {
	UserId      *string    `json:"userId" binding:"omitempty"`
	Category    *string    `json:"category" binding:"omitempty,oneof=time money"`
	Amount      *float64   `json:"amount" binding:"omitempty,gte=0"`
	Description *string    `json:"description" binding:"omitempty,max=500"`
	Date        *time.Time `json:"date" binding:"omitempty"`
}

type ContributionBulkDeleteRequest struct {
	Ids []string `json:"ids" binding:"required,min=1"`
}

type ContributionBulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type ProjectionRequest struct {
	Amount   float64 `json:"amount" binding:"omitempty,gte=0"`
	Category string  `json:"category" binding:"required,oneof=time money"`
}
