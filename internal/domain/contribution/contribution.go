package contribution

import (
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"

	"github.com/oklog/ulid/v2"
)

// Contribution é uma unidade de valor entregue por um usuário em uma data.
// Os campos derivados (FairMarketValue, Multiplier, Slices) são escritos
// exclusivamente a partir de equity.Price, nunca calculados inline.
type Contribution struct {
	Id              ulid.ULID       `json:"id"`
	UserId          ulid.ULID       `json:"userId"`
	UserName        string          `json:"userName,omitempty"`
	Category        equity.Category `json:"category"`
	Amount          float64         `json:"amount"`
	FairMarketValue float64         `json:"fairMarketValue"`
	Multiplier      int             `json:"multiplier"`
	Slices          float64         `json:"slices"`
	Description     string          `json:"description"`
	Date            time.Time       `json:"date"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (c *Contribution) ToEntry() equity.Entry {
	return equity.Entry{
		UserID:     c.UserId,
		Multiplier: c.Multiplier,
		Slices:     c.Slices,
		Date:       c.Date,
		CreatedAt:  c.CreatedAt,
	}
}

type Filters struct {
	UserID   *ulid.ULID
	Category *equity.Category
	Search   *string
	DateFrom *time.Time
	DateTo   *time.Time
}
