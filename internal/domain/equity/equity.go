package equity

import (
	"math"

	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
)

// Category define a natureza de uma contribuição. O multiplicador de cada
// categoria é fixo pela política do modelo Slicing Pie: dinheiro vale o dobro
// do prêmio de risco do trabalho.
type Category string

const (
	CategoryTime  Category = "time"
	CategoryMoney Category = "money"

	MultiplierTime  = 2
	MultiplierMoney = 4
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryTime, CategoryMoney:
		return true
	}
	return false
}

// Multiplier é totalmente determinado pela categoria e nunca é configurável
// de forma independente.
func (c Category) Multiplier() int {
	if c == CategoryTime {
		return MultiplierTime
	}
	return MultiplierMoney
}

type Pricing struct {
	FairMarketValue float64
	Multiplier      int
	Slices          float64
}

// Price converte uma entrada bruta (horas ou dinheiro) em fatias de equity.
// Função pura, sem arredondamento: consumidores arredondam apenas para
// exibição, exceto a importação de CSV que normaliza para 2 casas decimais.
func Price(category Category, amount, hourlyRate float64) (Pricing, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return Pricing{}, appErrors.ErrInvalidAmount
	}

	if category == CategoryTime && (hourlyRate <= 0 || math.IsNaN(hourlyRate) || math.IsInf(hourlyRate, 0)) {
		return Pricing{}, appErrors.ErrInvalidRate
	}

	fmv := amount
	if category == CategoryTime {
		fmv = amount * hourlyRate
	}

	multiplier := category.Multiplier()

	return Pricing{
		FairMarketValue: fmv,
		Multiplier:      multiplier,
		Slices:          fmv * float64(multiplier),
	}, nil
}

type Projection struct {
	NewTotalSlices float64
	NewUserSlices  float64
	NewEquityPct   float64
	DeltaPct       float64
}

// Project simula a adição de uma contribuição hipotética sem alterar nenhum
// estado armazenado.
func Project(currentTotalSlices, currentUserSlices, amount float64, category Category, hourlyRate float64) (Projection, error) {
	pricing, err := Price(category, amount, hourlyRate)
	if err != nil {
		return Projection{}, err
	}

	newTotal := currentTotalSlices + pricing.Slices
	newUserTotal := currentUserSlices + pricing.Slices

	newEquity := 0.0
	if newTotal > 0 {
		newEquity = newUserTotal / newTotal * 100
	}

	currentEquity := 0.0
	if currentTotalSlices > 0 {
		currentEquity = currentUserSlices / currentTotalSlices * 100
	}

	return Projection{
		NewTotalSlices: newTotal,
		NewUserSlices:  newUserTotal,
		NewEquityPct:   newEquity,
		DeltaPct:       newEquity - currentEquity,
	}, nil
}

// Round2 normaliza valores para a precisão de 2 casas usada pelos exports de
// rastreadores de tempo.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
