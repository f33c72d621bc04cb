package report

// LedgerSummary agrega o recorte filtrado do livro de contribuições.
type LedgerSummary struct {
	TotalSlices float64 `json:"totalSlices"`
	TotalFMV    float64 `json:"totalFmv"`
	TotalHours  float64 `json:"totalHours"`
	TotalCash   float64 `json:"totalCash"`
	Count       int     `json:"count"`
}

type UserSubtotal struct {
	UserId string  `json:"userId"`
	Name   string  `json:"name"`
	Slices float64 `json:"slices"`
	Count  int     `json:"count"`
}

type LedgerReport struct {
	Summary LedgerSummary  `json:"summary"`
	PerUser []UserSubtotal `json:"perUser"`
}
