package importer

import (
	"context"
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/contribution"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/logger"
)

type Service struct {
	UserService         *user.Service
	ContributionService *contribution.Service
}

type Summary struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Fail    int `json:"fail"`
}

// Preview reconcilia o CSV contra a lista atual de usuários sem persistir
// nada.
func (s *Service) Preview(ctx context.Context, csvText string) ([]Row, error) {
	if csvText == "" {
		return nil, appErrors.NewValidationError("file", "arquivo vazio ou inválido")
	}

	users, err := s.UserService.List(ctx)
	if err != nil {
		return nil, err
	}

	return Reconcile(csvText, users, time.Now()), nil
}

// Execute persiste as linhas válidas como contribuições de tempo, uma por
// vez, em ordem de entrada. A falha de uma linha é registrada e contada, mas
// não interrompe as demais. Inserção em lote de melhor esforço, não
// transacional, em sequência.
func (s *Service) Execute(ctx context.Context, csvText string) (Summary, []Row, error) {
	rows, err := s.Preview(ctx, csvText)
	if err != nil {
		return Summary{}, nil, err
	}

	var summary Summary
	for i := range rows {
		if !rows[i].IsValid {
			continue
		}
		summary.Total++

		entity := &contribution.Contribution{
			UserId:          rows[i].User.Id,
			Category:        equity.CategoryTime,
			Amount:          rows[i].Hours,
			FairMarketValue: rows[i].FMV,
			Multiplier:      equity.MultiplierTime,
			Slices:          rows[i].Slices,
			Description:     rows[i].Description,
			Date:            rows[i].Date,
		}

		if err := s.ContributionService.CreateImported(ctx, entity); err != nil {
			summary.Fail++
			logger.Warn().
				Err(err).
				Int("row", rows[i].OriginalIndex).
				Str("user", rows[i].UserRaw).
				Msg("Falha ao importar linha do CSV")
			continue
		}
		summary.Success++
	}

	return summary, rows, nil
}
