package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
)

// Formato de entrada estável, documentado: export de rastreador de tempo com
// estas colunas (sensíveis a maiúsculas). Colunas ausentes produzem string
// vazia em todas as linhas, nunca erro de parse.
const (
	ColumnDescription = "Description"
	ColumnTask        = "Task"
	ColumnProject     = "Project"
	ColumnUser        = "User"
	ColumnStart       = "Start"
	ColumnDuration    = "Duration (decimal)"
)

type RowError string

const (
	ErrRowUserNotFound    RowError = "USER_NOT_FOUND"
	ErrRowMissingRate     RowError = "MISSING_HOURLY_RATE"
	ErrRowInvalidDuration RowError = "INVALID_DURATION"
)

// Row é o preview de uma contribuição de tempo prospectiva. Linhas inválidas
// mantêm todos os campos calculados para que o chamador renderize a tabela
// completa de revisão.
type Row struct {
	OriginalIndex int        `json:"originalIndex"`
	Date          time.Time  `json:"date"`
	UserRaw       string     `json:"userRaw"`
	User          *user.User `json:"user,omitempty"`
	Description   string     `json:"description"`
	Hours         float64    `json:"hours"`
	Rate          float64    `json:"rate"`
	FMV           float64    `json:"fmv"`
	Slices        float64    `json:"slices"`
	IsValid       bool       `json:"isValid"`
	Errors        []RowError `json:"errors"`
}

var startLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// splitCSVLine quebra uma linha em campos com reconhecimento de aspas: aspas
// alternam um estado "dentro de aspas" e vírgulas dentro desse estado são
// parte do campo, não separadores. Aspas envolventes são removidas.
func splitCSVLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuote := false

	for _, char := range line {
		switch {
		case char == '"':
			inQuote = !inQuote
		case char == ',' && !inQuote:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}
	fields = append(fields, current.String())

	for i := range fields {
		fields[i] = strings.Trim(strings.TrimSpace(fields[i]), `"`)
	}
	return fields
}

// Reconcile interpreta um blob CSV de export de tempo e produz uma lista de
// contribuições de tempo prospectivas, válidas ou inválidas individualmente,
// sem tocar em armazenamento. Linhas com campo User vazio são simplesmente
// puladas (nem válidas nem inválidas).
func Reconcile(csvText string, knownUsers []*user.User, now time.Time) []Row {
	lines := strings.Split(strings.ReplaceAll(csvText, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil
	}

	headers := splitCSVLine(lines[0])
	columnIndex := func(name string) int {
		for i, h := range headers {
			if h == name {
				return i
			}
		}
		return -1
	}

	indexes := map[string]int{
		ColumnDescription: columnIndex(ColumnDescription),
		ColumnTask:        columnIndex(ColumnTask),
		ColumnProject:     columnIndex(ColumnProject),
		ColumnUser:        columnIndex(ColumnUser),
		ColumnStart:       columnIndex(ColumnStart),
		ColumnDuration:    columnIndex(ColumnDuration),
	}

	var rows []Row
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		fields := splitCSVLine(line)
		value := func(column string) string {
			idx := indexes[column]
			if idx < 0 || idx >= len(fields) {
				return ""
			}
			return fields[idx]
		}

		userName := value(ColumnUser)
		if userName == "" {
			continue
		}

		row := reconcileRow(rowInput{
			index:       i,
			userName:    userName,
			description: value(ColumnDescription),
			task:        value(ColumnTask),
			project:     value(ColumnProject),
			start:       value(ColumnStart),
			duration:    value(ColumnDuration),
		}, knownUsers, now)

		rows = append(rows, row)
	}

	return rows
}

type rowInput struct {
	index       int
	userName    string
	description string
	task        string
	project     string
	start       string
	duration    string
}

func reconcileRow(input rowInput, knownUsers []*user.User, now time.Time) Row {
	var rowErrors []RowError

	target := matchUser(input.userName, knownUsers)
	if target == nil {
		rowErrors = append(rowErrors, ErrRowUserNotFound)
	} else if target.HourlyRate <= 0 {
		rowErrors = append(rowErrors, ErrRowMissingRate)
	}

	// ParseFloat aceita "NaN" e "Inf"; nenhum dos dois é <= 0, então o
	// descarte precisa ser explícito.
	amount, err := strconv.ParseFloat(input.duration, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		rowErrors = append(rowErrors, ErrRowInvalidDuration)
		amount = 0
	}

	// Normaliza o ruído de ponto flutuante dos exports antes de qualquer
	// cálculo. Único ponto de arredondamento pré-armazenamento.
	hours := equity.Round2(amount)

	var rate float64
	if target != nil {
		rate = target.HourlyRate
	}

	var fmv, slices float64
	if len(rowErrors) == 0 {
		pricing, priceErr := equity.Price(equity.CategoryTime, hours, rate)
		if priceErr == nil {
			fmv = pricing.FairMarketValue
			slices = equity.Round2(pricing.Slices)
		}
	} else {
		// preview parcial: mesma fórmula, sem passar pelas pré-condições
		fmv = hours * rate
		slices = equity.Round2(fmv * equity.MultiplierTime)
	}

	segments := make([]string, 0, 3)
	for _, s := range []string{input.description, input.task, input.project} {
		if s != "" {
			segments = append(segments, s)
		}
	}

	date := now
	if input.start != "" {
		for _, layout := range startLayouts {
			if parsed, parseErr := time.Parse(layout, input.start); parseErr == nil {
				date = parsed
				break
			}
		}
	}

	return Row{
		OriginalIndex: input.index,
		Date:          date,
		UserRaw:       input.userName,
		User:          target,
		Description:   strings.Join(segments, " - "),
		Hours:         hours,
		Rate:          rate,
		FMV:           fmv,
		Slices:        slices,
		IsValid:       len(rowErrors) == 0,
		Errors:        rowErrors,
	}
}

// matchUser resolve o texto livre da coluna User: nome exato, email exato ou
// nome sem diferenciar maiúsculas. O primeiro que casar vence.
func matchUser(raw string, knownUsers []*user.User) *user.User {
	for _, u := range knownUsers {
		if u.Name == raw || u.Email == raw || (u.Name != "" && strings.EqualFold(u.Name, raw)) {
			return u
		}
	}
	return nil
}
