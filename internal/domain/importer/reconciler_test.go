package importer_test

import (
	"testing"
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/importer"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"

	"github.com/oklog/ulid/v2"
)

var now = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func knownUsers() []*user.User {
	return []*user.User{
		{Id: ulid.Make(), Name: "Alice", Email: "alice@example.com", HourlyRate: 20},
		{Id: ulid.Make(), Name: "Bob", Email: "bob@example.com", HourlyRate: 0},
	}
}

func TestReconcileValidRow(t *testing.T) {
	t.Parallel()

	csv := "Description,Task,Project,User,Start,Duration (decimal)\n" +
		"Code review,Backend,Pie,Alice,2025-05-10,3.5\n"

	rows := importer.Reconcile(csv, knownUsers(), now)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if !row.IsValid {
		t.Fatalf("expected valid row, errors: %v", row.Errors)
	}
	if row.Hours != 3.5 {
		t.Fatalf("expected 3.5 hours, got %v", row.Hours)
	}
	if row.FMV != 70 {
		t.Fatalf("expected fmv 70, got %v", row.FMV)
	}
	if row.Slices != 140 {
		t.Fatalf("expected slices 140, got %v", row.Slices)
	}
	if row.Description != "Code review - Backend - Pie" {
		t.Fatalf("unexpected description: %q", row.Description)
	}
	if !row.Date.Equal(time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", row.Date)
	}
}

func TestReconcileQuotedCommaInsideField(t *testing.T) {
	t.Parallel()

	csv := "Description,Task,Project,User,Start,Duration (decimal)\n" +
		"\"Fix bug, then deploy\",QA,Pie,Alice,,1\n"

	rows := importer.Reconcile(csv, knownUsers(), now)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Description != "Fix bug, then deploy - QA - Pie" {
		t.Fatalf("quoted comma was treated as separator: %q", rows[0].Description)
	}
	if !rows[0].Date.Equal(now) {
		t.Fatalf("expected empty Start to default to now, got %v", rows[0].Date)
	}
}

func TestReconcileUserResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userField string
		wantMatch bool
	}{
		{"exact name", "Alice", true},
		{"exact email", "alice@example.com", true},
		{"case insensitive name", "aLiCe", true},
		{"unknown user", "Ghost", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			csv := "User,Duration (decimal)\n" + tt.userField + ",2\n"
			rows := importer.Reconcile(csv, knownUsers(), now)
			if len(rows) != 1 {
				t.Fatalf("expected 1 row, got %d", len(rows))
			}

			row := rows[0]
			if tt.wantMatch {
				if row.User == nil || row.User.Name != "Alice" {
					t.Fatalf("expected Alice match, got %+v", row.User)
				}
				return
			}
			if row.IsValid {
				t.Fatalf("expected invalid row for unknown user")
			}
			if len(row.Errors) != 1 || row.Errors[0] != importer.ErrRowUserNotFound {
				t.Fatalf("expected USER_NOT_FOUND, got %v", row.Errors)
			}
			if row.UserRaw != "Ghost" {
				t.Fatalf("invalid row must stay in preview with raw name, got %q", row.UserRaw)
			}
		})
	}
}

func TestReconcileRowErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		wantErrs []importer.RowError
	}{
		{
			name:     "matched user without hourly rate",
			line:     "Bob,2",
			wantErrs: []importer.RowError{importer.ErrRowMissingRate},
		},
		{
			name:     "non numeric duration",
			line:     "Alice,abc",
			wantErrs: []importer.RowError{importer.ErrRowInvalidDuration},
		},
		{
			name:     "zero duration",
			line:     "Alice,0",
			wantErrs: []importer.RowError{importer.ErrRowInvalidDuration},
		},
		{
			name:     "negative duration",
			line:     "Alice,-2",
			wantErrs: []importer.RowError{importer.ErrRowInvalidDuration},
		},
		{
			name: "unknown user and bad duration accumulate",
			line: "Ghost,xyz",
			wantErrs: []importer.RowError{
				importer.ErrRowUserNotFound,
				importer.ErrRowInvalidDuration,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			csv := "User,Duration (decimal)\n" + tt.line + "\n"
			rows := importer.Reconcile(csv, knownUsers(), now)
			if len(rows) != 1 {
				t.Fatalf("expected 1 row, got %d", len(rows))
			}

			row := rows[0]
			if row.IsValid {
				t.Fatalf("expected invalid row")
			}
			if len(row.Errors) != len(tt.wantErrs) {
				t.Fatalf("expected %d errors, got %v", len(tt.wantErrs), row.Errors)
			}
			for i, want := range tt.wantErrs {
				if row.Errors[i] != want {
					t.Fatalf("expected error %s at %d, got %s", want, i, row.Errors[i])
				}
			}
		})
	}
}

func TestReconcileRejectsNonFiniteDuration(t *testing.T) {
	t.Parallel()

	// strconv.ParseFloat aceita essas grafias; nenhuma pode virar horas
	for _, duration := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "Infinity"} {
		duration := duration
		t.Run(duration, func(t *testing.T) {
			csv := "User,Duration (decimal)\nAlice," + duration + "\n"
			rows := importer.Reconcile(csv, knownUsers(), now)
			if len(rows) != 1 {
				t.Fatalf("expected 1 row, got %d", len(rows))
			}

			row := rows[0]
			if row.IsValid {
				t.Fatalf("duration %q: expected invalid row, got hours=%v slices=%v", duration, row.Hours, row.Slices)
			}
			if len(row.Errors) != 1 || row.Errors[0] != importer.ErrRowInvalidDuration {
				t.Fatalf("duration %q: expected INVALID_DURATION, got %v", duration, row.Errors)
			}
			if row.Hours != 0 || row.FMV != 0 || row.Slices != 0 {
				t.Fatalf("duration %q: expected zeroed amounts, got hours=%v fmv=%v slices=%v",
					duration, row.Hours, row.FMV, row.Slices)
			}
		})
	}
}

func TestReconcileSkipsRowsWithoutUser(t *testing.T) {
	t.Parallel()

	csv := "User,Duration (decimal)\n" +
		",5\n" +
		"\n" +
		"Alice,2\n"

	rows := importer.Reconcile(csv, knownUsers(), now)
	if len(rows) != 1 {
		t.Fatalf("rows without user must be absent from output, got %d rows", len(rows))
	}
	if rows[0].UserRaw != "Alice" {
		t.Fatalf("unexpected surviving row: %+v", rows[0])
	}
}

func TestReconcileMissingColumnsYieldEmptyValues(t *testing.T) {
	t.Parallel()

	// sem Description/Task/Project/Start: campos vazios, não erro de parse
	csv := "User,Duration (decimal)\nAlice,2\n"

	rows := importer.Reconcile(csv, knownUsers(), now)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Description != "" {
		t.Fatalf("expected empty description, got %q", rows[0].Description)
	}
	if !rows[0].IsValid {
		t.Fatalf("expected valid row, errors: %v", rows[0].Errors)
	}
}

func TestReconcileRoundsDurationToTwoDecimals(t *testing.T) {
	t.Parallel()

	csv := "User,Duration (decimal)\nAlice,1.23456789\n"

	rows := importer.Reconcile(csv, knownUsers(), now)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Hours != 1.23 {
		t.Fatalf("expected hours rounded to 1.23, got %v", rows[0].Hours)
	}
	// slices = round(1.23 * 20 * 2 * 100) / 100
	if rows[0].Slices != 49.2 {
		t.Fatalf("expected slices 49.2, got %v", rows[0].Slices)
	}
}

func TestReconcileEmptyInput(t *testing.T) {
	t.Parallel()

	if rows := importer.Reconcile("", knownUsers(), now); rows != nil {
		t.Fatalf("expected nil rows for empty input, got %v", rows)
	}
	if rows := importer.Reconcile("User,Duration (decimal)", knownUsers(), now); rows != nil {
		t.Fatalf("expected nil rows for header-only input, got %v", rows)
	}
}
