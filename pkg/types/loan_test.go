package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoanOverdueDays(t *testing.T) {
	due := date(2026, time.March, 10)
	loan := &Loan{DueDate: due, Status: LoanActive}

	tests := []struct {
		name string
		on   time.Time
		want int
	}{
		{name: "before due date", on: date(2026, time.March, 1), want: 0},
		{name: "on due date", on: due, want: 0},
		{name: "one day late", on: date(2026, time.March, 11), want: 1},
		{name: "six days late", on: date(2026, time.March, 16), want: 6},
		{name: "time of day ignored", on: time.Date(2026, time.March, 11, 23, 59, 0, 0, time.UTC), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, loan.OverdueDays(tt.on))
		})
	}
}

func TestLoanClose(t *testing.T) {
	tests := []struct {
		name        string
		due         time.Time
		returned    time.Time
		rate        float64
		wantPenalty float64
	}{
		{
			name:        "on time",
			due:         date(2026, time.March, 10),
			returned:    date(2026, time.March, 10),
			rate:        1,
			wantPenalty: 0,
		},
		{
			name:        "one day late",
			due:         date(2026, time.March, 10),
			returned:    date(2026, time.March, 11),
			rate:        1,
			wantPenalty: 1,
		},
		{
			name:        "six days late with higher rate",
			due:         date(2026, time.March, 10),
			returned:    date(2026, time.March, 16),
			rate:        2.5,
			wantPenalty: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := &Loan{DueDate: tt.due, Status: LoanActive}
			loan.Close(tt.returned, tt.rate)

			assert.Equal(t, LoanReturned, loan.Status)
			assert.Equal(t, tt.wantPenalty, loan.Penalty)
			require.NotNil(t, loan.ActualReturnDate)
			assert.Equal(t, DateOnly(tt.returned), *loan.ActualReturnDate)
		})
	}
}

func TestDateOnly(t *testing.T) {
	got := DateOnly(time.Date(2026, time.July, 4, 18, 30, 12, 99, time.UTC))
	assert.Equal(t, date(2026, time.July, 4), got)
}
