package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverdueAt(t *testing.T) {
	now := time.Date(2023, 10, 20, 12, 0, 0, 0, time.UTC)

	open := Loan{LoanDate: "2023-10-01", DueDate: "2023-10-15"}
	assert.True(t, open.OverdueAt(now))

	closed := Loan{LoanDate: "2023-10-01", DueDate: "2023-10-15", Returned: true}
	assert.False(t, closed.OverdueAt(now))

	notYet := Loan{LoanDate: "2023-10-18", DueDate: "2023-11-01"}
	assert.False(t, notYet.OverdueAt(now))

	// malformed dates are treated as not overdue
	bad := Loan{DueDate: "soon"}
	assert.False(t, bad.OverdueAt(now))
}

func TestOverdueAtIsClockRelative(t *testing.T) {
	l := Loan{LoanDate: "2023-10-01", DueDate: "2023-10-15"}
	assert.False(t, l.OverdueAt(time.Date(2023, 10, 14, 23, 0, 0, 0, time.UTC)))
	assert.True(t, l.OverdueAt(time.Date(2023, 10, 16, 0, 0, 0, 0, time.UTC)))
}
