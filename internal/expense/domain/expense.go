//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ExpenseRepository=ExpenseRepository"
package domain

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

const Name = "expense"

var ErrExpenseNotFound = errors.New("expense not found")

type (
	Expense struct {
		ID       ExpenseID
		Expender string
		Reason   string
		Amount   float64
		Crop     string
		// CreatedAt is assigned by the store on insert.
		CreatedAt time.Time
	}

	// DailyCropTotal is the sum of expenses on one crop during one calendar day.
	DailyCropTotal struct {
		Crop  string
		Date  time.Time
		Total float64
	}

	ExpenseRepository interface {
		NextID() ExpenseID
		Add(context.Context, *Expense) error
		// FindAll returns expenses newest first.
		FindAll(context.Context) ([]Expense, error)
		UpdateCrop(ctx context.Context, id ExpenseID, crop string) error
		Delete(context.Context, ExpenseID) error
		// DailyTotals returns totals ordered by date ascending.
		DailyTotals(context.Context) ([]DailyCropTotal, error)
	}

	ExpenseID struct{ uuid.UUID }
)

// maxAmountCents is the largest absolute amount the store keeps, in cents.
const maxAmountCents = 999_999_999_999

// ValidAmount reports whether amount is finite and fits the stored precision once rounded to cents.
func ValidAmount(amount float64) bool {
	return math.Abs(math.Round(amount*100)) <= maxAmountCents
}
