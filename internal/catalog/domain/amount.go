//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "AmountRepository=AmountRepository"
package domain

import (
	"context"
	"math"

	"github.com/google/uuid"
)

type (
	SavedAmount struct {
		ID     SavedAmountID
		Amount float64
	}

	AmountRepository interface {
		NextID() SavedAmountID
		Add(context.Context, *SavedAmount) error
		FindAll(context.Context) ([]SavedAmount, error)
	}

	SavedAmountID struct{ uuid.UUID }
)

// maxAmountCents is the largest absolute amount the store keeps, in cents.
const maxAmountCents = 999_999_999_999

// ValidAmount reports whether amount is finite and fits the stored precision once rounded to cents.
func ValidAmount(amount float64) bool {
	return math.Abs(math.Round(amount*100)) <= maxAmountCents
}
