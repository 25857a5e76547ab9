//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ReasonRepository=ReasonRepository"
package domain

import (
	"context"

	"github.com/google/uuid"
)

type (
	// Reason is a spending purpose suggested when an expense is recorded.
	Reason struct {
		ID     ReasonID
		Reason string
	}

	ReasonRepository interface {
		NextID() ReasonID
		Add(context.Context, *Reason) error
		FindAll(context.Context) ([]Reason, error)
	}

	ReasonID struct{ uuid.UUID }
)
