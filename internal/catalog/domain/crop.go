//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "CropRepository=CropRepository"
package domain

import (
	"context"

	"github.com/google/uuid"
)

type (
	Crop struct {
		ID   CropID
		Name string
	}

	CropRepository interface {
		NextID() CropID
		Add(context.Context, *Crop) error
		FindAll(context.Context) ([]Crop, error)
	}

	CropID struct{ uuid.UUID }
)
