//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Catalog=Catalog"
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/domain"
)

var (
	ErrInvalidCatalogEntry       = errors.New("invalid catalog entry")
	ErrCatalogEntryAlreadyExists = domain.ErrCatalogEntryAlreadyExists
)

type (
	Catalog interface {
		ListCrops(context.Context) ([]domain.Crop, error)
		AddCrop(ctx context.Context, name string) (domain.Crop, error)
		ListReasons(context.Context) ([]string, error)
		AddReason(ctx context.Context, reason string) (domain.Reason, error)
		ListAmounts(context.Context) ([]float64, error)
		AddAmount(ctx context.Context, amount float64) (domain.SavedAmount, error)
	}

	catalogService struct {
		cropRepo   domain.CropRepository
		reasonRepo domain.ReasonRepository
		amountRepo domain.AmountRepository
	}
)

func NewCatalog(
	cropRepo domain.CropRepository,
	reasonRepo domain.ReasonRepository,
	amountRepo domain.AmountRepository,
) Catalog {
	return &catalogService{
		cropRepo:   cropRepo,
		reasonRepo: reasonRepo,
		amountRepo: amountRepo,
	}
}

func (s *catalogService) ListCrops(ctx context.Context) ([]domain.Crop, error) {
	crops, err := s.cropRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find crops: %w", err)
	}

	return crops, nil
}

func (s *catalogService) AddCrop(ctx context.Context, name string) (domain.Crop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Crop{}, fmt.Errorf("%w: empty crop name", ErrInvalidCatalogEntry)
	}

	crop := domain.Crop{
		ID:   s.cropRepo.NextID(),
		Name: name,
	}
	err := s.cropRepo.Add(ctx, &crop)
	if err != nil {
		return domain.Crop{}, fmt.Errorf("add crop: %w", err)
	}

	return crop, nil
}

func (s *catalogService) ListReasons(ctx context.Context) ([]string, error) {
	reasons, err := s.reasonRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find reasons: %w", err)
	}

	result := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		result = append(result, reason.Reason)
	}

	return result, nil
}

func (s *catalogService) AddReason(ctx context.Context, reason string) (domain.Reason, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.Reason{}, fmt.Errorf("%w: empty reason", ErrInvalidCatalogEntry)
	}

	entry := domain.Reason{
		ID:     s.reasonRepo.NextID(),
		Reason: reason,
	}
	err := s.reasonRepo.Add(ctx, &entry)
	if err != nil {
		return domain.Reason{}, fmt.Errorf("add reason: %w", err)
	}

	return entry, nil
}

func (s *catalogService) ListAmounts(ctx context.Context) ([]float64, error) {
	amounts, err := s.amountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find amounts: %w", err)
	}

	result := make([]float64, 0, len(amounts))
	for _, amount := range amounts {
		result = append(result, amount.Amount)
	}

	return result, nil
}

func (s *catalogService) AddAmount(ctx context.Context, amount float64) (domain.SavedAmount, error) {
	if !domain.ValidAmount(amount) {
		return domain.SavedAmount{}, fmt.Errorf("%w: amount %v is out of range", ErrInvalidCatalogEntry, amount)
	}

	entry := domain.SavedAmount{
		ID:     s.amountRepo.NextID(),
		Amount: amount,
	}
	err := s.amountRepo.Add(ctx, &entry)
	if err != nil {
		return domain.SavedAmount{}, fmt.Errorf("add amount: %w", err)
	}

	return entry, nil
}
