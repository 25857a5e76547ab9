package service_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/app/service"
	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/domain"
	catalogdomainmock "github.com/klwxsrx/farm-expense-tracker/internal/catalog/domain/mock"
)

type repos struct {
	crops   *catalogdomainmock.CropRepository
	reasons *catalogdomainmock.ReasonRepository
	amounts *catalogdomainmock.AmountRepository
}

func newCatalog(ctrl *gomock.Controller) (service.Catalog, repos) {
	r := repos{
		crops:   catalogdomainmock.NewCropRepository(ctrl),
		reasons: catalogdomainmock.NewReasonRepository(ctrl),
		amounts: catalogdomainmock.NewAmountRepository(ctrl),
	}
	return service.NewCatalog(r.crops, r.reasons, r.amounts), r
}

func TestCatalogService_AddCrop(t *testing.T) {
	t.Parallel()

	cropID := domain.CropID{UUID: uuid.New()}
	tests := []struct {
		name   string
		input  string
		repo   func(*catalogdomainmock.CropRepository)
		expect func(*testing.T, domain.Crop, error)
	}{
		{
			name:  "trims_name",
			input: "  wheat ",
			repo: func(mock *catalogdomainmock.CropRepository) {
				mock.EXPECT().NextID().Return(cropID)
				mock.EXPECT().Add(gomock.Any(), &domain.Crop{ID: cropID, Name: "wheat"}).Return(nil)
			},
			expect: func(t *testing.T, crop domain.Crop, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.Crop{ID: cropID, Name: "wheat"}, crop)
			},
		},
		{
			name:  "blank_name",
			input: "   ",
			expect: func(t *testing.T, _ domain.Crop, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidCatalogEntry)
			},
		},
		{
			name:  "duplicate",
			input: "wheat",
			repo: func(mock *catalogdomainmock.CropRepository) {
				mock.EXPECT().NextID().Return(cropID)
				mock.EXPECT().Add(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: unique violation", domain.ErrCatalogEntryAlreadyExists))
			},
			expect: func(t *testing.T, _ domain.Crop, err error) {
				assert.ErrorIs(t, err, service.ErrCatalogEntryAlreadyExists)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			catalog, r := newCatalog(gomock.NewController(t))
			if tt.repo != nil {
				tt.repo(r.crops)
			}

			crop, err := catalog.AddCrop(context.Background(), tt.input)
			tt.expect(t, crop, err)
		})
	}
}

func TestCatalogService_ListCrops(t *testing.T) {
	t.Parallel()

	catalog, r := newCatalog(gomock.NewController(t))
	crops := []domain.Crop{{Name: "barley"}, {Name: "wheat"}}
	r.crops.EXPECT().FindAll(gomock.Any()).Return(crops, nil)

	result, err := catalog.ListCrops(context.Background())
	require.NoError(t, err)
	assert.Equal(t, crops, result)
}

func TestCatalogService_Reasons(t *testing.T) {
	t.Parallel()

	catalog, r := newCatalog(gomock.NewController(t))
	reasonID := domain.ReasonID{UUID: uuid.New()}
	r.reasons.EXPECT().NextID().Return(reasonID)
	r.reasons.EXPECT().Add(gomock.Any(), &domain.Reason{ID: reasonID, Reason: "fuel"}).Return(nil)
	r.reasons.EXPECT().FindAll(gomock.Any()).Return([]domain.Reason{{Reason: "fuel"}, {Reason: "seeds"}}, nil)

	reason, err := catalog.AddReason(context.Background(), " fuel")
	require.NoError(t, err)
	assert.Equal(t, "fuel", reason.Reason)

	_, err = catalog.AddReason(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrInvalidCatalogEntry)

	reasons, err := catalog.ListReasons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fuel", "seeds"}, reasons)
}

func TestCatalogService_Amounts(t *testing.T) {
	t.Parallel()

	catalog, r := newCatalog(gomock.NewController(t))
	amountID := domain.SavedAmountID{UUID: uuid.New()}
	r.amounts.EXPECT().NextID().Return(amountID)
	r.amounts.EXPECT().Add(gomock.Any(), &domain.SavedAmount{ID: amountID, Amount: 250.5}).Return(nil)
	r.amounts.EXPECT().FindAll(gomock.Any()).Return([]domain.SavedAmount{{Amount: 100}, {Amount: 250.5}}, nil)

	amount, err := catalog.AddAmount(context.Background(), 250.5)
	require.NoError(t, err)
	assert.Equal(t, domain.SavedAmount{ID: amountID, Amount: 250.5}, amount)

	for _, invalid := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), 1e10, -1e10, 9_999_999_999.996} {
		_, err = catalog.AddAmount(context.Background(), invalid)
		assert.ErrorIs(t, err, service.ErrInvalidCatalogEntry)
	}

	amounts, err := catalog.ListAmounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 250.5}, amounts)
}
