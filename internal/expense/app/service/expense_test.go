package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	expenseappexternalmock "github.com/klwxsrx/farm-expense-tracker/internal/expense/app/external/mock"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/app/service"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/domain"
	expensedomainmock "github.com/klwxsrx/farm-expense-tracker/internal/expense/domain/mock"
)

func TestExpenseService_Record(t *testing.T) {
	t.Parallel()

	expenseID := domain.ExpenseID{UUID: uuid.New()}
	valid := service.ExpenseData{Expender: " alice ", Reason: "fuel", Amount: 120.5, Crop: "wheat"}
	tests := []struct {
		name      string
		data      service.ExpenseData
		directory func(*expenseappexternalmock.UserDirectory)
		repo      func(*expensedomainmock.ExpenseRepository)
		expectErr error
	}{
		{
			name: "success",
			data: valid,
			directory: func(mock *expenseappexternalmock.UserDirectory) {
				mock.EXPECT().UserExists(gomock.Any(), "alice").Return(true, nil)
			},
			repo: func(mock *expensedomainmock.ExpenseRepository) {
				mock.EXPECT().NextID().Return(expenseID)
				mock.EXPECT().Add(gomock.Any(), &domain.Expense{
					ID:       expenseID,
					Expender: "alice",
					Reason:   "fuel",
					Amount:   120.5,
					Crop:     "wheat",
				}).Return(nil)
			},
		},
		{
			name: "unknown_expender",
			data: valid,
			directory: func(mock *expenseappexternalmock.UserDirectory) {
				mock.EXPECT().UserExists(gomock.Any(), "alice").Return(false, nil)
			},
			expectErr: service.ErrUnknownExpender,
		},
		{
			name:      "blank_crop",
			data:      service.ExpenseData{Expender: "alice", Reason: "fuel", Amount: 1, Crop: " "},
			expectErr: service.ErrInvalidExpense,
		},
		{
			name:      "infinite_amount",
			data:      service.ExpenseData{Expender: "alice", Reason: "fuel", Amount: math.Inf(1), Crop: "wheat"},
			expectErr: service.ErrInvalidExpense,
		},
		{
			name:      "amount_too_large",
			data:      service.ExpenseData{Expender: "alice", Reason: "fuel", Amount: 1e10, Crop: "wheat"},
			expectErr: service.ErrInvalidExpense,
		},
		{
			name:      "negative_amount_too_large",
			data:      service.ExpenseData{Expender: "alice", Reason: "fuel", Amount: -1e10, Crop: "wheat"},
			expectErr: service.ErrInvalidExpense,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			directory := expenseappexternalmock.NewUserDirectory(ctrl)
			if tt.directory != nil {
				tt.directory(directory)
			}
			repo := expensedomainmock.NewExpenseRepository(ctrl)
			if tt.repo != nil {
				tt.repo(repo)
			}

			err := service.NewExpense(repo, directory).Record(context.Background(), tt.data)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExpenseService_Record_DirectoryFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	failure := errors.New("connection refused")
	directory := expenseappexternalmock.NewUserDirectory(ctrl)
	directory.EXPECT().UserExists(gomock.Any(), "alice").Return(false, failure)

	err := service.NewExpense(expensedomainmock.NewExpenseRepository(ctrl), directory).
		Record(context.Background(), service.ExpenseData{Expender: "alice", Reason: "fuel", Amount: 1, Crop: "wheat"})
	assert.ErrorIs(t, err, failure)
	assert.NotErrorIs(t, err, service.ErrUnknownExpender)
}

func TestExpenseService_ChangeCrop(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	id := domain.ExpenseID{UUID: uuid.New()}
	repo := expensedomainmock.NewExpenseRepository(ctrl)
	repo.EXPECT().UpdateCrop(gomock.Any(), id, "barley").Return(nil)
	repo.EXPECT().UpdateCrop(gomock.Any(), id, "oats").Return(domain.ErrExpenseNotFound)
	expenses := service.NewExpense(repo, expenseappexternalmock.NewUserDirectory(ctrl))

	require.NoError(t, expenses.ChangeCrop(context.Background(), id, " barley "))
	assert.ErrorIs(t, expenses.ChangeCrop(context.Background(), id, "oats"), service.ErrExpenseNotFound)
	assert.ErrorIs(t, expenses.ChangeCrop(context.Background(), id, ""), service.ErrInvalidExpense)
}

func TestExpenseService_Queries(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	list := []domain.Expense{{Expender: "bob"}, {Expender: "alice"}}
	totals := []domain.DailyCropTotal{{Crop: "wheat", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Total: 30}}
	id := domain.ExpenseID{UUID: uuid.New()}

	repo := expensedomainmock.NewExpenseRepository(ctrl)
	repo.EXPECT().FindAll(gomock.Any()).Return(list, nil)
	repo.EXPECT().DailyTotals(gomock.Any()).Return(totals, nil)
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
	expenses := service.NewExpense(repo, expenseappexternalmock.NewUserDirectory(ctrl))

	gotList, err := expenses.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, list, gotList)

	gotTotals, err := expenses.DailyTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, totals, gotTotals)

	assert.NoError(t, expenses.Delete(context.Background(), id))
}
