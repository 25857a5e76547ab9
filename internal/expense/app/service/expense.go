//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Expense=Expense"
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/klwxsrx/farm-expense-tracker/internal/expense/app/external"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/domain"
)

var (
	ErrInvalidExpense  = errors.New("invalid expense")
	ErrUnknownExpender = errors.New("unknown expender")
	ErrExpenseNotFound = domain.ErrExpenseNotFound
)

type (
	Expense interface {
		Record(context.Context, ExpenseData) error
		List(context.Context) ([]domain.Expense, error)
		ChangeCrop(ctx context.Context, id domain.ExpenseID, crop string) error
		Delete(context.Context, domain.ExpenseID) error
		DailyTotals(context.Context) ([]domain.DailyCropTotal, error)
	}

	ExpenseData struct {
		Expender string
		Reason   string
		Amount   float64
		Crop     string
	}

	expenseService struct {
		expenseRepo   domain.ExpenseRepository
		userDirectory external.UserDirectory
	}
)

func NewExpense(
	expenseRepo domain.ExpenseRepository,
	userDirectory external.UserDirectory,
) Expense {
	return &expenseService{
		expenseRepo:   expenseRepo,
		userDirectory: userDirectory,
	}
}

func (s *expenseService) Record(ctx context.Context, data ExpenseData) error {
	expense := &domain.Expense{
		Expender: strings.TrimSpace(data.Expender),
		Reason:   strings.TrimSpace(data.Reason),
		Amount:   data.Amount,
		Crop:     strings.TrimSpace(data.Crop),
	}
	if expense.Expender == "" || expense.Reason == "" || expense.Crop == "" {
		return fmt.Errorf("%w: empty field", ErrInvalidExpense)
	}
	if !domain.ValidAmount(expense.Amount) {
		return fmt.Errorf("%w: amount %v is out of range", ErrInvalidExpense, expense.Amount)
	}

	exists, err := s.userDirectory.UserExists(ctx, expense.Expender)
	if err != nil {
		return fmt.Errorf("check expender: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownExpender, expense.Expender)
	}

	expense.ID = s.expenseRepo.NextID()
	err = s.expenseRepo.Add(ctx, expense)
	if err != nil {
		return fmt.Errorf("add expense: %w", err)
	}

	return nil
}

func (s *expenseService) List(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find expenses: %w", err)
	}

	return expenses, nil
}

func (s *expenseService) ChangeCrop(ctx context.Context, id domain.ExpenseID, crop string) error {
	crop = strings.TrimSpace(crop)
	if crop == "" {
		return fmt.Errorf("%w: empty crop", ErrInvalidExpense)
	}

	err := s.expenseRepo.UpdateCrop(ctx, id, crop)
	if err != nil {
		return fmt.Errorf("update expense crop: %w", err)
	}

	return nil
}

func (s *expenseService) Delete(ctx context.Context, id domain.ExpenseID) error {
	err := s.expenseRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	return nil
}

func (s *expenseService) DailyTotals(ctx context.Context) ([]domain.DailyCropTotal, error) {
	totals, err := s.expenseRepo.DailyTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("calculate daily totals: %w", err)
	}

	return totals, nil
}
