package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/farm-expense-tracker/internal/expense/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type RecordExpenseHandler struct {
	expenses service.Expense
}

func NewRecordExpenseHandler(expenses service.Expense) RecordExpenseHandler {
	return RecordExpenseHandler{expenses: expenses}
}

func (h RecordExpenseHandler) Method() string {
	return http.MethodPost
}

func (h RecordExpenseHandler) Path() string {
	return "/expenses"
}

func (h RecordExpenseHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.ValidatedJSONBody[recordExpenseIn](), err)
	if err != nil {
		return err
	}

	err = h.expenses.Record(r.Context(), service.ExpenseData{
		Expender: in.User,
		Reason:   in.Reason,
		Amount:   *in.Amount,
		Crop:     in.Crop,
	})
	if errors.Is(err, service.ErrInvalidExpense) || errors.Is(err, service.ErrUnknownExpender) {
		w.SetStatusCode(http.StatusBadRequest)
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(successOut{Success: true})
	return nil
}

type recordExpenseIn struct {
	User   string   `json:"user" validate:"required"`
	Reason string   `json:"reason" validate:"required"`
	Amount *float64 `json:"amount" validate:"required"`
	Crop   string   `json:"crop" validate:"required"`
}
