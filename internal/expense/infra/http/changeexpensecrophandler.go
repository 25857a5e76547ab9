package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/expense/app/service"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/domain"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type ChangeExpenseCropHandler struct {
	expenses service.Expense
}

func NewChangeExpenseCropHandler(expenses service.Expense) ChangeExpenseCropHandler {
	return ChangeExpenseCropHandler{expenses: expenses}
}

func (h ChangeExpenseCropHandler) Method() string {
	return http.MethodPatch
}

func (h ChangeExpenseCropHandler) Path() string {
	return "/expenses/{id}/crop"
}

func (h ChangeExpenseCropHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	id, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("id"), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.ValidatedJSONBody[changeExpenseCropIn](), err)
	if err != nil {
		return err
	}

	err = h.expenses.ChangeCrop(r.Context(), domain.ExpenseID{UUID: id}, in.Crop)
	if errors.Is(err, service.ErrInvalidExpense) {
		w.SetStatusCode(http.StatusBadRequest)
		return err
	}
	if errors.Is(err, service.ErrExpenseNotFound) {
		w.SetStatusCode(http.StatusNotFound)
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(successOut{Success: true})
	return nil
}

type changeExpenseCropIn struct {
	Crop string `json:"crop" validate:"required"`
}
