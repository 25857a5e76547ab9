package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/expense/app/service"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/domain"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type DeleteExpenseHandler struct {
	expenses service.Expense
}

func NewDeleteExpenseHandler(expenses service.Expense) DeleteExpenseHandler {
	return DeleteExpenseHandler{expenses: expenses}
}

func (h DeleteExpenseHandler) Method() string {
	return http.MethodDelete
}

func (h DeleteExpenseHandler) Path() string {
	return "/expenses/{id}"
}

func (h DeleteExpenseHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	id, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("id"), err)
	if err != nil {
		return err
	}

	err = h.expenses.Delete(r.Context(), domain.ExpenseID{UUID: id})
	if err != nil {
		return err
	}

	w.SetJSONBody(successOut{Success: true, Message: "Deleted"})
	return nil
}

type successOut struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
