package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/expense/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type ListExpensesHandler struct {
	expenses service.Expense
}

func NewListExpensesHandler(expenses service.Expense) ListExpensesHandler {
	return ListExpensesHandler{expenses: expenses}
}

func (h ListExpensesHandler) Method() string {
	return http.MethodGet
}

func (h ListExpensesHandler) Path() string {
	return "/expenses"
}

func (h ListExpensesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	expenses, err := h.expenses.List(r.Context())
	if err != nil {
		return err
	}

	result := make([]expenseOut, 0, len(expenses))
	for _, expense := range expenses {
		result = append(result, expenseOut{
			ID:        expense.ID.UUID,
			Amount:    expense.Amount,
			Reason:    expense.Reason,
			Expender:  expense.Expender,
			Crop:      expense.Crop,
			CreatedAt: expense.CreatedAt,
		})
	}

	w.SetJSONBody(result)
	return nil
}

type expenseOut struct {
	ID        uuid.UUID `json:"id"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason"`
	Expender  string    `json:"expender"`
	Crop      string    `json:"crop"`
	CreatedAt time.Time `json:"createdAt"`
}
