package http

import (
	"net/http"
	"time"

	"github.com/klwxsrx/farm-expense-tracker/internal/expense/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type ExpenseTrendHandler struct {
	expenses service.Expense
}

func NewExpenseTrendHandler(expenses service.Expense) ExpenseTrendHandler {
	return ExpenseTrendHandler{expenses: expenses}
}

func (h ExpenseTrendHandler) Method() string {
	return http.MethodGet
}

func (h ExpenseTrendHandler) Path() string {
	return "/expenses/trend"
}

func (h ExpenseTrendHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	totals, err := h.expenses.DailyTotals(r.Context())
	if err != nil {
		return err
	}

	result := make([]trendPointOut, 0, len(totals))
	for _, total := range totals {
		result = append(result, trendPointOut{
			Crop:  total.Crop,
			Date:  total.Date.Format(time.DateOnly),
			Total: total.Total,
		})
	}

	w.SetJSONBody(result)
	return nil
}

type trendPointOut struct {
	Crop  string  `json:"crop"`
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}
