package http_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/farm-expense-tracker/internal/expense/app/service"
	expenseappservicemock "github.com/klwxsrx/farm-expense-tracker/internal/expense/app/service/mock"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/domain"
	expenseinfrahttp "github.com/klwxsrx/farm-expense-tracker/internal/expense/infra/http"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

func newServer(expenses service.Expense) pkghttp.Server {
	srv := pkghttp.NewServer()
	srv.Register(expenseinfrahttp.NewRecordExpenseHandler(expenses))
	srv.Register(expenseinfrahttp.NewListExpensesHandler(expenses))
	srv.Register(expenseinfrahttp.NewExpenseTrendHandler(expenses))
	srv.Register(expenseinfrahttp.NewChangeExpenseCropHandler(expenses))
	srv.Register(expenseinfrahttp.NewDeleteExpenseHandler(expenses))
	return srv
}

func TestExpenseHandlers(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	createdAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		expenses     func(*expenseappservicemock.Expense)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "record",
			method: http.MethodPost,
			path:   "/expenses",
			body:   `{"user":"alice","reason":"fuel","amount":120.5,"crop":"wheat"}`,
			expenses: func(mock *expenseappservicemock.Expense) {
				mock.EXPECT().Record(gomock.Any(), service.ExpenseData{
					Expender: "alice",
					Reason:   "fuel",
					Amount:   120.5,
					Crop:     "wheat",
				}).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true}`,
		},
		{
			name:   "record_unknown_user",
			method: http.MethodPost,
			path:   "/expenses",
			body:   `{"user":"mallory","reason":"fuel","amount":1,"crop":"wheat"}`,
			expenses: func(mock *expenseappservicemock.Expense) {
				mock.EXPECT().Record(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: mallory", service.ErrUnknownExpender))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Bad Request"}`,
		},
		{
			name:         "record_missing_amount",
			method:       http.MethodPost,
			path:         "/expenses",
			body:         `{"user":"alice","reason":"fuel","crop":"wheat"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Bad Request"}`,
		},
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/expenses",
			expenses: func(mock *expenseappservicemock.Expense) {
				mock.EXPECT().List(gomock.Any()).Return([]domain.Expense{{
					ID:        domain.ExpenseID{UUID: id},
					Expender:  "alice",
					Reason:    "fuel",
					Amount:    120.5,
					Crop:      "wheat",
					CreatedAt: createdAt,
				}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":"` + id.String() + `","amount":120.5,"reason":"fuel","expender":"alice","crop":"wheat","createdAt":"2024-03-01T09:30:00Z"}]`,
		},
		{
			name:   "trend",
			method: http.MethodGet,
			path:   "/expenses/trend",
			expenses: func(mock *expenseappservicemock.Expense) {
				mock.EXPECT().DailyTotals(gomock.Any()).Return([]domain.DailyCropTotal{
					{Crop: "wheat", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Total: 30.5},
					{Crop: "wheat", Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Total: 5},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"crop":"wheat","date":"2024-03-01","total":30.5},{"crop":"wheat","date":"2024-03-02","total":5}]`,
		},
		{
			name:   "change_crop",
			method: http.MethodPatch,
			path:   "/expenses/" + id.String() + "/crop",
			body:   `{"crop":"barley"}`,
			expenses: func(mock *expenseappservicemock.Expense) {
				mock.EXPECT().ChangeCrop(gomock.Any(), domain.ExpenseID{UUID: id}, "barley").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true}`,
		},
		{
			name:   "change_crop_unknown_expense",
			method: http.MethodPatch,
			path:   "/expenses/" + id.String() + "/crop",
			body:   `{"crop":"barley"}`,
			expenses: func(mock *expenseappservicemock.Expense) {
				mock.EXPECT().ChangeCrop(gomock.Any(), gomock.Any(), gomock.Any()).Return(service.ErrExpenseNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not Found"}`,
		},
		{
			name:         "change_crop_invalid_id",
			method:       http.MethodPatch,
			path:         "/expenses/42/crop",
			body:         `{"crop":"barley"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Bad Request"}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/expenses/" + id.String(),
			expenses: func(mock *expenseappservicemock.Expense) {
				mock.EXPECT().Delete(gomock.Any(), domain.ExpenseID{UUID: id}).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true,"message":"Deleted"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expenses := expenseappservicemock.NewExpense(gomock.NewController(t))
			if tt.expenses != nil {
				tt.expenses(expenses)
			}

			w := httptest.NewRecorder()
			newServer(expenses).Handler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
