package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type AddAmountHandler struct {
	catalog service.Catalog
}

func NewAddAmountHandler(catalog service.Catalog) AddAmountHandler {
	return AddAmountHandler{catalog: catalog}
}

func (h AddAmountHandler) Method() string {
	return http.MethodPost
}

func (h AddAmountHandler) Path() string {
	return "/amounts"
}

func (h AddAmountHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.ValidatedJSONBody[addAmountIn](), err)
	if err != nil {
		return err
	}

	amount, err := h.catalog.AddAmount(r.Context(), *in.Amount)
	if isBadCatalogEntry(err) {
		w.SetStatusCode(http.StatusBadRequest)
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(amountOut{ID: amount.ID.UUID, Amount: amount.Amount})
	return nil
}

type (
	addAmountIn struct {
		Amount *float64 `json:"amount" validate:"required"`
	}

	amountOut struct {
		ID     uuid.UUID `json:"id"`
		Amount float64   `json:"amount"`
	}
)
