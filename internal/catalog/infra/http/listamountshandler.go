package http

import (
	"net/http"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type ListAmountsHandler struct {
	catalog service.Catalog
}

func NewListAmountsHandler(catalog service.Catalog) ListAmountsHandler {
	return ListAmountsHandler{catalog: catalog}
}

func (h ListAmountsHandler) Method() string {
	return http.MethodGet
}

func (h ListAmountsHandler) Path() string {
	return "/amounts"
}

func (h ListAmountsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	amounts, err := h.catalog.ListAmounts(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(amounts)
	return nil
}
