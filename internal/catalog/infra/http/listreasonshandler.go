package http

import (
	"net/http"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type ListReasonsHandler struct {
	catalog service.Catalog
}

func NewListReasonsHandler(catalog service.Catalog) ListReasonsHandler {
	return ListReasonsHandler{catalog: catalog}
}

func (h ListReasonsHandler) Method() string {
	return http.MethodGet
}

func (h ListReasonsHandler) Path() string {
	return "/reasons"
}

func (h ListReasonsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	reasons, err := h.catalog.ListReasons(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(reasons)
	return nil
}
