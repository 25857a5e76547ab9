package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type ListCropsHandler struct {
	catalog service.Catalog
}

func NewListCropsHandler(catalog service.Catalog) ListCropsHandler {
	return ListCropsHandler{catalog: catalog}
}

func (h ListCropsHandler) Method() string {
	return http.MethodGet
}

func (h ListCropsHandler) Path() string {
	return "/crops"
}

func (h ListCropsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	crops, err := h.catalog.ListCrops(r.Context())
	if err != nil {
		return err
	}

	result := make([]cropOut, 0, len(crops))
	for _, crop := range crops {
		result = append(result, cropOut{ID: crop.ID.UUID, Name: crop.Name})
	}

	w.SetJSONBody(result)
	return nil
}

type cropOut struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
