package http

import (
	"net/http"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type AddCropHandler struct {
	catalog service.Catalog
}

func NewAddCropHandler(catalog service.Catalog) AddCropHandler {
	return AddCropHandler{catalog: catalog}
}

func (h AddCropHandler) Method() string {
	return http.MethodPost
}

func (h AddCropHandler) Path() string {
	return "/crops"
}

func (h AddCropHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.ValidatedJSONBody[addCropIn](), err)
	if err != nil {
		return err
	}

	crop, err := h.catalog.AddCrop(r.Context(), in.Name)
	if isBadCatalogEntry(err) {
		w.SetStatusCode(http.StatusBadRequest)
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(cropOut{ID: crop.ID.UUID, Name: crop.Name})
	return nil
}

type addCropIn struct {
	Name string `json:"name" validate:"required"`
}
