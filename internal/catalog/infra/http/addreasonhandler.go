package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type AddReasonHandler struct {
	catalog service.Catalog
}

func NewAddReasonHandler(catalog service.Catalog) AddReasonHandler {
	return AddReasonHandler{catalog: catalog}
}

func (h AddReasonHandler) Method() string {
	return http.MethodPost
}

func (h AddReasonHandler) Path() string {
	return "/reasons"
}

func (h AddReasonHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.ValidatedJSONBody[addReasonIn](), err)
	if err != nil {
		return err
	}

	reason, err := h.catalog.AddReason(r.Context(), in.Reason)
	if isBadCatalogEntry(err) {
		w.SetStatusCode(http.StatusBadRequest)
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(reasonOut{ID: reason.ID.UUID, Reason: reason.Reason})
	return nil
}

type (
	addReasonIn struct {
		Reason string `json:"reason" validate:"required"`
	}

	reasonOut struct {
		ID     uuid.UUID `json:"id"`
		Reason string    `json:"reason"`
	}
)
