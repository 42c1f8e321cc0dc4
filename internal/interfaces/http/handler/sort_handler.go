// Package handler contains the HTTP handlers for the sorting API.
// Handlers are thin inbound adapters: they decode requests, delegate to
// the application layer through ports, and encode responses.
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hapkiduki/parcel-go/internal/application/dto"
	"github.com/hapkiduki/parcel-go/internal/application/port"
	"github.com/hapkiduki/parcel-go/internal/domain/entity"
)

// SortHandler handles parcel classification requests.
type SortHandler struct {
	sorter port.PackageSorter
}

// NewSortHandler creates a SortHandler.
//
// Parameters:
//   - sorter: the classification use case
//
// Returns:
//   - *SortHandler: the created handler
func NewSortHandler(sorter port.PackageSorter) *SortHandler {
	return &SortHandler{sorter: sorter}
}

// Register mounts the handler's routes on the given router.
//
// Parameters:
//   - r: the router to mount on
func (h *SortHandler) Register(r chi.Router) {
	r.Post("/sort", h.Sort)
}

// Sort handles POST /sort.
// The request body carries width, height, length (cm) and mass (kg),
// each as a JSON number or string. A validation failure produces a 422
// with a field-level error identifying the first invalid parameter.
func (h *SortHandler) Sort(w http.ResponseWriter, r *http.Request) {
	var req dto.SortRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[dto.SortResult]("INVALID_JSON", "Request body is not valid JSON"))
		return
	}

	result, err := h.sorter.Sort(r.Context(), req)
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, dto.NewValidationErrorResponse[dto.SortResult]([]dto.ValidationError{
				{
					Field:   verr.Param,
					Message: verr.Error(),
					Value:   verr.Value,
				},
			}))
			return
		}

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, dto.NewErrorResponse[dto.SortResult]("INTERNAL_ERROR", "An unexpected error occurred"))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewSuccessResponse(result))
}
