package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/employee-portal-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AppraisalHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type appraisalHandlerImpl struct {
	appraisalService appraisal.AppraisalService
}

func NewAppraisalHandler(appraisalService appraisal.AppraisalService) AppraisalHandler {
	return &appraisalHandlerImpl{appraisalService: appraisalService}
}

func (h *appraisalHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.appraisalService.ListAppraisals(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *appraisalHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.appraisalService.GetAppraisal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *appraisalHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req appraisal.CreateAppraisalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create appraisal decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.appraisalService.CreateAppraisal(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Appraisal submitted successfully", result)
}

func (h *appraisalHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req appraisal.UpdateAppraisalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update appraisal decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.appraisalService.UpdateAppraisal(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Appraisal updated successfully", result)
}

func (h *appraisalHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.appraisalService.DeleteAppraisal(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Appraisal deleted successfully", nil)
}
