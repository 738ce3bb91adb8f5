package handlers

import (
	"net/http"
	"strconv"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/services"
	"github.com/go-chi/chi/v5"
)

type PeriodHandler struct {
	accounts  *services.AccountService
	validator *services.ValidationHelper
}

func NewPeriodHandler(accounts *services.AccountService) *PeriodHandler {
	return &PeriodHandler{
		accounts:  accounts,
		validator: services.NewValidationHelper(),
	}
}

type PeriodRequest struct {
	Month string `json:"month" validate:"required,month" example:"September"`
	Year  int    `json:"year" validate:"required,gte=2000,lte=2100" example:"2025"`
}

func (h *PeriodHandler) Routes(r chi.Router) {
	r.Post("/", h.GetOrCreatePeriod)
	r.Get("/", h.ListPeriods)
	r.Get("/lookup", h.LookupPeriod)
	r.Get("/{periodId}", h.GetPeriod)
	r.Put("/{periodId}", h.UpdatePeriod)
	r.Delete("/{periodId}", h.DeletePeriod)
}

// validate checks req and returns the canonical month.
func (h *PeriodHandler) validate(w http.ResponseWriter, req *PeriodRequest) (models.Month, bool) {
	if err := h.validator.ValidateStruct(req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return "", false
	}
	month, _ := models.ParseMonth(req.Month)
	return month, true
}

// GetOrCreatePeriod returns the period for a month and year, creating it if needed
// @Summary Get or create period
// @Tags Periods
// @Accept json
// @Produce json
// @Param request body PeriodRequest true "Month and year"
// @Success 200 {object} models.Period
// @Failure 400 {object} services.ErrorResponse
// @Router /periods [post]
func (h *PeriodHandler) GetOrCreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req PeriodRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	month, ok := h.validate(w, &req)
	if !ok {
		return
	}

	p, err := h.accounts.GetOrCreatePeriod(r.Context(), month, req.Year)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ListPeriods lists every period
// @Summary List periods
// @Tags Periods
// @Produce json
// @Success 200 {array} models.Period
// @Router /periods [get]
func (h *PeriodHandler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.accounts.GetAllPeriods(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, periods)
}

// LookupPeriod finds a period by month and year
// @Summary Look up period
// @Tags Periods
// @Produce json
// @Param month query string true "Month name"
// @Param year query int true "Year"
// @Success 200 {object} models.Period
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /periods/lookup [get]
func (h *PeriodHandler) LookupPeriod(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		services.SendErrorResponse(w, "year must be an integer", http.StatusBadRequest, nil)
		return
	}

	req := PeriodRequest{Month: q.Get("month"), Year: year}
	month, ok := h.validate(w, &req)
	if !ok {
		return
	}

	p, err := h.accounts.GetPeriodByValue(r.Context(), month, req.Year)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetPeriod returns one period
// @Summary Get period
// @Tags Periods
// @Produce json
// @Param periodId path string true "Period ID"
// @Success 200 {object} models.Period
// @Failure 404 {object} services.ErrorResponse
// @Router /periods/{periodId} [get]
func (h *PeriodHandler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	p, err := h.accounts.GetPeriodByID(r.Context(), chi.URLParam(r, "periodId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdatePeriod changes a period's month and year
// @Summary Update period
// @Tags Periods
// @Accept json
// @Produce json
// @Param periodId path string true "Period ID"
// @Param request body PeriodRequest true "Month and year"
// @Success 200 {object} models.Period
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /periods/{periodId} [put]
func (h *PeriodHandler) UpdatePeriod(w http.ResponseWriter, r *http.Request) {
	var req PeriodRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	month, ok := h.validate(w, &req)
	if !ok {
		return
	}

	p, err := h.accounts.UpdatePeriod(r.Context(), chi.URLParam(r, "periodId"), month, req.Year)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePeriod removes a period without ledger entries
// @Summary Delete period
// @Tags Periods
// @Param periodId path string true "Period ID"
// @Success 204
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /periods/{periodId} [delete]
func (h *PeriodHandler) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.DeletePeriod(r.Context(), chi.URLParam(r, "periodId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
