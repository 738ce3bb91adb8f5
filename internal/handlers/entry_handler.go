package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type EntryHandler struct {
	ledger    *services.LedgerService
	validator *services.ValidationHelper
}

func NewEntryHandler(ledger *services.LedgerService) *EntryHandler {
	return &EntryHandler{
		ledger:    ledger,
		validator: services.NewValidationHelper(),
	}
}

// EntryRequest is the body of add and edit. Balances accept JSON numbers or
// numeric strings; they are kept as exact decimals.
type EntryRequest struct {
	AccountName     string      `json:"account_name" validate:"required,max=100" example:"ICICI"`
	Month           string      `json:"month" validate:"required,month" example:"September"`
	Year            int         `json:"year" validate:"required,gte=2000,lte=2100" example:"2025"`
	StartingBalance json.Number `json:"starting_balance" validate:"required,numeric" swaggertype:"number" example:"1000.00"`
	CurrentBalance  json.Number `json:"current_balance" validate:"required,numeric" swaggertype:"number" example:"1200.00"`
	CurrentCredit   json.Number `json:"current_credit" validate:"required,numeric" swaggertype:"number" example:"200.00"`
}

func (h *EntryHandler) Routes(r chi.Router) {
	r.Post("/", h.AddEntry)
	r.Get("/", h.ListEntries)
	r.Get("/{entryId}", h.GetEntry)
	r.Put("/{entryId}", h.EditEntry)
	r.Delete("/{entryId}", h.DeleteEntry)
}

func (h *EntryHandler) decodeEntry(w http.ResponseWriter, r *http.Request) (models.EntryInput, bool) {
	var req EntryRequest
	if !decodeJSON(w, r, &req) {
		return models.EntryInput{}, false
	}
	req.AccountName = strings.TrimSpace(req.AccountName)
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return models.EntryInput{}, false
	}

	month, _ := models.ParseMonth(req.Month)
	in := models.EntryInput{AccountName: req.AccountName, Month: month, Year: req.Year}

	balances := []struct {
		raw json.Number
		dst *decimal.Decimal
	}{
		{req.StartingBalance, &in.StartingBalance},
		{req.CurrentBalance, &in.CurrentBalance},
		{req.CurrentCredit, &in.CurrentCredit},
	}
	for _, b := range balances {
		d, err := decimal.NewFromString(b.raw.String())
		if err != nil {
			services.SendErrorResponse(w, "Balances must be decimal numbers", http.StatusBadRequest, nil)
			return models.EntryInput{}, false
		}
		*b.dst = d
	}
	return in, true
}

// AddEntry records a balance entry for an existing account
// @Summary Add ledger entry
// @Description Adds the entry for an account and period. The account must exist; the period is created on first use.
// @Tags Entries
// @Accept json
// @Produce json
// @Param request body EntryRequest true "Entry"
// @Success 201 {object} models.FlattenedEntry
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /entries [post]
func (h *EntryHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeEntry(w, r)
	if !ok {
		return
	}

	entry, err := h.ledger.AddEntry(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// ListEntries lists every ledger entry
// @Summary List ledger entries
// @Tags Entries
// @Produce json
// @Success 200 {array} models.FlattenedEntry
// @Router /entries [get]
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.GetAllEntries(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetEntry returns one ledger entry
// @Summary Get ledger entry
// @Tags Entries
// @Produce json
// @Param entryId path string true "Entry ID"
// @Success 200 {object} models.FlattenedEntry
// @Failure 404 {object} services.ErrorResponse
// @Router /entries/{entryId} [get]
func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.ledger.GetEntry(r.Context(), chi.URLParam(r, "entryId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// EditEntry replaces a ledger entry
// @Summary Edit ledger entry
// @Tags Entries
// @Accept json
// @Produce json
// @Param entryId path string true "Entry ID"
// @Param request body EntryRequest true "Entry"
// @Success 200 {object} models.FlattenedEntry
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /entries/{entryId} [put]
func (h *EntryHandler) EditEntry(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeEntry(w, r)
	if !ok {
		return
	}

	entry, err := h.ledger.EditEntry(r.Context(), chi.URLParam(r, "entryId"), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// DeleteEntry removes a ledger entry
// @Summary Delete ledger entry
// @Tags Entries
// @Param entryId path string true "Entry ID"
// @Success 204
// @Failure 404 {object} services.ErrorResponse
// @Router /entries/{entryId} [delete]
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.DeleteEntry(r.Context(), chi.URLParam(r, "entryId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
