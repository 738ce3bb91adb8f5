package handlers

import (
	"net/http"
	"strings"

	"github.com/expensemanager/backend/internal/services"
	"github.com/go-chi/chi/v5"
)

type AccountHandler struct {
	accounts  *services.AccountService
	ledger    *services.LedgerService
	validator *services.ValidationHelper
}

func NewAccountHandler(accounts *services.AccountService, ledger *services.LedgerService) *AccountHandler {
	return &AccountHandler{
		accounts:  accounts,
		ledger:    ledger,
		validator: services.NewValidationHelper(),
	}
}

// AccountRequest carries an account name. Names are trimmed and upper-cased.
type AccountRequest struct {
	AccountName string `json:"account_name" validate:"required,max=100" example:"icici"`
}

func (h *AccountHandler) Routes(r chi.Router) {
	r.Post("/", h.GetOrCreateAccount)
	r.Get("/", h.ListAccounts)
	r.Get("/by-name/{name}", h.GetAccountByName)
	r.Get("/{accountId}", h.GetAccount)
	r.Put("/{accountId}", h.RenameAccount)
	r.Delete("/{accountId}", h.DeleteAccount)
	r.Get("/{accountId}/entries", h.ListAccountEntries)
}

func (h *AccountHandler) decodeAccount(w http.ResponseWriter, r *http.Request) (AccountRequest, bool) {
	var req AccountRequest
	if !decodeJSON(w, r, &req) {
		return req, false
	}
	req.AccountName = strings.TrimSpace(req.AccountName)
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return req, false
	}
	return req, true
}

// GetOrCreateAccount returns the account with the given name, creating it if needed
// @Summary Get or create account
// @Description Returns the account holding the (upper-cased) name, creating it on first use
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body AccountRequest true "Account name"
// @Success 200 {object} models.Account
// @Failure 400 {object} services.ErrorResponse
// @Router /accounts [post]
func (h *AccountHandler) GetOrCreateAccount(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAccount(w, r)
	if !ok {
		return
	}

	acc, err := h.accounts.GetOrCreateAccount(r.Context(), req.AccountName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

// ListAccounts lists every account
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Success 200 {array} models.Account
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.GetAllAccounts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

// GetAccountByName looks an account up by name
// @Summary Get account by name
// @Tags Accounts
// @Produce json
// @Param name path string true "Account name, any case"
// @Success 200 {object} models.Account
// @Failure 404 {object} services.ErrorResponse
// @Router /accounts/by-name/{name} [get]
func (h *AccountHandler) GetAccountByName(w http.ResponseWriter, r *http.Request) {
	acc, err := h.accounts.GetAccountByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

// GetAccount returns one account
// @Summary Get account
// @Tags Accounts
// @Produce json
// @Param accountId path string true "Account ID"
// @Success 200 {object} models.Account
// @Failure 404 {object} services.ErrorResponse
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	acc, err := h.accounts.GetAccountByID(r.Context(), chi.URLParam(r, "accountId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

// RenameAccount changes an account's name
// @Summary Rename account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID"
// @Param request body AccountRequest true "New name"
// @Success 200 {object} models.Account
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /accounts/{accountId} [put]
func (h *AccountHandler) RenameAccount(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAccount(w, r)
	if !ok {
		return
	}

	acc, err := h.accounts.UpdateAccountName(r.Context(), chi.URLParam(r, "accountId"), req.AccountName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

// DeleteAccount removes an account without ledger entries
// @Summary Delete account
// @Tags Accounts
// @Param accountId path string true "Account ID"
// @Success 204
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /accounts/{accountId} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.DeleteAccount(r.Context(), chi.URLParam(r, "accountId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAccountEntries lists the ledger entries of one account
// @Summary List entries for account
// @Tags Accounts
// @Produce json
// @Param accountId path string true "Account ID"
// @Success 200 {array} models.FlattenedEntry
// @Failure 404 {object} services.ErrorResponse
// @Router /accounts/{accountId}/entries [get]
func (h *AccountHandler) ListAccountEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.GetEntriesForAccount(r.Context(), chi.URLParam(r, "accountId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
