package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/services"
	"github.com/expensemanager/backend/internal/storage/memory"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.New()
	accounts := services.NewAccountService(store)
	ledger := services.NewLedgerService(store, store)

	r := chi.NewRouter()
	r.Route("/accounts", NewAccountHandler(accounts, ledger).Routes)
	r.Route("/periods", NewPeriodHandler(accounts).Routes)
	r.Route("/entries", NewEntryHandler(ledger).Routes)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const septemberEntry = `{
	"account_name": "icici",
	"month": "september",
	"year": 2025,
	"starting_balance": 1000.00,
	"current_balance": 1200.00,
	"current_credit": 200.00
}`

func TestAccountHandler(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/accounts", `{"account_name":"  icici "}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody[models.Account](t, rec)
	assert.Equal(t, "ICICI", created.Name)
	assert.NotEmpty(t, created.ID)

	t.Run("get or create is idempotent", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/accounts", `{"account_name":"Icici"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created.ID, decodeBody[models.Account](t, rec).ID)
	})

	t.Run("lookups", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/accounts/by-name/icici", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created.ID, decodeBody[models.Account](t, rec).ID)

		rec = do(t, h, http.MethodGet, "/accounts/"+created.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ICICI", decodeBody[models.Account](t, rec).Name)

		rec = do(t, h, http.MethodGet, "/accounts/by-name/hdfc", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(t, h, http.MethodGet, "/accounts/missing", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(t, h, http.MethodGet, "/accounts", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[[]models.Account](t, rec), 1)
	})

	t.Run("bad bodies", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"not json", `{`},
			{"unknown field", `{"account_name":"x","extra":1}`},
			{"two objects", `{"account_name":"x"}{"account_name":"y"}`},
			{"blank name", `{"account_name":"   "}`},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := do(t, h, http.MethodPost, "/accounts", tc.body)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.NotEmpty(t, decodeBody[services.ErrorResponse](t, rec).Error)
			})
		}
	})

	t.Run("rename conflict", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/accounts", `{"account_name":"hdfc"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		hdfc := decodeBody[models.Account](t, rec)

		rec = do(t, h, http.MethodPut, "/accounts/"+hdfc.ID, `{"account_name":"icici"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)

		rec = do(t, h, http.MethodPut, "/accounts/"+hdfc.ID, `{"account_name":"axis"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "AXIS", decodeBody[models.Account](t, rec).Name)

		rec = do(t, h, http.MethodDelete, "/accounts/"+hdfc.ID, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		rec = do(t, h, http.MethodDelete, "/accounts/"+hdfc.ID, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPeriodHandler(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/periods", `{"month":"september","year":2025}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p := decodeBody[models.Period](t, rec)
	assert.Equal(t, models.September, p.Month)
	assert.Equal(t, 2025, p.Year)

	rec = do(t, h, http.MethodGet, "/periods/lookup?month=SEPTEMBER&year=2025", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, p.ID, decodeBody[models.Period](t, rec).ID)

	rec = do(t, h, http.MethodGet, "/periods/lookup?month=October&year=2025", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/periods/lookup?month=October&year=soon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	t.Run("validation", func(t *testing.T) {
		for _, body := range []string{
			`{"month":"Smarch","year":2025}`,
			`{"month":"May","year":1999}`,
			`{"month":"May","year":2101}`,
		} {
			rec := do(t, h, http.MethodPost, "/periods", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.NotEmpty(t, decodeBody[services.ErrorResponse](t, rec).Details, body)
		}
	})

	rec = do(t, h, http.MethodPut, "/periods/"+p.ID, `{"month":"October","year":2025}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.October, decodeBody[models.Period](t, rec).Month)

	rec = do(t, h, http.MethodGet, "/periods", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Period](t, rec), 1)

	rec = do(t, h, http.MethodDelete, "/periods/"+p.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/periods/"+p.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEntryHandler(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/entries", septemberEntry)
	assert.Equal(t, http.StatusNotFound, rec.Code, "account must exist first")

	rec = do(t, h, http.MethodPost, "/accounts", `{"account_name":"icici"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	account := decodeBody[models.Account](t, rec)

	rec = do(t, h, http.MethodPost, "/entries", septemberEntry)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	entry := decodeBody[models.FlattenedEntry](t, rec)
	assert.Equal(t, "ICICI", entry.AccountName)
	assert.Equal(t, models.September, entry.Month)
	assert.Equal(t, "1000", entry.BalanceAfterCredit.String())
	assert.Equal(t, "0", entry.TotalSpent.String())

	t.Run("duplicate period", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/entries", septemberEntry)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("string balances", func(t *testing.T) {
		body := `{"account_name":"icici","month":"October","year":2025,
			"starting_balance":"1200.50","current_balance":"900.25","current_credit":"0"}`
		rec := do(t, h, http.MethodPost, "/entries", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		got := decodeBody[models.FlattenedEntry](t, rec)
		assert.Equal(t, "900.25", got.BalanceAfterCredit.String())
		assert.Equal(t, "300.25", got.TotalSpent.String())
	})

	t.Run("missing balance", func(t *testing.T) {
		body := `{"account_name":"icici","month":"May","year":2025,"starting_balance":1,"current_balance":1}`
		rec := do(t, h, http.MethodPost, "/entries", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody[services.ErrorResponse](t, rec).Details, "CurrentCredit")
	})

	rec = do(t, h, http.MethodGet, "/entries/"+entry.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entry.ID, decodeBody[models.FlattenedEntry](t, rec).ID)

	rec = do(t, h, http.MethodGet, "/accounts/"+account.ID+"/entries", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.FlattenedEntry](t, rec), 2)

	edit := strings.Replace(septemberEntry, "1200.00", "1500.00", 1)
	rec = do(t, h, http.MethodPut, "/entries/"+entry.ID, edit)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "1300", decodeBody[models.FlattenedEntry](t, rec).BalanceAfterCredit.String())

	rec = do(t, h, http.MethodDelete, "/accounts/"+account.ID, "")
	assert.Equal(t, http.StatusConflict, rec.Code, "account with entries")

	rec = do(t, h, http.MethodDelete, "/entries/"+entry.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodDelete, "/entries/"+entry.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/entries", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.FlattenedEntry](t, rec), 1)
}

func TestHealthHandler(t *testing.T) {
	started := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	hh := NewHealthHandler("1.0.0", started)
	hh.now = func() time.Time { return started.Add(26*time.Hour + 3*time.Minute + 4*time.Second) }

	rec := httptest.NewRecorder()
	hh.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[HealthResponse](t, rec)
	assert.Equal(t, HealthResponse{
		Status:    "healthy",
		Version:   "1.0.0",
		StartTime: "2025-09-01T10:00:00Z",
		Uptime:    "26:03:04",
	}, got)
}

func TestWelcome(t *testing.T) {
	rec := httptest.NewRecorder()
	Welcome(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the Expense Manager Service!", decodeBody[map[string]string](t, rec)["message"])
}
