package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type testEntryRequest struct {
	AccountName     string      `validate:"required,min=1,max=100"`
	Month           string      `validate:"required,month"`
	Year            int         `validate:"required,gte=2000,lte=2100"`
	StartingBalance json.Number `validate:"required,numeric"`
}

func TestValidationHelper_ValidateStruct(t *testing.T) {
	vh := NewValidationHelper()

	t.Run("valid struct", func(t *testing.T) {
		valid := testEntryRequest{
			AccountName:     "ICICI",
			Month:           "september",
			Year:            2025,
			StartingBalance: "1000.50",
		}

		err := vh.ValidateStruct(&valid)
		assert.NoError(t, err)
	})

	t.Run("invalid struct - missing and out of range", func(t *testing.T) {
		invalid := testEntryRequest{
			Month:           "Smarch",
			Year:            1999,
			StartingBalance: "12abc",
		}

		err := vh.ValidateStruct(&invalid)
		assert.Error(t, err)

		validationErrors, ok := err.(validator.ValidationErrors)
		assert.True(t, ok)
		assert.Len(t, validationErrors, 4)
	})

	t.Run("month tag", func(t *testing.T) {
		for _, month := range []string{"January", "DECEMBER", "may"} {
			req := testEntryRequest{AccountName: "A", Month: month, Year: 2025, StartingBalance: "1"}
			assert.NoError(t, vh.ValidateStruct(&req), month)
		}

		req := testEntryRequest{AccountName: "A", Month: "Sept", Year: 2025, StartingBalance: "1"}
		err := vh.ValidateStruct(&req)
		validationErrors, ok := err.(validator.ValidationErrors)
		assert.True(t, ok)
		assert.Len(t, validationErrors, 1)
		assert.Equal(t, "Month", validationErrors[0].Field())
		assert.Equal(t, "month", validationErrors[0].Tag())
	})

	t.Run("year bounds are inclusive", func(t *testing.T) {
		for _, year := range []int{2000, 2100} {
			req := testEntryRequest{AccountName: "A", Month: "May", Year: year, StartingBalance: "0"}
			assert.NoError(t, vh.ValidateStruct(&req))
		}
		req := testEntryRequest{AccountName: "A", Month: "May", Year: 2101, StartingBalance: "0"}
		assert.Error(t, vh.ValidateStruct(&req))
	})
}

func TestSendErrorResponse(t *testing.T) {
	t.Run("error response without validation errors", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendErrorResponse(w, "Something went wrong", http.StatusInternalServerError, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Something went wrong", response.Error)
		assert.Nil(t, response.Details)
	})

	t.Run("error response with validation errors", func(t *testing.T) {
		vh := NewValidationHelper()
		invalid := testEntryRequest{Month: "Nope", Year: 2025, StartingBalance: "1"}

		validationErr := vh.ValidateStruct(&invalid)
		assert.Error(t, validationErr)

		w := httptest.NewRecorder()
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, validationErr)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Validation failed", response.Error)
		assert.Contains(t, response.Details, "AccountName")
		assert.Contains(t, response.Details, "Month")
		assert.Equal(t, "Field Validation Failed on 'month' tag", response.Details["Month"])
	})

	t.Run("non-validation error adds no details", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendErrorResponse(w, "Invalid request", http.StatusBadRequest, errors.New("boom"))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Invalid request", response.Error)
		assert.Nil(t, response.Details)
	})
}

func TestNewValidationHelper(t *testing.T) {
	vh := NewValidationHelper()
	assert.NotNil(t, vh)
	assert.NotNil(t, vh.validator)
}
