package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeWithhamza1/financeflow/internal/handlers"
)

func TestCurrencyPreferenceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChanger := handlers.NewMockCurrencyChanger(ctrl)
	handler := handlers.NewCurrencyPreferenceHandler(mockChanger)

	tests := []struct {
		name      string
		body      string
		mockSetup func()
		wantCode  int
		wantBody  map[string]interface{}
	}{
		{
			name: "success",
			body: `{"currency":"EUR"}`,
			mockSetup: func() {
				mockChanger.EXPECT().
					ChangeCurrency(gomock.Any(), "EUR").
					Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"message":  "Currency preference updated",
				"currency": "EUR",
			},
		},
		{
			name:      "invalid_body",
			body:      `not json`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  map[string]interface{}{"error": "Invalid currency code"},
		},
		{
			name:      "missing_currency",
			body:      `{}`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  map[string]interface{}{"error": "Invalid currency code"},
		},
		{
			name: "failed_refresh_is_reported",
			body: `{"currency":"EUR"}`,
			mockSetup: func() {
				mockChanger.EXPECT().
					ChangeCurrency(gomock.Any(), "EUR").
					Return(assert.AnError)
			},
			wantCode: http.StatusBadGateway,
			wantBody: map[string]interface{}{"error": "Failed to refresh exchange rates"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/currency/preference", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
