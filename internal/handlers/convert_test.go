package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeWithhamza1/financeflow/internal/handlers"
	"github.com/CodeWithhamza1/financeflow/internal/models"
	"github.com/CodeWithhamza1/financeflow/internal/services"
)

func TestConvertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConverter := handlers.NewMockCurrencyConverter(ctrl)
	handler := handlers.NewConvertHandler(mockConverter)

	tests := []struct {
		name      string
		target    string
		mockSetup func()
		wantCode  int
		wantBody  map[string]interface{}
	}{
		{
			name:   "success",
			target: "/api/currency/convert?from=USD&to=PKR&amount=100",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), 100.0, "USD", "PKR", false).
					Return(&models.Conversion{
						ConvertedAmount: 28350,
						Rate:            283.5,
						From:            "USD",
						To:              "PKR",
					}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"convertedAmount": float64(28350),
				"rate":            283.5,
				"from":            "USD",
				"to":              "PKR",
			},
		},
		{
			name:   "defaults_applied",
			target: "/api/currency/convert",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), 1.0, "USD", "USD", false).
					Return(&models.Conversion{
						ConvertedAmount: 1,
						Rate:            1,
						From:            "USD",
						To:              "USD",
					}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"convertedAmount": float64(1),
				"rate":            float64(1),
				"from":            "USD",
				"to":              "USD",
			},
		},
		{
			name:   "refresh_flag_forwarded",
			target: "/api/currency/convert?from=USD&to=EUR&amount=10&refresh=true",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), 10.0, "USD", "EUR", true).
					Return(&models.Conversion{
						ConvertedAmount: 8.5,
						Rate:            0.85,
						From:            "USD",
						To:              "EUR",
					}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"convertedAmount": 8.5,
				"rate":            0.85,
				"from":            "USD",
				"to":              "EUR",
			},
		},
		{
			name:      "invalid_amount",
			target:    "/api/currency/convert?amount=abc",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  map[string]interface{}{"error": "Invalid amount"},
		},
		{
			name:      "negative_amount",
			target:    "/api/currency/convert?amount=-5",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  map[string]interface{}{"error": "Invalid amount"},
		},
		{
			name:   "unsupported_currency_names_code",
			target: "/api/currency/convert?from=USD&to=ZZZ&amount=100",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), 100.0, "USD", "ZZZ", false).
					Return(nil, &services.UnsupportedCurrencyError{Code: "ZZZ"})
			},
			wantCode: http.StatusBadRequest,
			wantBody: map[string]interface{}{"error": "Invalid currency code: ZZZ"},
		},
		{
			name:   "upstream_failure_is_generic",
			target: "/api/currency/convert?from=USD&to=EUR",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), 1.0, "USD", "EUR", false).
					Return(nil, assert.AnError)
			},
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]interface{}{"error": "Failed to convert currency"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
