package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestVerifyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockVerifier)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:   "success",
			target: "/auth/verify?token=valid-token",
			mockSetup: func(m *MockVerifier) {
				m.EXPECT().
					Verify(gomock.Any(), "valid-token").
					Return(true, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Account verified"},
		},
		{
			name:   "unknown or used token",
			target: "/auth/verify?token=stale-token",
			mockSetup: func(m *MockVerifier) {
				m.EXPECT().
					Verify(gomock.Any(), "stale-token").
					Return(false, nil)
			},
			expectedCode: 409,
			expectedBody: map[string]string{"error": "Invalid or already used verification token"},
		},
		{
			name:   "internal server error",
			target: "/auth/verify?token=valid-token",
			mockSetup: func(m *MockVerifier) {
				m.EXPECT().
					Verify(gomock.Any(), "valid-token").
					Return(false, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "missing token",
			target:       "/auth/verify",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "token query parameter is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockVerifier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewVerifyHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
