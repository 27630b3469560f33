package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nefdev/ecommerce-api/internal/models"
	"github.com/nefdev/ecommerce-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validBody := RegisterRequest{
		Username:  "john",
		Email:     "john@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Password:  "secret123",
	}

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		rawBody      string // when set, sent as-is (to simulate invalid JSON)
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:    "success",
			reqBody: validBody,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "John", "Doe", "secret123").
					Return(&models.UserDB{UserID: 1, Username: "john"}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"message": "User registered successfully, check your email to verify the account"},
		},
		{
			name:    "user already exists",
			reqBody: validBody,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "John", "Doe", "secret123").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Username or email already exists"},
		},
		{
			name:    "email send failure",
			reqBody: validBody,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "John", "Doe", "secret123").
					Return(nil, services.ErrEmailSendFailure)
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Verification email could not be sent"},
		},
		{
			name:    "internal server error",
			reqBody: validBody,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "John", "Doe", "secret123").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name: "missing fields",
			reqBody: RegisterRequest{
				Username: "john",
				Password: "secret123",
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "all fields are required"},
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(bodyBytes))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
