package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bistro/config"
	"bistro/infras/jwt"
	jwtMocks "bistro/infras/jwt/mocks"
	"bistro/infras/otel/mocks"
	"bistro/shared/constant"
	"bistro/transport/http/middleware"
)

func TestAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mw := middleware.NewAuthRoleMiddleware(mockJWT, mocks.NewOtel(), nil, &config.Config{})

	tests := []struct {
		name        string
		claims      *jwt.Claims
		wantCode    int
		wantReached bool
	}{
		{
			name: "valid claims pass through",
			claims: &jwt.Claims{
				UserID:  "user-id-1",
				Email:   "diner@example.com",
				Role:    "customer",
				TokenID: "token-id-1",
			},
			wantCode:    http.StatusOK,
			wantReached: true,
		},
		{
			name:        "empty user id claim is rejected",
			claims:      &jwt.Claims{Email: "diner@example.com"},
			wantCode:    http.StatusUnauthorized,
			wantReached: false,
		},
		{
			name:        "empty email claim is rejected",
			claims:      &jwt.Claims{UserID: "user-id-1"},
			wantCode:    http.StatusUnauthorized,
			wantReached: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockJWT.EXPECT().
				ValidateToken("token", jwt.AccessToken).
				Return(tt.claims, nil)

			reached := false

			router := chi.NewRouter()
			router.Use(mw.Auth)
			router.Get("/v1/orders", func(writer http.ResponseWriter, _ *http.Request) {
				reached = true
				writer.WriteHeader(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
			request.Header.Set(constant.RequestHeaderAuthorization, "Bearer token")
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantReached, reached)
		})
	}
}
