package checkpasswordresettoken

import (
	"accounts/internal/core/domain/user"
	service "accounts/internal/core/services/check_password_reset_token"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

var ExpiresAt = time.Date(2020, 6, 6, 16, 30, 30, 0, time.UTC)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	return service.Result{ExpiresAt: ExpiresAt}, nil
}

func TestCheckPasswordResetTokenHandler(t *testing.T) {
	cases := []struct {
		id             string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "valid",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"expires_at": "2020-06-06T16:30:30Z"}`,
		},
		{
			id:             "unknown",
			serviceErr:     user.ErrPasswordResetTokenDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error": "invalid or expired token"}`,
		},
		{
			id:             "expired",
			serviceErr:     user.ErrPasswordResetTokenExpired,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error": "invalid or expired token"}`,
		},
		{
			id:             "store-failure",
			serviceErr:     user.ErrStoreFailure,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error": "internal error"}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			router := chi.NewRouter()
			router.Get("/auth/password_reset/{token}", New(stub).ServeHTTP)
			req := httptest.NewRequest(http.MethodGet, "/auth/password_reset/secret", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, testcase.expectedStatus, rec.Code)
			assert.JSONEq(t, testcase.expectedBody, rec.Body.String())
			assert.Equal(t, user.PasswordResetSecret("secret"), stub.input.Secret)
		})
	}
}
