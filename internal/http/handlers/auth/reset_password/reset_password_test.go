package resetpassword

import (
	"accounts/internal/core/domain/user"
	service "accounts/internal/core/services/reset_password"
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const LOGIN_URL = "https://example.com/login"

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	return service.Result{UserID: 1}, nil
}

func multipartBody(fields map[string]string) (string, string) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for name, value := range fields {
		_ = w.WriteField(name, value)
	}
	_ = w.Close()
	return buf.String(), w.FormDataContentType()
}

func TestResetPasswordHandler(t *testing.T) {
	multipartForm, multipartContentType := multipartBody(map[string]string{
		"token":    "secret",
		"Password": "new-password",
	})
	cases := []struct {
		id             string
		body           string
		contentType    string
		serviceErr     error
		expectedStatus int
		expectedBody   string
		expectedCalled bool
	}{
		{
			id:             "success",
			body:           `{"token": "secret", "password": "new-password"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message": "Password reset successful"}`,
			expectedCalled: true,
		},
		{
			id:             "unknown-token",
			body:           `{"token": "secret", "password": "new-password"}`,
			serviceErr:     user.ErrPasswordResetTokenDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error": "invalid or expired token"}`,
			expectedCalled: true,
		},
		{
			id:             "expired-token",
			body:           `{"token": "secret", "password": "new-password"}`,
			serviceErr:     user.ErrPasswordResetTokenExpired,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error": "invalid or expired token"}`,
			expectedCalled: true,
		},
		{
			id:             "store-failure",
			body:           `{"token": "secret", "password": "new-password"}`,
			serviceErr:     user.NewStoreFailure(errors.New("db")),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error": "internal error"}`,
			expectedCalled: true,
		},
		{
			id:             "urlencoded-form",
			body:           url.Values{"token": {"secret"}, "password": {"new-password"}}.Encode(),
			contentType:    "application/x-www-form-urlencoded",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message": "Password reset successful"}`,
			expectedCalled: true,
		},
		{
			id:             "multipart-form",
			body:           multipartForm,
			contentType:    multipartContentType,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message": "Password reset successful"}`,
			expectedCalled: true,
		},
		{
			id:             "short-password",
			body:           `{"token": "secret", "password": "short"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"password": "the length must be between 8 and 256"}`,
		},
		{
			id:             "missing-token",
			body:           `{"password": "new-password"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"token": "cannot be blank"}`,
		},
		{
			id:             "invalid-json",
			body:           `[]`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "invalid request data"}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub, LOGIN_URL)
			req := httptest.NewRequest(http.MethodPut, "/auth/password_reset", strings.NewReader(testcase.body))
			if testcase.contentType != "" {
				req.Header.Set("Content-Type", testcase.contentType)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, testcase.expectedStatus, rec.Code)
			assert.JSONEq(t, testcase.expectedBody, rec.Body.String())
			if testcase.expectedCalled {
				assert.Equal(t, user.PasswordResetSecret("secret"), stub.input.Secret)
				assert.Equal(t, user.RawPassword("new-password"), stub.input.NewPassword)
			} else {
				assert.Nil(t, stub.input)
			}
		})
	}
}

func TestNotFoundAndExpiredAreIndistinguishable(t *testing.T) {
	bodies := make([]string, 0, 2)
	for _, err := range []error{user.ErrPasswordResetTokenDoesNotExist, user.ErrPasswordResetTokenExpired} {
		handler := New(&stubService{err: err}, LOGIN_URL)
		req := httptest.NewRequest(
			http.MethodPut,
			"/auth/password_reset",
			strings.NewReader(`{"token": "secret", "password": "new-password"}`),
		)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}
	assert.Equal(t, bodies[0], bodies[1])
}

func TestFormRequestFromBrowserIsRedirected(t *testing.T) {
	stub := &stubService{}
	handler := New(stub, LOGIN_URL)
	form := url.Values{"token": {"secret"}, "Password": {"new-password"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/password_reset", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LOGIN_URL, rec.Header().Get("Location"))
	assert.Equal(t, user.RawPassword("new-password"), stub.input.NewPassword)
}
