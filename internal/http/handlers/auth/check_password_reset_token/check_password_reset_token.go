package checkpasswordresettoken

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	service "accounts/internal/core/services/check_password_reset_token"
	"accounts/internal/http/handlers/response"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" || len(token) > 1024 {
		response.RenderInvalidPasswordResetToken(rw)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Secret: user.PasswordResetSecret(token)})
	switch {
	case err == nil:
		response.Render(rw, response.PasswordResetToken{ExpiresAt: result.ExpiresAt}, http.StatusOK)
	case errors.Is(err, user.ErrPasswordResetTokenDoesNotExist), errors.Is(err, user.ErrPasswordResetTokenExpired):
		response.RenderInvalidPasswordResetToken(rw)
	default:
		response.RenderInternalError(rw)
	}
}
