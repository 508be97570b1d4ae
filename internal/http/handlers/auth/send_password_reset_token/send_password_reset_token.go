package sendpasswordresettoken

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	service "accounts/internal/core/services/send_password_reset_token"
	"accounts/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Message is returned whether the account exists or not.
const Message = "Password reset email sent"

type Handler struct {
	service     services.Service[service.Input, service.Result]
	redirectURL string
}

// New returns a handler issuing password reset tokens.
// Browser clients are redirected to redirectURL when it is not empty.
func New(
	service services.Service[service.Input, service.Result],
	redirectURL string,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, redirectURL: redirectURL}
}

type Input struct {
	Email string `json:"email"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i *Input) FromForm(r *http.Request) error {
	if err := response.ParseForm(r); err != nil {
		return err
	}
	i.Email = r.PostFormValue("Email")
	if i.Email == "" {
		i.Email = r.PostFormValue("email")
	}
	return nil
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	var err error
	if response.IsForm(r) {
		err = input.FromForm(r)
	} else {
		err = input.FromJSON(r.Body)
	}
	if err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(
		r.Context(),
		service.Input{Email: c.NewEmail(input.Email)},
	)
	switch {
	case err == nil, errors.Is(err, user.ErrUserDoesNotExist):
		response.RenderMessageOrRedirect(rw, r, Message, h.redirectURL)
	case errors.Is(err, user.ErrPasswordResetTokenDeliveryFailed):
		response.RenderError(rw, "could not send email, try again later", http.StatusBadGateway)
	default:
		response.RenderInternalError(rw)
	}
}
