package resetpassword

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	resetpassword "accounts/internal/core/services/reset_password"
	"accounts/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

const Message = "Password reset successful"

type Handler struct {
	service     services.Service[resetpassword.Input, resetpassword.Result]
	redirectURL string
}

// New returns a handler redeeming password reset tokens.
// Browser clients are redirected to redirectURL when it is not empty.
func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
	redirectURL string,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, redirectURL: redirectURL}
}

type Input struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i *Input) FromForm(r *http.Request) error {
	if err := response.ParseForm(r); err != nil {
		return err
	}
	i.Token = r.PostFormValue("token")
	i.Password = r.PostFormValue("Password")
	if i.Password == "" {
		i.Password = r.PostFormValue("password")
	}
	return nil
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
		validation.Field(&i.Password, validation.Required, validation.Length(8, 256)),
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
		resetpassword.Input{
			Secret:      user.PasswordResetSecret(input.Token),
			NewPassword: user.RawPassword(input.Password),
		},
	)
	switch {
	case err == nil:
		response.RenderMessageOrRedirect(rw, r, Message, h.redirectURL)
	case errors.Is(err, user.ErrPasswordResetTokenDoesNotExist), errors.Is(err, user.ErrPasswordResetTokenExpired):
		response.RenderInvalidPasswordResetToken(rw)
	default:
		response.RenderInternalError(rw)
	}
}
