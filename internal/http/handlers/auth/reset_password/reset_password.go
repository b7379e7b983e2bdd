package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/domain/user"
	"mapacademy/internal/core/services"
	resetpassword "mapacademy/internal/core/services/reset_password"
	"mapacademy/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	UserID   int64  `json:"userId"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.UserID, validation.Required),
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationError(rw, err)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		resetpassword.Input{
			UserID:      user.ID(input.UserID),
			Token:       user.PasswordResetToken(input.Token),
			NewPassword: user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, user.ErrPasswordResetTokenExpired) {
		response.RenderError(rw, "password reset token is expired", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, struct{}{}, http.StatusOK)
}
