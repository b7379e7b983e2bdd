package signupwithemail

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	c "mapacademy/internal/core/domain/common"
	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/domain/user"
	"mapacademy/internal/core/services"
	signupwithemail "mapacademy/internal/core/services/sign_up_with_email"
	"mapacademy/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[signupwithemail.Input, signupwithemail.Result]
}

func New(
	service services.Service[signupwithemail.Input, signupwithemail.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
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

	result, err := h.service.Run(
		r.Context(),
		signupwithemail.Input{
			Email:    c.NewEmail(input.Email),
			Password: user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, u, http.StatusOK)
}
