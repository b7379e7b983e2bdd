package validatepasswordresettoken

import (
	"errors"
	"net/http"

	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/domain/user"
	"mapacademy/internal/core/services"
	service "mapacademy/internal/core/services/validate_password_reset_token"
	"mapacademy/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	UserID int64  `json:"userId"`
	Token  string `json:"token"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		response.RenderError(rw, "password reset token is expired", http.StatusNotFound)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{Token: user.PasswordResetToken(token)},
	)
	if errors.Is(err, user.ErrPasswordResetTokenExpired) {
		response.RenderError(rw, "password reset token is expired", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{UserID: int64(result.UserID), Token: string(result.Token)},
		http.StatusOK,
	)
}
