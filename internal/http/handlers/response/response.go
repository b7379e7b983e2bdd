package response

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type errorResponse struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data,omitempty"`
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Message: msg, StatusCode: status}, status)
}

// RenderValidationError renders field-level validation failures as the
// error data, keyed by field name.
func RenderValidationError(rw http.ResponseWriter, err error) {
	status := http.StatusUnprocessableEntity
	res := errorResponse{Message: "validation failed", StatusCode: status}
	if fieldErrors, ok := err.(validation.Errors); ok {
		res.Data = fieldErrors
	} else {
		res.Message = err.Error()
	}
	Render(rw, res, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
