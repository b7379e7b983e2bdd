package sendpasswordresettoken

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mapacademy/internal/core/domain/user"
	service "mapacademy/internal/core/services/send_password_reset_token"

	"github.com/stretchr/testify/assert"
)

const RESET_TOKEN = "test-reset-token"

type stubService struct {
	err error
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	result.User = user.User{ID: user.ID(1), Email: input.Email}
	result.Token = user.PasswordResetToken(RESET_TOKEN)
	return result, nil
}

func TestSendPasswordResetTokenHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"email": "test@test.test"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "invalid email",
			body:           `{"email": "not-an-email"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "unknown email",
			body:           `{"email": "test@test.test"}`,
			serviceErr:     user.ErrUserDoesNotExist,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			handler := New(&stubService{err: testcase.serviceErr}, false)

			req := httptest.NewRequest(
				http.MethodPost,
				"/auth/password_reset/token",
				strings.NewReader(testcase.body),
			)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, testcase.expectedStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("x-test-password-reset-token"))
		})
	}
}

func TestTokenIsExposedInTestMode(t *testing.T) {
	handler := New(&stubService{}, true)

	req := httptest.NewRequest(
		http.MethodPost,
		"/auth/password_reset/token",
		strings.NewReader(`{"email": "test@test.test"}`),
	)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, RESET_TOKEN, rec.Header().Get("x-test-password-reset-token"))
}
