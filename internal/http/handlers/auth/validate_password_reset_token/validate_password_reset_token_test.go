package validatepasswordresettoken

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mapacademy/internal/core/domain/user"
	service "mapacademy/internal/core/services/validate_password_reset_token"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.UserID = user.ID(1)
	result.Token = input.Token
	return result, nil
}

func TestValidatePasswordResetTokenHandler(t *testing.T) {
	cases := []struct {
		id             string
		token          string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			token:          "test-reset-token",
			expectedStatus: http.StatusOK,
		},
		{
			id:             "expired token",
			token:          "expired-token",
			serviceErr:     user.ErrPasswordResetTokenExpired,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}

			router := chi.NewRouter()
			router.Method(http.MethodGet, "/auth/password_reset/{token}", New(stub))

			req := httptest.NewRequest(http.MethodGet, "/auth/password_reset/"+testcase.token, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, testcase.expectedStatus, rec.Code)
			if testcase.expectedStatus == http.StatusOK {
				assert.Equal(t, user.PasswordResetToken(testcase.token), stub.input.Token)
				assert.Contains(t, rec.Body.String(), testcase.token)
			}
		})
	}
}
