//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/tests/common/builder"
	"facility-booking/tests/common/httptest"
	"facility-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/register"
	loginURL    = "/login"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegister() {
	s.Run("success: organization member can register", func() {
		req := builder.NewUserBuilder().WithEmail("fresh@alkhidmat.org").BuildRegisterDTO()

		var response resdto.RegisterResponse
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, req, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("registration successful", response.Message)
		s.NotZero(response.UserID)
	})

	s.Run("error: foreign email domain is rejected", func() {
		req := builder.NewUserBuilder().WithEmail("outsider@example.com").BuildRegisterDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "organization domain")
	})

	s.Run("error: duplicate email is rejected with 409", func() {
		req := builder.NewUserBuilder().WithEmail("twice@alkhidmat.org").BuildRegisterDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, req, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already exists")
	})

	s.Run("error: email addresses are case-insensitive for uniqueness", func() {
		req := builder.NewUserBuilder().WithEmail("mixed@alkhidmat.org").BuildRegisterDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, req, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		upper := builder.NewUserBuilder().WithEmail("MIXED@alkhidmat.org").BuildRegisterDTO()
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, upper, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already exists")
	})
}

func (s *authSuite) TestLogin() {
	s.Run("success: returns a usable bearer token", func() {
		u := builder.NewUserBuilder().WithEmail("member@alkhidmat.org")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, u.BuildRegisterDTO(), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		var response resdto.LoginResponse
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, u.BuildLoginDTO(), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("login successful", response.Message)
		s.NotEmpty(response.AccessToken)
		s.Equal("user", response.Role)
	})

	s.Run("error: wrong password yields 401 without detail", func() {
		u := builder.NewUserBuilder().WithEmail("secure@alkhidmat.org")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, u.BuildRegisterDTO(), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		bad := u.WithPassword("wrong-password").BuildLoginDTO()
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid email or password")
	})

	s.Run("error: unknown account yields the same 401", func() {
		req := builder.NewUserBuilder().WithEmail("nobody@alkhidmat.org").BuildLoginDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid email or password")
	})
}
