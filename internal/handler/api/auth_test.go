//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/handler/api"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"
	"facility-booking/tests/common/builder"
	"facility-booking/tests/common/httptest"
	"facility-booking/tests/common/testutil"
	commandsmock "facility-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/register", s.handler.Register)
	s.router.POST("/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/register"
	reqBody := builder.NewUserBuilder().BuildRegisterDTO()

	s.Run("success: returns 201 Created with the new user id", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), reqBody.ToInput()).
			Return(int64(5), nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("registration successful", response.Message)
		s.Equal(int64(5), response.UserID)
	})

	s.Run("error: 400 Bad Request for an address outside the organization", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(int64(0), commands.ErrEmailDomainNotAllowed).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "email must belong to the organization domain")
	})

	s.Run("error: 409 Conflict for a duplicate email", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(int64(0), commands.ErrEmailAlreadyExists).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already exists")
	})

	s.Run("error: 400 Bad Request surfaces domain validation verbatim", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(int64(0), errs.Mark(errs.New("full name is required"), errs.ErrValidation)).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "full name is required")
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing full_name", mutate: testutil.Field("full_name", nil)},
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "password below 8 chars", mutate: testutil.Field("password", strings.Repeat("a", 7))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/login"
	reqBody := builder.NewUserBuilder().BuildLoginDTO()

	s.Run("success: returns 200 OK with the bearer token and identity", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), commands.LoginInput{Email: reqBody.Email, Password: reqBody.Password}).
			Return(&commands.LoginResult{
				UserID:   1,
				FullName: "Test User",
				Role:     user.RoleUser,
				Token:    "signed.jwt.token",
			}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("login successful", response.Message)
		s.Equal("signed.jwt.token", response.AccessToken)
		s.Equal("Test User", response.FullName)
		s.Equal("user", response.Role)
	})

	s.Run("error: 401 Unauthorized for bad credentials", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid email or password")
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "nope")},
			{name: "missing password", mutate: testutil.Field("password", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 500 Internal Server Error on unexpected failures", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("store unavailable")).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
