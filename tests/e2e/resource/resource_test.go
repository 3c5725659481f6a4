//go:build e2e

package resource_test

import (
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"strings"
	"testing"

	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/usecase/queries"
	"facility-booking/tests/common/builder"
	"facility-booking/tests/common/httptest"
	"facility-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/register"
	loginURL    = "/login"
	roomsURL    = "/rooms"
	vehiclesURL = "/vehicles"
)

type resourceSuite struct {
	e2e.SharedSuite
}

func TestResourceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(resourceSuite))
}

// loginAsAdmin registers an account, promotes it before login so the issued
// token carries the admin role, and returns the bearer token.
func (s *resourceSuite) loginAsAdmin(email string) string {
	s.T().Helper()

	u := builder.NewUserBuilder().WithEmail(email)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, u.BuildRegisterDTO(), "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	_, err := s.DB.Exec(context.Background(), `UPDATE users SET role = 'admin' WHERE email = $1`, email)
	s.Require().NoError(err)

	var login resdto.LoginResponse
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, u.BuildLoginDTO(), "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &login)
	s.Require().NotEmpty(login.AccessToken)

	return login.AccessToken
}

// performForm submits an application/x-www-form-urlencoded body, the no-photo
// variant of the multipart create endpoints.
func (s *resourceSuite) performForm(method, path string, form url.Values, token string) *nethttptest.ResponseRecorder {
	s.T().Helper()

	req := nethttptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := nethttptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *resourceSuite) TestCreateRoom() {
	s.Run("room without a photo is stored and listed", func() {
		token := s.loginAsAdmin("facilities@alkhidmat.org")

		rec := s.performForm(http.MethodPost, roomsURL, url.Values{
			"room_name": {"Plain Room"},
			"capacity":  {"10"},
		}, token)

		var created resdto.CreateRoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal("room created successfully", created.Message)
		s.NotZero(created.Room.RoomID)
		s.Nil(created.Room.PhotoURL)

		var rooms []*queries.RoomView
		rec2 := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, roomsURL, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec2, http.StatusOK, &rooms)
		s.Require().NotEmpty(rooms)
	})

	s.Run("room with an external photo URL keeps it verbatim", func() {
		token := s.loginAsAdmin("curator@alkhidmat.org")

		rec := s.performForm(http.MethodPost, roomsURL, url.Values{
			"room_name": {"Pictured Room"},
			"capacity":  {"4"},
			"photo_url": {"https://cdn.example.com/room.png"},
		}, token)

		var created resdto.CreateRoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Require().NotNil(created.Room.PhotoURL)
		s.Equal("https://cdn.example.com/room.png", *created.Room.PhotoURL)
	})

	s.Run("creation requires the admin role", func() {
		rec := s.performForm(http.MethodPost, roomsURL, url.Values{
			"room_name": {"Locked Room"},
			"capacity":  {"2"},
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *resourceSuite) TestCreateVehicle() {
	s.Run("vehicle without a photo is stored", func() {
		token := s.loginAsAdmin("fleet@alkhidmat.org")

		rec := s.performForm(http.MethodPost, vehiclesURL, url.Values{
			"vehicle_name": {"Plain Van"},
			"plate_no":     {"LEH-3141"},
			"seats":        {"12"},
		}, token)

		var created resdto.CreateVehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal("vehicle created successfully", created.Message)
		s.NotZero(created.Vehicle.VehicleID)
		s.Nil(created.Vehicle.PhotoURL)
	})
}
