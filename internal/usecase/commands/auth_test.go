//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/jwt"
	"facility-booking/internal/pkg/password"
	"facility-booking/internal/usecase/commands"
	"facility-booking/tests/common/builder"
	commandsmock "facility-booking/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testEmailDomain = "alkhidmat.org"

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	users    *commandsmock.MockUserRepository
	tx       *commandsmock.MockTx
	commands commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = commandsmock.NewMockUserRepository(s.ctrl)
	s.tx = commandsmock.NewMockTx(s.ctrl)
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()

	jwtService := jwt.NewService("test-secret", time.Hour)
	s.commands = commands.NewAuthCommands(&stubUow{tx: s.tx}, jwtService, testEmailDomain)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.Run("success: stores hashed password and default role", func() {
		input := builder.NewUserBuilder().BuildRegisterInput()

		s.users.EXPECT().
			Create(gomock.Any(), "Test User", "test.user@alkhidmat.org", gomock.Any(), user.RoleUser).
			DoAndReturn(func(_ context.Context, _, _, passwordHash string, _ user.Role) (int64, error) {
				s.NoError(password.ComparePassword(passwordHash, input.Password))
				s.NotEqual(input.Password, passwordHash)
				return 11, nil
			})

		id, err := s.commands.Register(context.Background(), input)
		s.Require().NoError(err)
		s.Equal(int64(11), id)
	})

	s.Run("error: foreign email domain rejected before any write", func() {
		input := builder.NewUserBuilder().WithEmail("someone@example.com").BuildRegisterInput()

		_, err := s.commands.Register(context.Background(), input)
		s.Require().ErrorIs(err, commands.ErrEmailDomainNotAllowed)
	})

	s.Run("error: lookalike domain rejected", func() {
		input := builder.NewUserBuilder().WithEmail("someone@notalkhidmat.org").BuildRegisterInput()

		_, err := s.commands.Register(context.Background(), input)
		s.Require().ErrorIs(err, commands.ErrEmailDomainNotAllowed)
	})

	s.Run("error: duplicate email", func() {
		input := builder.NewUserBuilder().BuildRegisterInput()

		s.users.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("email already exists", nil, infra.KindDuplicateKey))

		_, err := s.commands.Register(context.Background(), input)
		s.Require().ErrorIs(err, commands.ErrEmailAlreadyExists)
	})

	s.Run("error: invalid fields", func() {
		for _, input := range []commands.RegisterInput{
			builder.NewUserBuilder().WithFullName("  ").BuildRegisterInput(),
			builder.NewUserBuilder().WithEmail("not-an-email").BuildRegisterInput(),
			builder.NewUserBuilder().WithPassword("").BuildRegisterInput(),
		} {
			_, err := s.commands.Register(context.Background(), input)
			s.Require().ErrorIs(err, errs.ErrValidation)
		}
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	hashed, err := password.HashPassword("password123")
	s.Require().NoError(err)
	account := builder.NewUserBuilder().BuildAccount(hashed)

	s.Run("success: returns identity and token", func() {
		s.users.EXPECT().FindByEmail(gomock.Any(), account.Email).Return(account, nil)

		result, loginErr := s.commands.Login(context.Background(), commands.LoginInput{
			Email:    account.Email,
			Password: "password123",
		})
		s.Require().NoError(loginErr)
		s.Equal(account.ID, result.UserID)
		s.Equal(account.FullName, result.FullName)
		s.Equal(user.RoleUser, result.Role)
		s.NotEmpty(result.Token)
	})

	s.Run("error: wrong password", func() {
		s.users.EXPECT().FindByEmail(gomock.Any(), account.Email).Return(account, nil)

		_, loginErr := s.commands.Login(context.Background(), commands.LoginInput{
			Email:    account.Email,
			Password: "wrong-password",
		})
		s.Require().ErrorIs(loginErr, commands.ErrInvalidCredentials)
	})

	s.Run("error: unknown email collapses to the same error", func() {
		s.users.EXPECT().FindByEmail(gomock.Any(), "ghost@alkhidmat.org").
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, loginErr := s.commands.Login(context.Background(), commands.LoginInput{
			Email:    "ghost@alkhidmat.org",
			Password: "password123",
		})
		s.Require().ErrorIs(loginErr, commands.ErrInvalidCredentials)
	})

	s.Run("error: malformed email never reaches the store", func() {
		_, loginErr := s.commands.Login(context.Background(), commands.LoginInput{
			Email:    "not-an-email",
			Password: "password123",
		})
		s.Require().ErrorIs(loginErr, commands.ErrInvalidCredentials)
	})
}
