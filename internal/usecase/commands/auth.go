package commands

import (
	"context"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/jwt"
	"facility-booking/internal/pkg/password"
)

var (
	ErrEmailDomainNotAllowed = errs.New("email domain not allowed")
	ErrEmailAlreadyExists    = errs.New("email already exists")
	ErrInvalidCredentials    = errs.New("invalid email or password")
	ErrTokenGeneration       = errs.New("token generation failed")
)

type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID   int64
	FullName string
	Role     user.Role
	Token    string
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (int64, error)
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow         UnitOfWork
	jwtService  *jwt.Service
	emailDomain string
}

func NewAuthCommands(uow UnitOfWork, jwtService *jwt.Service, emailDomain string) AuthCommands {
	return &authCommandsImpl{
		uow:         uow,
		jwtService:  jwtService,
		emailDomain: emailDomain,
	}
}

// Register creates an organization member with the default role. Addresses
// outside the organization domain are rejected before any write.
func (a *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (int64, error) {
	fullName, err := user.NewFullName(input.FullName)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrValidation)
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrValidation)
	}
	if !email.BelongsTo(a.emailDomain) {
		return 0, ErrEmailDomainNotAllowed
	}
	if _, err = user.NewPassword(input.Password); err != nil {
		return 0, errs.Mark(err, errs.ErrValidation)
	}

	hashed, err := password.HashPassword(input.Password)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrValidation)
	}

	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		createdID, createErr := tx.Users().Create(ctx, fullName.Value(), email.Value(), hashed, user.RoleUser)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		id = createdID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password return the same error to prevent user enumeration.
func (a *authCommandsImpl) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	var account *UserAccount
	err = a.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		found, findErr := tx.Users().FindByEmail(ctx, email.Value())
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrInvalidCredentials
			}
			return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
		}
		account = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := password.ComparePassword(account.PasswordHash, input.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:   account.ID,
		FullName: account.FullName,
		Role:     account.Role,
		Token:    token,
	}, nil
}
