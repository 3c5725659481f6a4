//go:build unit || e2e

package builder

import (
	"facility-booking/internal/domain/user"
	reqdto "facility-booking/internal/handler/dto/request"
	"facility-booking/internal/usecase/commands"
)

type UserBuilder struct {
	ID       int64
	FullName string
	Email    string
	Password string
	Role     user.Role
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       1,
		FullName: "Test User",
		Email:    "test.user@alkhidmat.org",
		Password: "password123",
		Role:     user.RoleUser,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		FullName: u.FullName,
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildRegisterInput() commands.RegisterInput {
	return commands.RegisterInput{
		FullName: u.FullName,
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildAccount(passwordHash string) *commands.UserAccount {
	return &commands.UserAccount{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		PasswordHash: passwordHash,
		Role:         u.Role,
	}
}

// Fluent builder methods

func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithFullName(name string) *UserBuilder {
	u.FullName = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = user.RoleAdmin
	return u
}
