package repository

import (
	"context"
	"errors"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, fullName, email, passwordHash string, role user.Role) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (full_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id`,
		fullName, email, passwordHash, role.String(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return 0, infra.WrapRepoErr("email already exists", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserAccount, error) {
	var acc commands.UserAccount
	var role string
	err := r.db.QueryRow(ctx, `
		SELECT user_id, full_name, email, password_hash, role
		FROM users WHERE email = $1`,
		email,
	).Scan(&acc.ID, &acc.FullName, &acc.Email, &acc.PasswordHash, &role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	acc.Role = user.Role(role)
	return &acc, nil
}
