package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	c "mapacademy/internal/core/domain/common"
	"mapacademy/internal/core/domain/user"
	"mapacademy/internal/db"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, password_hash, created_at, reset_token, reset_token_expires_at`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, password_hash, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		string(input.Email),
		string(input.PasswordHash),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		if pgerr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgerr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	if err = u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE email = $1`,
		string(email),
	)
	return r.scanExistingUser(row)
}

func (r *PgxUserRepository) GetByResetToken(
	ctx context.Context,
	token user.PasswordResetToken,
	now time.Time,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user"
		 WHERE reset_token = $1 AND reset_token_expires_at > $2`,
		string(token),
		now,
	)
	return r.scanExistingUser(row)
}

func (r *PgxUserRepository) GetByIDAndResetToken(
	ctx context.Context,
	id user.ID,
	token user.PasswordResetToken,
	now time.Time,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user"
		 WHERE id = $1 AND reset_token = $2 AND reset_token_expires_at > $3`,
		int64(id),
		string(token),
		now,
	)
	return r.scanExistingUser(row)
}

func (r *PgxUserRepository) SetPasswordResetToken(
	ctx context.Context,
	input user.SetPasswordResetTokenInput,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user"
		 SET reset_token = $2, reset_token_expires_at = $3
		 WHERE id = $1
		 RETURNING `+userColumns,
		int64(input.UserID),
		string(input.Token),
		input.ExpiresAt,
	)
	return r.scanExistingUser(row)
}

func (r *PgxUserRepository) UpdatePassword(
	ctx context.Context,
	id user.ID,
	passwordHash user.PasswordHash,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		 SET password_hash = $2, reset_token = NULL, reset_token_expires_at = NULL
		 WHERE id = $1`,
		int64(id),
		string(passwordHash),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) scanExistingUser(row pgx.Row) (u user.User, err error) {
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	if err = u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id                  int64
		email               string
		passwordHash        string
		createdAt           time.Time
		resetToken          sql.NullString
		resetTokenExpiresAt sql.NullTime
	)
	err = row.Scan(&id, &email, &passwordHash, &createdAt, &resetToken, &resetTokenExpiresAt)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:                  user.ID(id),
		Email:               c.Email(email),
		PasswordHash:        user.PasswordHash(passwordHash),
		CreatedAt:           createdAt,
		ResetToken:          c.NewOptional(user.PasswordResetToken(resetToken.String), resetToken.Valid),
		ResetTokenExpiresAt: c.NewOptional(resetTokenExpiresAt.Time, resetTokenExpiresAt.Valid),
	}, nil
}
