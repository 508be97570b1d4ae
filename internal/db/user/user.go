package user

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/db/sqlcgen"
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

type PgxUserRepository struct {
	queries *sqlcgen.Queries
}

func NewPgxRepository(db sqlcgen.DBTX) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{queries: sqlcgen.New(db)}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	latitude, longitude := encodeLocation(input.Location)
	dbuser, err := r.queries.CreateUser(ctx, sqlcgen.CreateUserParams{
		Email:        string(input.Email),
		PasswordHash: string(input.PasswordHash),
		FirstName:    encodeOptionalString(input.FirstName),
		LastName:     encodeOptionalString(input.LastName),
		Latitude:     latitude,
		Longitude:    longitude,
		CreatedAt:    input.CreatedAt,
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	return decodeAndValidate(dbuser)
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	dbuser, err := r.queries.GetUserByID(ctx, int64(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return decodeAndValidate(dbuser)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	dbuser, err := r.queries.GetUserByEmail(ctx, string(email))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return decodeAndValidate(dbuser)
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	updated, err := r.queries.SetUserPassword(ctx, sqlcgen.SetUserPasswordParams{
		ID:           int64(id),
		PasswordHash: string(password),
	})
	if err != nil {
		return err
	}
	if updated == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func encodeOptionalString(s c.Optional[string]) sql.NullString {
	return sql.NullString{String: s.Value, Valid: s.IsPresent}
}

func encodeLocation(l c.Optional[user.Location]) (sql.NullFloat64, sql.NullFloat64) {
	return sql.NullFloat64{Float64: l.Value.Latitude, Valid: l.IsPresent},
		sql.NullFloat64{Float64: l.Value.Longitude, Valid: l.IsPresent}
}

func decodeAndValidate(dbuser sqlcgen.User) (user.User, error) {
	u := decodeUser(dbuser)
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func decodeUser(u sqlcgen.User) user.User {
	return user.User{
		ID:           user.ID(u.ID),
		Email:        c.Email(u.Email),
		PasswordHash: user.PasswordHash(u.PasswordHash),
		FirstName:    c.NewOptional(u.FirstName.String, u.FirstName.Valid),
		LastName:     c.NewOptional(u.LastName.String, u.LastName.Valid),
		Location: c.NewOptional(
			user.Location{Latitude: u.Latitude.Float64, Longitude: u.Longitude.Float64},
			u.Latitude.Valid && u.Longitude.Valid,
		),
		CreatedAt: u.CreatedAt,
	}
}
