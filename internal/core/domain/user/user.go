package user

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Location struct {
	Latitude  float64
	Longitude float64
}

type User struct {
	ID           ID
	Email        c.Email
	PasswordHash PasswordHash
	FirstName    c.Optional[string]
	LastName     c.Optional[string]
	Location     c.Optional[Location]
	CreatedAt    time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError("email is not set for user %d", u.ID)
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError("password hash is not set for user %d", u.ID)
	}
	return nil
}
