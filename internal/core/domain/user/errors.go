package user

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrEmailAlreadyExists               = errors.New("email already exists")
	ErrUserDoesNotExist                 = errors.New("user does not exist")
	ErrPasswordResetTokenDoesNotExist   = errors.New("password reset token does not exist")
	ErrPasswordResetTokenExpired        = errors.New("password reset token has expired")
	ErrPasswordResetTokenDeliveryFailed = errors.New("password reset token delivery failed")
	ErrStoreFailure                     = errors.New("store failure")
)

func NewStoreFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}

func NewDeliveryFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrPasswordResetTokenDeliveryFailed, err)
}

type ErrorKind string

const (
	KindOK              ErrorKind = "ok"
	KindCanceled        ErrorKind = "canceled"
	KindAccountNotFound ErrorKind = "account_not_found"
	KindTokenNotFound   ErrorKind = "token_not_found"
	KindTokenExpired    ErrorKind = "token_expired"
	KindDeliveryFailure ErrorKind = "delivery_failure"
	KindStoreFailure    ErrorKind = "store_failure"
	KindUnexpected      ErrorKind = "unexpected"
)

// KindOf maps an error returned by the password reset services to its kind.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, ErrUserDoesNotExist):
		return KindAccountNotFound
	case errors.Is(err, ErrPasswordResetTokenDoesNotExist):
		return KindTokenNotFound
	case errors.Is(err, ErrPasswordResetTokenExpired):
		return KindTokenExpired
	case errors.Is(err, ErrPasswordResetTokenDeliveryFailed):
		return KindDeliveryFailure
	case errors.Is(err, ErrStoreFailure):
		return KindStoreFailure
	default:
		return KindUnexpected
	}
}
