package uow

import (
	"accounts/internal/core/domain/user"
	"context"
	"errors"
	"sync"
)

var errFakeTxClosed = errors.New("unit of work is already closed")

// FakeUnitOfWorkContext stages changes directly in the shared fake repositories
// and restores their snapshots on rollback.
type FakeUnitOfWorkContext struct {
	uow    *FakeUnitOfWork
	users  []user.User
	tokens map[user.ID]user.PasswordResetToken
	closed bool
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.uow.UserRepository.Restore(c.users)
	c.uow.PasswordResetTokenRepository.Restore(c.tokens)
	c.uow.RollbackCount++
	c.uow.lock.Unlock()
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	if c.closed {
		return errFakeTxClosed
	}
	if c.uow.CommitError != nil {
		err := c.uow.CommitError
		c.Rollback(ctx)
		return err
	}
	c.closed = true
	c.uow.CommitCount++
	c.uow.lock.Unlock()
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.uow.UserRepository
}

func (c *FakeUnitOfWorkContext) PasswordResetTokens() user.PasswordResetTokenRepository {
	return c.uow.PasswordResetTokenRepository
}

// FakeUnitOfWork runs units of work one at a time, like serializable transactions.
type FakeUnitOfWork struct {
	UserRepository               *user.FakeUserRepository
	PasswordResetTokenRepository *user.FakePasswordResetTokenRepository
	BeginError                   error
	CommitError                  error
	CommitCount                  int
	RollbackCount                int
	lock                         sync.Mutex
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		UserRepository:               user.NewFakeUserRepository(),
		PasswordResetTokenRepository: user.NewFakePasswordResetTokenRepository(),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.BeginError != nil {
		return nil, u.BeginError
	}
	u.lock.Lock()
	return &FakeUnitOfWorkContext{
		uow:    u,
		users:  u.UserRepository.Snapshot(),
		tokens: u.PasswordResetTokenRepository.Snapshot(),
	}, nil
}

func (u *FakeUnitOfWork) WasCommitCalled() bool {
	return u.CommitCount > 0
}
