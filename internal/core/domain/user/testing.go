package user

import (
	c "accounts/internal/core/domain/common"
	"context"
	"crypto/md5"
	"crypto/subtle"
	"fmt"
	"io"
	"sync"
	"time"
)

type FakePasswordHasher struct {
	ReturnError bool
}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	if h.ReturnError {
		return PasswordHash(""), fmt.Errorf("could not hash password")
	}
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeUserRepository struct {
	Users            []User
	ReturnError      bool
	SetPasswordError error
	lock             sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Location:     input.Location,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	if r.SetPasswordError != nil {
		return r.SetPasswordError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) Snapshot() []User {
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users
}

func (r *FakeUserRepository) Restore(users []User) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Users = users
}

type FakePasswordResetTokenRepository struct {
	Tokens       map[ID]PasswordResetToken
	ReturnError  bool
	ConsumeError error
	lock         sync.Mutex
}

func NewFakePasswordResetTokenRepository() *FakePasswordResetTokenRepository {
	return &FakePasswordResetTokenRepository{Tokens: make(map[ID]PasswordResetToken)}
}

func (r *FakePasswordResetTokenRepository) Put(
	ctx context.Context,
	input PutPasswordResetTokenInput,
) (t PasswordResetToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not put password reset token for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t = PasswordResetToken{
		UserID:     input.UserID,
		SecretHash: input.SecretHash,
		ExpiresAt:  input.ExpiresAt,
		CreatedAt:  input.CreatedAt,
	}
	r.Tokens[input.UserID] = t
	return t, nil
}

func (r *FakePasswordResetTokenRepository) GetBySecret(
	ctx context.Context,
	secret PasswordResetSecret,
) (t PasswordResetToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not get password reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t, ok := r.find(secret)
	if !ok {
		return t, ErrPasswordResetTokenDoesNotExist
	}
	return t, nil
}

func (r *FakePasswordResetTokenRepository) Consume(
	ctx context.Context,
	secret PasswordResetSecret,
) (t PasswordResetToken, err error) {
	if r.ConsumeError != nil {
		return t, r.ConsumeError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t, ok := r.find(secret)
	if !ok {
		return t, ErrPasswordResetTokenDoesNotExist
	}
	delete(r.Tokens, t.UserID)
	return t, nil
}

func (r *FakePasswordResetTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete expired password reset tokens")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	count := int64(0)
	for userID, t := range r.Tokens {
		if t.ExpiresAt.Before(before) {
			delete(r.Tokens, userID)
			count++
		}
	}
	return count, nil
}

func (r *FakePasswordResetTokenRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Tokens)
}

func (r *FakePasswordResetTokenRepository) Snapshot() map[ID]PasswordResetToken {
	r.lock.Lock()
	defer r.lock.Unlock()
	tokens := make(map[ID]PasswordResetToken, len(r.Tokens))
	for k, v := range r.Tokens {
		tokens[k] = v
	}
	return tokens
}

func (r *FakePasswordResetTokenRepository) Restore(tokens map[ID]PasswordResetToken) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Tokens = tokens
}

func (r *FakePasswordResetTokenRepository) find(secret PasswordResetSecret) (PasswordResetToken, bool) {
	hash := []byte(secret.Hash())
	for _, t := range r.Tokens {
		if subtle.ConstantTimeCompare([]byte(t.SecretHash), hash) == 1 {
			return t, true
		}
	}
	return PasswordResetToken{}, false
}

type FakePasswordResetSecretGenerator struct {
	Secrets     []PasswordResetSecret
	ReturnError bool
	ix          int
	lock        sync.Mutex
}

// NewFakePasswordResetSecretGenerator returns the given secrets in order, the last one is repeated.
func NewFakePasswordResetSecretGenerator(secrets ...string) *FakePasswordResetSecretGenerator {
	g := &FakePasswordResetSecretGenerator{}
	for _, s := range secrets {
		g.Secrets = append(g.Secrets, PasswordResetSecret(s))
	}
	return g
}

func (g *FakePasswordResetSecretGenerator) GeneratePasswordResetSecret() (PasswordResetSecret, error) {
	if g.ReturnError || len(g.Secrets) == 0 {
		return PasswordResetSecret(""), fmt.Errorf("could not generate password reset secret")
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	secret := g.Secrets[g.ix]
	if g.ix < len(g.Secrets)-1 {
		g.ix++
	}
	return secret, nil
}

type SentPasswordResetToken struct {
	User      User
	Secret    PasswordResetSecret
	ExpiresAt time.Time
}

type FakePasswordResetTokenSender struct {
	Sent        []SentPasswordResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	user User,
	secret PasswordResetSecret,
	expiresAt time.Time,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentPasswordResetToken{User: user, Secret: secret, ExpiresAt: expiresAt})
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakePasswordResetTokenSender) LastSent() SentPasswordResetToken {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
