package passwordhasher

import (
	"accounts/internal/core/domain/user"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes passwords peppered with an application secret.
type Bcrypt struct {
	secret string
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		panic(fmt.Sprintf("bcrypt cost must be in range [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, cost))
	}
	return &Bcrypt{secret: secret, cost: cost}
}

func (h *Bcrypt) HashPassword(password user.RawPassword) (hash user.PasswordHash, err error) {
	bcryptHash, err := bcrypt.GenerateFromPassword(h.pepper(password), h.cost)
	if err != nil {
		return hash, err
	}
	return user.PasswordHash(bcryptHash), nil
}

func (h *Bcrypt) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), h.pepper(password))
	return err == nil
}

// pepper keys the password with the secret. The digest fits in the 72 bytes bcrypt reads,
// so neither the tail of a long password nor the secret is truncated.
func (h *Bcrypt) pepper(password user.RawPassword) []byte {
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write([]byte(password))
	digest := mac.Sum(nil)
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(digest)))
	base64.StdEncoding.Encode(encoded, digest)
	return encoded
}
