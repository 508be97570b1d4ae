package randomstringgenerator

import (
	"accounts/internal/core/domain/user"
	"crypto/rand"
	"encoding/hex"
	"io"
)

// PasswordResetSecretSize is the number of random bytes in a password reset secret.
const PasswordResetSecretSize = 32

type Generator struct {
	source io.Reader
}

func NewGenerator() *Generator {
	return &Generator{source: rand.Reader}
}

// GeneratePasswordResetSecret returns PasswordResetSecretSize random bytes encoded as hex.
func (g *Generator) GeneratePasswordResetSecret() (user.PasswordResetSecret, error) {
	b := make([]byte, PasswordResetSecretSize)
	if _, err := io.ReadFull(g.source, b); err != nil {
		return user.PasswordResetSecret(""), err
	}
	return user.PasswordResetSecret(hex.EncodeToString(b)), nil
}
