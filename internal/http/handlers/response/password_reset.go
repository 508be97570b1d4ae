package response

import "time"

type PasswordResetToken struct {
	ExpiresAt time.Time `json:"expires_at"`
}
