package logging

import (
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEntriesAreStructuredFields(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerFrom(zap.New(core))

	log.Info(context.Background(), "Token sent.", logging.Entry("userID", user.ID(42)))
	log.Error(context.Background(), "Could not send.", logging.Entry("err", "boom"))

	entries := observed.All()
	require.Len(t, entries, 2)
	require.Equal(t, "Token sent.", entries[0].Message)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, user.ID(42), entries[0].ContextMap()["userID"])
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Equal(t, "boom", entries[1].ContextMap()["err"])
}

func TestSecretsAreMasked(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerFrom(zap.New(core))

	log.Info(context.Background(), "Masked.", logging.Entry("secret", user.PasswordResetSecret("plain-secret").String()))

	require.Equal(t, "***", observed.All()[0].ContextMap()["secret"])
}
