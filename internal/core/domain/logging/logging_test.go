package logging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorHelper(t *testing.T) {
	cases := []struct {
		id            string
		err           error
		expectedLevel string
	}{
		{id: "plain", err: errors.New("boom"), expectedLevel: ERROR},
		{id: "canceled", err: context.Canceled, expectedLevel: INFO},
		{id: "wrapped-canceled", err: fmt.Errorf("query: %w", context.Canceled), expectedLevel: INFO},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			log := NewFakeLogger()
			Error(context.Background(), log, testcase.err, Entry("key", "value"))

			require.Len(t, log.Logged, 1)
			require.Equal(t, testcase.expectedLevel, log.Logged[0].Level)
			require.True(t, log.HasValue("value"))
		})
	}
}
