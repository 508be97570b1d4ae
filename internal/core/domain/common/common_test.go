package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)

	some := Some(1.5)
	assert.Equal(1.5, some.Value)
	assert.True(some.IsPresent)
	assert.Equal("[1.5]", some.String())

	assert.Equal("[-]", optionalString.String())
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		raw      string
		expected Email
	}{
		{raw: "alice@example.com", expected: "alice@example.com"},
		{raw: "Alice@Example.COM", expected: "alice@example.com"},
		{raw: "  bob@example.com ", expected: "bob@example.com"},
	}
	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			require.Equal(t, testcase.expected, NewEmail(testcase.raw))
		})
	}
}
