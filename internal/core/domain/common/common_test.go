package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmailNormalizesInput(t *testing.T) {
	cases := []struct {
		raw      string
		expected Email
	}{
		{raw: "test@test.test", expected: Email("test@test.test")},
		{raw: "Test@Test.Test", expected: Email("test@test.test")},
		{raw: "  test@test.test  ", expected: Email("test@test.test")},
	}
	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			assert.Equal(t, c.expected, NewEmail(c.raw))
		})
	}
}

func TestOptionalString(t *testing.T) {
	absent := Optional[string]{}
	assert.Equal(t, "[-]", absent.String())

	present := NewOptional("value", true)
	assert.Equal(t, "[value]", present.String())
}
