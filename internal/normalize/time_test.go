package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"08:00", 480},
		{"08:00:00", 480},
		{"17:30:15", 1050},
		{"00:00", 0},
	}
	for _, c := range cases {
		got, err := ParseMinutes(c.in)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseMinutes_Invalid(t *testing.T) {
	_, err := ParseMinutes("not-a-time")
	assert.Error(t, err)
}

func TestParseDeadline(t *testing.T) {
	m, ok := ParseDeadline("2026-07-30T14:30:00")
	assert.True(t, ok)
	assert.Equal(t, 14*60+30, m)

	m, ok = ParseDeadline("09:15:00")
	assert.True(t, ok)
	assert.Equal(t, 9*60+15, m)

	_, ok = ParseDeadline("")
	assert.False(t, ok)

	_, ok = ParseDeadline("garbage")
	assert.False(t, ok)
}
