package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMinimalValidEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"jane.doe@student.edu", true},
		{"a@b", true},
		{"  jane.doe@student.edu  ", true},
		{"", false},
		{"   ", false},
		{"jane.doe.student.edu", false},
		{"@student.edu", false},
		{"jane.doe@", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsMinimalValidEmail(tc.email), "email: %q", tc.email)
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))
	assert.False(t, IsBlank("x"))
	assert.False(t, IsBlank(" x "))
}
