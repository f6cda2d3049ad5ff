package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"empty", "", false},
		{"five chars", "Abc1!", false},
		{"exactly six with upper and symbol", "Abc12!", true},
		{"missing uppercase", "abc12!", false},
		{"missing symbol", "Abc123", false},
		{"symbol not in set", "Abc12~", false},
		{"every rule comfortably", `P@ssw0rd,Z`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.ok {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}
