package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTimeValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"14:30", "14:30:00"},
		{"09:05", "09:05:00"},
		{"14:30:15", "14:30:15"},
		{"", ""},
		{"afternoon", "afternoon"},
		{"1:2:3", "1:2:3"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeTimeValue(tc.in), "input %q", tc.in)
	}
}
