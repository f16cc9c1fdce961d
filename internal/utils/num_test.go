package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"72", 72, true},
		{"3.5", 3.5, true},
		{"1 234,50", 1234.5, true},
		{"197 ,00", 197, true},
		{"-5", -5, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseNumber(c.in)
		assert.Equalf(t, c.ok, ok, "input %q", c.in)
		if c.ok {
			assert.Equalf(t, c.want, got, "input %q", c.in)
		}
	}
}
