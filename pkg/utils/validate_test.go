package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe+tours@example.co.uk",
		"x@y.zz",
	}
	for _, addr := range valid {
		assert.True(t, IsEmail(addr), addr)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing-at.example.com",
		"no@dot-after-at",
		"two@@example.com",
		"spaces in@example.com",
		"trailing@example.com ",
		"@example.com",
		"jane@",
	}
	for _, addr := range invalid {
		assert.False(t, IsEmail(addr), addr)
	}
}
