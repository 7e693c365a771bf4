package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	valid := []string{
		"alicewonder",
		"alice.wonder",
		"alice_wonder1",
		"a1b2c3d4",
		"exactly.twenty.char1",
	}
	for _, s := range valid {
		assert.True(t, ValidUsername(s), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"short",
		"toolongusernamethatkeepsgoing",
		".leadingsep",
		"trailingsep.",
		"_leadunder",
		"trailunder_",
		"double..dots",
		"mixed._seps",
		"under__scores",
		"has spaces ok",
		"illegal-dash1",
		"unicodeÑname",
	}
	for _, s := range invalid {
		assert.False(t, ValidUsername(s), "expected %q to be invalid", s)
	}
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
