package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	assert.True(t, Username("maria"))
	assert.True(t, Username("joão"))
	assert.True(t, Username("abc"))

	assert.False(t, Username("ab"))
	assert.False(t, Username(""))
	assert.False(t, Username(" maria"))
	assert.False(t, Username("maria "))
	assert.False(t, Username("maria silva"))
	assert.False(t, Username(strings.Repeat("a", 51)))
	assert.True(t, Username(strings.Repeat("a", 50)))
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("segredo"))
	assert.True(t, Password("123456"))
	assert.False(t, Password("12345"))
	assert.False(t, Password(""))
}

func TestTheme(t *testing.T) {
	assert.True(t, Theme("light"))
	assert.True(t, Theme("dark"))
	assert.False(t, Theme("blue"))
	assert.False(t, Theme(""))
}
