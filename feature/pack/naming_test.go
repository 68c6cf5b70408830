package pack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePackName(t *testing.T) {
	assert.NoError(t, ValidatePackName("my_pack_123"))
	assert.Error(t, ValidatePackName("my-pack"))
	assert.Error(t, ValidatePackName("my pack"))
	assert.Error(t, ValidatePackName(""))
	assert.Error(t, ValidatePackName("pack😀"))
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("My Pack"))
	assert.Error(t, ValidateTitle(""))
	assert.NoError(t, ValidateTitle(strings.Repeat("x", 64)))
	assert.Error(t, ValidateTitle(strings.Repeat("x", 65)))
}

func TestComposeSetName(t *testing.T) {
	assert.Equal(t, "cats_by_mybot", ComposeSetName("cats", "mybot"))
	assert.Equal(t, "cats_by_otherbot", ComposeSetName("cats_by_otherbot", "mybot"))
}

func TestParseSetLink(t *testing.T) {
	assert.Equal(t, "cats_by_mybot", ParseSetLink("https://t.me/addstickers/cats_by_mybot"))
	assert.Equal(t, "cats_by_mybot", ParseSetLink("https://t.me/addstickers/cats_by_mybot/"))
	assert.Equal(t, "cats_by_mybot", ParseSetLink("cats_by_mybot"))
}
