package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	assert.True(t, Matches("Firefox", ""))
	assert.True(t, Matches("Firefox", "fire"))
	assert.True(t, Matches("Firefox", "FOX"))
	assert.True(t, Matches("image viewer", "Age Vie"))
	assert.False(t, Matches("Firefox", "chrome"))
	assert.False(t, Matches("", "x"))
	assert.True(t, Matches("", ""))
	assert.True(t, Matches("Notepad++", "pad"))
}
