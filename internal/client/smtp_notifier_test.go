package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPlainText(t *testing.T) {
	assert.True(t, isPlainText("Dear vendor,\n\nA new request arrived."))
	assert.False(t, isPlainText("<p>A new request arrived.</p>"))
	assert.False(t, isPlainText("Dear vendor,\n<b>urgent</b>"))
	// Single-line bodies go out as HTML, matching the historical behavior.
	assert.False(t, isPlainText("A new request arrived."))
}
