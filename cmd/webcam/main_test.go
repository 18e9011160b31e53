package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadRects(t *testing.T) {
	got := padRects([]image.Rectangle{image.Rect(10, 10, 20, 30)}, 4)
	assert.Equal(t, []image.Rectangle{image.Rect(6, 6, 24, 34)}, got)
	assert.Empty(t, padRects(nil, 4))
}
