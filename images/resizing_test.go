package images

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResize(t *testing.T) {
	out, err := Resize(testImage(40, 20), 10, 5)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 5), out.Bounds())

	_, err = Resize(testImage(4, 4), 0, 5)
	assert.Error(t, err)
}

func TestFit(t *testing.T) {
	src := testImage(400, 200)

	out := Fit(src, 100, 100)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 50, out.Bounds().Dy())

	assert.Same(t, src, Fit(src, 1000, 1000), "already inside the bounds")
	assert.Same(t, src, Fit(src, 0, 0), "no bound")
}
