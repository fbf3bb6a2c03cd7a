package qrgenerator

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator(128)

	out, err := g.Generate("https://pay.mbnk.biz/2205175v4MfatvmUL2oR")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestGenerator_EmptyContent(t *testing.T) {
	_, err := NewGenerator(0).Generate("  ")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestNewGenerator_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultSize, NewGenerator(-1).size)
}
