package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/TheBitDrifter/blockscene"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encoded(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 40, B: 10, A: 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"cube/cube.png": {Data: encoded(t, func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) })},
		"cube/cube.jpg": {Data: encoded(t, func(b *bytes.Buffer, img image.Image) error { return jpeg.Encode(b, img, nil) })},
		"cube/bad.png":  {Data: []byte("not a png")},
		"cube/cube.bmp": {Data: []byte("BM")},
	}
}

func TestLoadTexture(t *testing.T) {
	loader := NewFSLoader(testFS(t))
	for _, name := range []string{"cube/cube.png", "/cube/cube.jpg", "cube/../cube/cube.png"} {
		t.Run(name, func(t *testing.T) {
			img, err := loader.LoadTexture(name)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
		})
	}
}

func TestLoadTexturePNGPixels(t *testing.T) {
	img, err := NewFSLoader(testFS(t)).LoadTexture("cube/cube.png")
	require.NoError(t, err)
	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{200, 40, 10, 0xff}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestLoadTextureErrors(t *testing.T) {
	loader := NewFSLoader(testFS(t))

	_, err := loader.LoadTexture("cube/missing.png")
	require.Error(t, err)
	assert.ErrorIs(t, pkgerrors.Cause(err), fs.ErrNotExist)

	_, err = loader.LoadTexture("cube/bad.png")
	assert.ErrorContains(t, err, "Error decoding texture cube/bad.png")

	_, err = loader.LoadTexture("cube/cube.bmp")
	assert.ErrorContains(t, err, "unsupported texture format")

	_, err = loader.LoadTexture("../outside.png")
	assert.ErrorContains(t, err, "invalid texture path")
}

func TestTextureManagerWithFSLoader(t *testing.T) {
	manager := blockscene.Factory.NewTextureManager(NewFSLoader(testFS(t)), 2)

	h, err := manager.Load("cube/cube.png")
	require.NoError(t, err)
	again, err := manager.Load("cube/cube.png")
	require.NoError(t, err)
	assert.Equal(t, h, again)

	tex, ok := manager.Texture(h)
	require.True(t, ok)
	assert.Equal(t, "cube/cube.png", tex.Path)

	_, err = manager.Load("cube/missing.png")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
