package framecache

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramePath(t *testing.T) {
	assert.Equal(t, "images-webp/1000.webp", FramePath("images-webp", 0, "webp"))
	assert.Equal(t, "webp/1687.png", FramePath("webp", 687, "png"))
}

func TestFSLoaderDecodesAndFallsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(1)))

	fsys := fstest.MapFS{
		"frames/1001.png":  {Data: buf.Bytes()},
		"frames/1002.webp": {Data: []byte("not a webp")},
	}
	l := &FSLoader{FS: fsys, BasePath: "frames"}

	img, err := l.Load(context.Background(), 1, "png")
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	_, err = l.Load(context.Background(), 1, "webp")
	assert.Error(t, err)

	_, err = l.Load(context.Background(), 2, "webp")
	assert.ErrorContains(t, err, "decode frame")

	c := New(l, Options{Frames: 3, Extensions: []string{"webp", "png"}})
	defer c.Close()
	require.NoError(t, c.Preload(context.Background()))
	assert.True(t, c.IsReady(1))
	assert.True(t, c.IsFailed(0))
	assert.True(t, c.IsFailed(2))
}
