package framecache

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"

	_ "golang.org/x/image/webp"
)

// Loader fetches and decodes one frame in one format.
type Loader interface {
	Load(ctx context.Context, index int, ext string) (image.Image, error)
}

// LoaderFunc adapts a function to Loader
type LoaderFunc func(ctx context.Context, index int, ext string) (image.Image, error)

// Load calls f
func (f LoaderFunc) Load(ctx context.Context, index int, ext string) (image.Image, error) {
	return f(ctx, index, ext)
}

// FramePath returns the asset path of a frame: {base}/{1000+index}.{ext}
func FramePath(base string, index int, ext string) string {
	return path.Join(base, fmt.Sprintf("%d.%s", 1000+index, ext))
}

// FSLoader reads frames from a file system. PNG, JPEG and WebP are decoded.
type FSLoader struct {
	FS       fs.FS
	BasePath string
}

// NewDirLoader returns an FSLoader rooted at a directory on disk
func NewDirLoader(root, basePath string) *FSLoader {
	return &FSLoader{FS: os.DirFS(root), BasePath: basePath}
}

// Load implements Loader
func (l *FSLoader) Load(ctx context.Context, index int, ext string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := FramePath(l.BasePath, index, ext)
	f, err := l.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open frame %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", name, err)
	}
	return img, nil
}
