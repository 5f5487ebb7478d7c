// Package assets loads block textures from a file system.
package assets

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/TheBitDrifter/blockscene"
	"github.com/pkg/errors"
)

var _ blockscene.TextureLoader = &FSLoader{}

// FSLoader decodes PNG and JPEG textures from an fs.FS. Paths use forward
// slashes and are relative to the root of the file system.
type FSLoader struct {
	fsys fs.FS
}

func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// NewDirLoader serves textures from a directory on disk.
func NewDirLoader(dir string) *FSLoader {
	return NewFSLoader(os.DirFS(dir))
}

func (l *FSLoader) LoadTexture(name string) (image.Image, error) {
	name = path.Clean(strings.TrimPrefix(name, "/"))
	if !fs.ValidPath(name) {
		return nil, errors.Errorf("invalid texture path %q", name)
	}
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".png", ".jpg", ".jpeg":
	default:
		return nil, errors.Errorf("unsupported texture format %q", ext)
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Error opening texture %s", name)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Error decoding texture %s", name)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, errors.Errorf("texture %s (%s) has no pixels", name, format)
	}
	return img, nil
}
