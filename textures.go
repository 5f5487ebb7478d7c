package blockscene

import (
	"fmt"
	"image"
)

// TextureHandle indexes a texture held by a TextureManager.
type TextureHandle uint32

type Texture struct {
	Path  string
	Image image.Image
}

// TextureLoader decodes the image stored at path.
type TextureLoader interface {
	LoadTexture(path string) (image.Image, error)
}

var _ TextureStore = &TextureManager{}

// TextureManager loads each path once and hands out stable handles.
type TextureManager struct {
	loader TextureLoader
	cache  Cache[Texture]
}

func newTextureManager(loader TextureLoader, capacity int) *TextureManager {
	return &TextureManager{
		loader: loader,
		cache:  FactoryNewCache[Texture](capacity),
	}
}

func (m *TextureManager) Load(path string) (TextureHandle, error) {
	if idx, ok := m.cache.GetIndex(path); ok {
		return TextureHandle(idx), nil
	}
	img, err := m.loader.LoadTexture(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load texture %q: %w", path, err)
	}
	idx, err := m.cache.Register(path, Texture{Path: path, Image: img})
	if err != nil {
		return 0, fmt.Errorf("failed to register texture %q: %w", path, err)
	}
	return TextureHandle(idx), nil
}

// Texture returns the texture behind h, or false for an unknown handle.
func (m *TextureManager) Texture(h TextureHandle) (*Texture, bool) {
	if int(h) >= m.cache.Len() {
		return nil, false
	}
	return m.cache.GetItem32(uint32(h)), true
}

func (m *TextureManager) Len() int {
	return m.cache.Len()
}
