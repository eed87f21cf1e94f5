package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// ImageLoader decodes embedded images once and caches them with their
// sub-image frames.
type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

var imageLoader = NewImageLoader()

func (l *ImageLoader) LoadImage(name string) (*ebiten.Image, error) {
	path := "images/" + name
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

func (l *ImageLoader) MustLoadImage(name string) *ebiten.Image {
	img, err := l.LoadImage(name)
	if err != nil {
		panic(err)
	}
	return img
}

// GetFrame returns a cached sub-image for one cell of a sprite sheet.
func (l *ImageLoader) GetFrame(sheet string, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", sheet, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	frame := l.MustLoadImage(sheet).SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

// Forget drops cached frames of a sheet, after its layout changed.
func (l *ImageLoader) Forget(sheet string) {
	prefix := sheet + "/"
	for key := range l.frameCache {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			delete(l.frameCache, key)
		}
	}
}

func MustLoadImage(name string) *ebiten.Image {
	return imageLoader.MustLoadImage(name)
}

func GetFrame(sheet string, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return imageLoader.GetFrame(sheet, frameIndex, srcRect)
}

func ForgetFrames(sheet string) {
	imageLoader.Forget(sheet)
}

// FrameRect returns the source rectangle of a cell in a row-major sheet grid.
func FrameRect(index, columns, frameWidth, frameHeight int) image.Rectangle {
	if columns <= 0 {
		columns = 1
	}
	sx := (index % columns) * frameWidth
	sy := (index / columns) * frameHeight
	return image.Rect(sx, sy, sx+frameWidth, sy+frameHeight)
}
