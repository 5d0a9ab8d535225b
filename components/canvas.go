package components

import (
	"github.com/automoto/coffeeon/framecache"
	"github.com/automoto/coffeeon/responsive"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CanvasData owns the frame sequence and the playback cursor. Nothing else
// mutates them.
type CanvasData struct {
	Cache    *framecache.Cache
	Playback *sequencer.Playback
	Profile  responsive.Profile
	Epoch    uint64

	// Surface is the backing store the current frame is drawn into
	Surface *ebiten.Image
	// Shown is the frame index actually on the surface, -1 when blank
	Shown int
	// Generation of the cache when Shown was drawn
	Generation uint64

	Textures *TextureCache

	FirstPaint bool
	FadeTicks  int
	Holding    bool // A replacement sequence has no frame yet; the surface keeps the old picture
}

var Canvas = donburi.NewComponentType[CanvasData]()

// TextureCache keeps the most recently uploaded frames on the GPU
type TextureCache struct {
	capacity int
	order    []int
	images   map[int]*ebiten.Image
}

// NewTextureCache creates a cache holding at most capacity textures
func NewTextureCache(capacity int) *TextureCache {
	return &TextureCache{capacity: capacity, images: make(map[int]*ebiten.Image)}
}

// Get returns a cached texture and marks it recently used
func (t *TextureCache) Get(index int) (*ebiten.Image, bool) {
	img, ok := t.images[index]
	if ok {
		t.touch(index)
	}
	return img, ok
}

// Put stores a texture, evicting the least recently used one if full
func (t *TextureCache) Put(index int, img *ebiten.Image) {
	if _, ok := t.images[index]; ok {
		t.images[index] = img
		t.touch(index)
		return
	}
	if len(t.order) >= t.capacity && len(t.order) > 0 {
		oldest := t.order[0]
		t.order = t.order[1:]
		if old := t.images[oldest]; old != nil {
			old.Deallocate()
		}
		delete(t.images, oldest)
	}
	t.images[index] = img
	t.order = append(t.order, index)
}

// Clear drops every texture
func (t *TextureCache) Clear() {
	for _, img := range t.images {
		img.Deallocate()
	}
	t.images = make(map[int]*ebiten.Image)
	t.order = t.order[:0]
}

func (t *TextureCache) touch(index int) {
	for i, v := range t.order {
		if v == index {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	t.order = append(t.order, index)
}
