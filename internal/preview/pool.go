package preview

import (
	"image"
	"sync"
)

// imagePool hands out *image.RGBA buffers grouped by size. Preview pages of
// one document are almost always the same size, so scaled buffers
// recirculate instead of piling up for the GC.
type imagePool struct {
	pools sync.Map // image.Point -> *sync.Pool
}

var rgbaPool imagePool

func (p *imagePool) get(rect image.Rectangle) *image.RGBA {
	size := rect.Size()
	v, ok := p.pools.Load(size)
	if !ok {
		v, _ = p.pools.LoadOrStore(size, &sync.Pool{
			New: func() interface{} {
				return image.NewRGBA(image.Rectangle{Max: size})
			},
		})
	}
	// Buffers may hold stale pixels; callers overwrite them fully.
	return v.(*sync.Pool).Get().(*image.RGBA)
}

func (p *imagePool) put(img *image.RGBA) {
	if v, ok := p.pools.Load(img.Rect.Size()); ok {
		v.(*sync.Pool).Put(img)
	}
}
