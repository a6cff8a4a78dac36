package preview

import "image"

// canvas returns an RGBA of the renderer's size, reusing a
// released one when its size still matches.
func (r *Renderer) canvas() *image.RGBA {
	rect := image.Rect(0, 0, r.Width, r.Height)
	if img, ok := r.pool.Get().(*image.RGBA); ok && img.Rect == rect {
		return img
	}
	return image.NewRGBA(rect)
}

// Release hands a canvas produced by Render back for reuse. The image must
// not be used afterwards. Canvases of another size are dropped.
func (r *Renderer) Release(img *image.RGBA) {
	if img == nil || img.Rect != image.Rect(0, 0, r.Width, r.Height) {
		return
	}
	r.pool.Put(img)
}
