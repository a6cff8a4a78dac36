package preview

import (
	"image"
	"image/color"
	"testing"

	"github.com/ivlev/viewanimator/internal/animation"
	"github.com/ivlev/viewanimator/internal/direction"
	"github.com/ivlev/viewanimator/internal/transform"
)

var red = color.RGBA{R: 255, A: 255}

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, red)
		}
	}
	return img
}

func isRed(c color.RGBA) bool {
	return c.R > 240 && c.G < 15 && c.B < 15
}

func isWhite(c color.RGBA) bool {
	return c.R > 240 && c.G > 240 && c.B > 240
}

func TestRenderIdentity(t *testing.T) {
	r := NewRenderer(40, 40)
	canvas, err := r.Render(solid(10, 10), transform.Identity)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer r.Release(canvas)

	if !isRed(canvas.RGBAAt(20, 20)) {
		t.Errorf("Expected centre to be red, got %v", canvas.RGBAAt(20, 20))
	}
	if !isWhite(canvas.RGBAAt(2, 2)) {
		t.Errorf("Expected corner to be background, got %v", canvas.RGBAAt(2, 2))
	}
}

func TestRenderSlidePose(t *testing.T) {
	r := NewRenderer(60, 40)
	a := animation.From(direction.Right, 20)

	initial, err := r.RenderPose(solid(10, 10), a, Initial)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer r.Release(initial)

	// Image sits at x 25..35 at rest, 45..55 when shifted right by 20
	if !isWhite(initial.RGBAAt(30, 20)) {
		t.Errorf("Expected rest position to be empty, got %v", initial.RGBAAt(30, 20))
	}
	if !isRed(initial.RGBAAt(50, 20)) {
		t.Errorf("Expected shifted image at x=50, got %v", initial.RGBAAt(50, 20))
	}

	final, err := r.RenderPose(solid(10, 10), a, Final)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer r.Release(final)

	if !isRed(final.RGBAAt(30, 20)) {
		t.Errorf("Expected final pose at rest, got %v", final.RGBAAt(30, 20))
	}
}

func TestRenderZoomScale(t *testing.T) {
	r := NewRenderer(40, 40)
	canvas, err := r.RenderPose(solid(10, 10), animation.ZoomTo(3), Final)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer r.Release(canvas)

	// 30x30 around the centre covers x 5..35
	if !isRed(canvas.RGBAAt(8, 20)) {
		t.Errorf("Expected zoomed image at x=8, got %v", canvas.RGBAAt(8, 20))
	}
}

func TestRenderSingular(t *testing.T) {
	r := NewRenderer(20, 20)
	canvas, err := r.Render(solid(10, 10), transform.Scale(0, 0))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer r.Release(canvas)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if !isWhite(canvas.RGBAAt(x, y)) {
				t.Fatalf("Expected empty canvas, pixel (%d,%d) is %v", x, y, canvas.RGBAAt(x, y))
			}
		}
	}
}

func TestRenderFitsLargeImage(t *testing.T) {
	r := NewRenderer(20, 20)
	canvas, err := r.Render(solid(200, 100), transform.Identity)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer r.Release(canvas)

	// Shrunk to 20x10, centred vertically: rows 5..15
	if !isRed(canvas.RGBAAt(10, 10)) {
		t.Errorf("Expected centre red, got %v", canvas.RGBAAt(10, 10))
	}
	if !isWhite(canvas.RGBAAt(10, 1)) {
		t.Errorf("Expected top band empty, got %v", canvas.RGBAAt(10, 1))
	}
}

func TestRenderInvalidSize(t *testing.T) {
	r := NewRenderer(0, 10)
	if _, err := r.Render(solid(1, 1), transform.Identity); err == nil {
		t.Error("Expected error for zero width canvas")
	}
}

func TestPoolReuse(t *testing.T) {
	r := NewRenderer(16, 16)
	first, _ := r.Render(solid(4, 4), transform.Identity)
	r.Release(first)

	// A reused canvas must be cleared before drawing
	second, _ := r.Render(solid(4, 4), transform.Translation(100, 100))
	defer r.Release(second)
	if !isWhite(second.RGBAAt(8, 8)) {
		t.Errorf("Expected stale pixels to be cleared, got %v", second.RGBAAt(8, 8))
	}
}

func TestReleaseAfterResize(t *testing.T) {
	r := NewRenderer(16, 16)
	old, _ := r.Render(solid(4, 4), transform.Identity)

	r.Width, r.Height = 24, 12
	r.Release(old)

	canvas, err := r.Render(solid(4, 4), transform.Identity)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer r.Release(canvas)
	if canvas.Bounds() != image.Rect(0, 0, 24, 12) {
		t.Errorf("Expected 24x12 canvas, got %v", canvas.Bounds())
	}
}
