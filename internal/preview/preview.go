// Package preview draws a picture the way a view would look in the start
// and end pose of an animation. Only those two poses are rendered; nothing
// is interpolated in between.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/ivlev/viewanimator/internal/animation"
	"github.com/ivlev/viewanimator/internal/transform"
	"golang.org/x/image/draw"
)

// Pose selects which end of an animation to draw.
type Pose int

const (
	Initial Pose = iota
	Final
)

func (p Pose) String() string {
	if p == Final {
		return "final"
	}
	return "initial"
}

// Of returns the transform of a at pose p.
func (p Pose) Of(a animation.Animation) transform.Transform {
	if p == Final {
		return a.FinalTransform()
	}
	return a.InitialTransform()
}

type Renderer struct {
	Width, Height int
	Background    color.Color
	Interpolator  draw.Interpolator

	pool sync.Pool
}

// NewRenderer creates a Renderer with a white background and bilinear
// sampling.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:        width,
		Height:       height,
		Background:   color.White,
		Interpolator: draw.BiLinear,
	}
}

// Render draws img centred on a fresh canvas with t applied around the
// image centre. Images larger than the canvas are shrunk to fit first.
// A singular t (for example zoom scale 0) leaves the canvas empty.
//
// The canvas comes from a pool; hand it back with r.Release when done.
func (r *Renderer) Render(img image.Image, t transform.Transform) (*image.RGBA, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", r.Width, r.Height)
	}

	canvas := r.canvas()
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	b := img.Bounds()
	if b.Empty() {
		return canvas, nil
	}

	w, h := float64(b.Dx()), float64(b.Dy())
	fit := math.Min(1, math.Min(float64(r.Width)/w, float64(r.Height)/h))

	s2d := transform.Translation(-float64(b.Min.X)-w/2, -float64(b.Min.Y)-h/2).
		Concat(transform.Scale(fit, fit)).
		Concat(t).
		Concat(transform.Translation(float64(r.Width)/2, float64(r.Height)/2))

	if _, ok := s2d.Invert(); !ok {
		return canvas, nil
	}

	interp := r.Interpolator
	if interp == nil {
		interp = draw.BiLinear
	}
	interp.Transform(canvas, s2d.Aff3(), img, b, draw.Over, nil)

	return canvas, nil
}

// RenderPose is Render with the transform taken from a at pose p.
func (r *Renderer) RenderPose(img image.Image, a animation.Animation, p Pose) (*image.RGBA, error) {
	return r.Render(img, p.Of(a))
}
