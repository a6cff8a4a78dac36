// Package animation describes view animations as a pair of affine
// transforms: the pose a view starts in and the pose it ends in.
//
// A Type is one of a closed set of variants (slide from, slide to, zoom from,
// zoom to, rotate). Every variant animates either from some transform to the
// identity or from the identity to some transform, so a driver only has to
// set the view to InitialTransform and animate it to FinalTransform.
package animation

import (
	"fmt"

	"github.com/ivlev/viewanimator/internal/direction"
	"github.com/ivlev/viewanimator/internal/transform"
)

// Animation is what a driver needs from an animation: its two end poses.
type Animation interface {
	InitialTransform() transform.Transform
	FinalTransform() transform.Transform
}

// Kind identifies the active variant of a Type.
type Kind int

const (
	KindFrom Kind = iota
	KindTo
	KindZoom // Deprecated alias of KindZoomFrom
	KindZoomFrom
	KindZoomTo
	KindRotate
)

var kindNames = map[Kind]string{
	KindFrom:     "from",
	KindTo:       "to",
	KindZoom:     "zoom",
	KindZoomFrom: "zoom_from",
	KindZoomTo:   "zoom_to",
	KindRotate:   "rotate",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Type is an immutable animation description. Only the fields that belong
// to the active Kind are meaningful. Values are never validated: a negative
// scale or a huge offset simply yields the matching transform.
//
// The zero value is From(direction.Top, 0).
type Type struct {
	kind      Kind
	direction direction.Direction
	offset    float64
	scale     float64
	angle     float64
}

// From starts the view offset along dir and moves it back into place.
func From(dir direction.Direction, offset float64) Type {
	return Type{kind: KindFrom, direction: dir, offset: offset}
}

// To moves the view from its place to offset along dir.
func To(dir direction.Direction, offset float64) Type {
	return Type{kind: KindTo, direction: dir, offset: offset}
}

// Zoom starts the view scaled by scale and zooms it back to normal size.
//
// Deprecated: use ZoomFrom.
func Zoom(scale float64) Type {
	return Type{kind: KindZoom, scale: scale}
}

// ZoomFrom starts the view scaled by scale and zooms it back to normal size.
func ZoomFrom(scale float64) Type {
	return Type{kind: KindZoomFrom, scale: scale}
}

// ZoomTo zooms the view from normal size to scale.
func ZoomTo(scale float64) Type {
	return Type{kind: KindZoomTo, scale: scale}
}

// Rotate starts the view rotated by angle radians and turns it back.
func Rotate(angle float64) Type {
	return Type{kind: KindRotate, angle: angle}
}

func (t Type) Kind() Kind                     { return t.kind }
func (t Type) Direction() direction.Direction { return t.direction }
func (t Type) Offset() float64                { return t.offset }
func (t Type) Scale() float64                 { return t.scale }
func (t Type) Angle() float64                 { return t.angle }

// InitialTransform is the pose the view is put in before animating.
func (t Type) InitialTransform() transform.Transform {
	switch t.kind {
	case KindFrom:
		return t.slide()
	case KindZoom, KindZoomFrom:
		return transform.Scale(t.scale, t.scale)
	case KindRotate:
		return transform.Rotation(t.angle)
	default: // KindTo, KindZoomTo
		return transform.Identity
	}
}

// FinalTransform is the pose the view ends in.
func (t Type) FinalTransform() transform.Transform {
	switch t.kind {
	case KindTo:
		return t.slide()
	case KindZoomTo:
		return transform.Scale(t.scale, t.scale)
	default: // KindFrom, KindZoom, KindZoomFrom, KindRotate
		return transform.Identity
	}
}

// slide translates by offset along the direction's axis.
func (t Type) slide() transform.Transform {
	d := t.offset * t.direction.Sign()
	if t.direction.IsVertical() {
		return transform.Translation(0, d)
	}
	return transform.Translation(d, 0)
}

func (t Type) String() string {
	switch t.kind {
	case KindFrom, KindTo:
		return fmt.Sprintf("%s(%s, %g)", t.kind, t.direction, t.offset)
	case KindZoom, KindZoomFrom, KindZoomTo:
		return fmt.Sprintf("%s(%g)", t.kind, t.scale)
	case KindRotate:
		return fmt.Sprintf("%s(%g)", t.kind, t.angle)
	}
	return t.kind.String()
}

var _ Animation = Type{}
