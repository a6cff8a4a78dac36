package animation

import (
	"fmt"

	"github.com/ivlev/viewanimator/internal/direction"
	"gopkg.in/yaml.v3"
)

// yamlType is the declarative form of a Type, e.g.
//
//	type: from
//	direction: top
//	offset: 30
type yamlType struct {
	Type      string               `yaml:"type"`
	Direction *direction.Direction `yaml:"direction,omitempty"`
	Offset    *float64             `yaml:"offset,omitempty"`
	Scale     *float64             `yaml:"scale,omitempty"`
	Angle     *float64             `yaml:"angle,omitempty"` // Radians
}

func (t Type) MarshalYAML() (interface{}, error) {
	out := yamlType{Type: t.kind.String()}
	switch t.kind {
	case KindFrom, KindTo:
		dir, offset := t.direction, t.offset
		out.Direction, out.Offset = &dir, &offset
	case KindZoom, KindZoomFrom, KindZoomTo:
		scale := t.scale
		out.Scale = &scale
	case KindRotate:
		angle := t.angle
		out.Angle = &angle
	default:
		return nil, fmt.Errorf("unknown animation kind %d", int(t.kind))
	}
	return out, nil
}

// UnmarshalYAML decodes the declarative form. Unknown types and slides
// without a direction are rejected; missing numbers default to zero.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	var in yamlType
	if err := value.Decode(&in); err != nil {
		return err
	}

	num := func(p *float64) float64 {
		if p == nil {
			return 0
		}
		return *p
	}

	switch in.Type {
	case "from", "to":
		if in.Direction == nil {
			return fmt.Errorf("line %d: %q animation needs a direction", value.Line, in.Type)
		}
		if in.Type == "from" {
			*t = From(*in.Direction, num(in.Offset))
		} else {
			*t = To(*in.Direction, num(in.Offset))
		}
	case "zoom":
		*t = Zoom(num(in.Scale))
	case "zoom_from":
		*t = ZoomFrom(num(in.Scale))
	case "zoom_to":
		*t = ZoomTo(num(in.Scale))
	case "rotate":
		*t = Rotate(num(in.Angle))
	default:
		return fmt.Errorf("line %d: unknown animation type %q", value.Line, in.Type)
	}
	return nil
}
