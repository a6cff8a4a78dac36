package direction

import (
	"fmt"
	"math/rand"
	"strings"
)

// Direction is the side a view slides in from or out to.
type Direction int

const (
	Top Direction = iota
	Bottom
	Left
	Right
)

var all = []Direction{Top, Bottom, Left, Right}

// All returns every direction in declaration order.
func All() []Direction {
	out := make([]Direction, len(all))
	copy(out, all)
	return out
}

func (d Direction) IsVertical() bool {
	return d == Top || d == Bottom
}

// Sign is the multiplier applied to an offset along the direction's axis.
// The y axis grows downward, so Top and Left are negative.
func (d Direction) Sign() float64 {
	switch d {
	case Top, Left:
		return -1
	default:
		return 1
	}
}

// Random picks a direction uniformly. A nil r uses the global source.
func Random(r *rand.Rand) Direction {
	if r == nil {
		return all[rand.Intn(len(all))]
	}
	return all[r.Intn(len(all))]
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Parse accepts top/up, bottom/down, left and right in any case.
func Parse(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "up":
		return Top, nil
	case "bottom", "down":
		return Bottom, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Top, fmt.Errorf("unknown direction: %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
