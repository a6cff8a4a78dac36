package animation

import (
	"strings"
	"testing"

	"github.com/ivlev/viewanimator/internal/direction"
	"gopkg.in/yaml.v3"
)

func TestYAMLRoundTrip(t *testing.T) {
	all := []Type{
		From(direction.Top, 30),
		To(direction.Left, 0),
		Zoom(1.5),
		ZoomFrom(0),
		ZoomTo(2),
		Rotate(-0.75),
	}

	data, err := yaml.Marshal(all)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var back []Type
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v\n%s", err, data)
	}

	if len(back) != len(all) {
		t.Fatalf("Expected %d animations, got %d", len(all), len(back))
	}
	for i := range all {
		if back[i] != all[i] {
			t.Errorf("Entry %d: expected %v, got %v", i, all[i], back[i])
		}
	}
}

func TestYAMLDecode(t *testing.T) {
	doc := `
- type: from
  direction: down
  offset: 12
- type: rotate
  angle: 0.5
- type: zoom_to
`
	var got []Type
	if err := yaml.Unmarshal([]byte(doc), &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	expected := []Type{From(direction.Bottom, 12), Rotate(0.5), ZoomTo(0)}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Entry %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestYAMLDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown type", "type: spin\n", "unknown animation type"},
		{"missing direction", "type: to\noffset: 4\n", "needs a direction"},
		{"bad direction", "type: from\ndirection: sideways\n", "unknown direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Type
			err := yaml.Unmarshal([]byte(tt.doc), &a)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
