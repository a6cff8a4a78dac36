package animation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ivlev/viewanimator/internal/config"
)

func TestRandomDistribution(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	cfg := config.Default()

	const n = 10000
	counts := map[Kind]int{}
	for i := 0; i < n; i++ {
		a, ok := Random(r, cfg).(Type)
		if !ok {
			t.Fatal("Random should return a Type")
		}
		counts[a.Kind()]++

		switch a.Kind() {
		case KindRotate:
			if math.Abs(a.Angle()) > cfg.MaxRotationAngle {
				t.Errorf("Angle %f outside [-%f, %f]", a.Angle(), cfg.MaxRotationAngle, cfg.MaxRotationAngle)
			}
		case KindZoomFrom:
			if a.Scale() < 0 || a.Scale() > cfg.MaxZoomScale {
				t.Errorf("Scale %f outside [0, %f]", a.Scale(), cfg.MaxZoomScale)
			}
		case KindFrom:
			if a.Offset() != cfg.Offset {
				t.Errorf("Expected offset %f taken from config, got %f", cfg.Offset, a.Offset())
			}
		}
	}

	for _, k := range []Kind{KindTo, KindZoom, KindZoomTo} {
		if counts[k] != 0 {
			t.Errorf("Random produced %v %d times", k, counts[k])
		}
	}

	// Expected ~3333 each; 3000..3667 is far outside random noise.
	for _, k := range []Kind{KindRotate, KindFrom, KindZoomFrom} {
		if counts[k] < 3000 || counts[k] > 3667 {
			t.Errorf("Kind %v drawn %d times out of %d", k, counts[k], n)
		}
	}
}

func TestRandomSeeded(t *testing.T) {
	cfg := config.Default()
	a := rand.New(rand.NewSource(1))
	b := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		x, y := Random(a, cfg), Random(b, cfg)
		if x != y {
			t.Fatalf("Draw %d: same seed gave %v and %v", i, x, y)
		}
	}
}

func TestRandomCustomBounds(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	cfg := config.Config{Offset: 500, MaxZoomScale: 0.25, MaxRotationAngle: 0.1}

	for i := 0; i < 1000; i++ {
		a := Random(r, cfg).(Type)
		switch a.Kind() {
		case KindRotate:
			if a.Angle() < -0.1 || a.Angle() > 0.1 {
				t.Errorf("Angle %f outside custom bound", a.Angle())
			}
		case KindZoomFrom:
			if a.Scale() < 0 || a.Scale() > 0.25 {
				t.Errorf("Scale %f outside custom bound", a.Scale())
			}
		case KindFrom:
			if a.Offset() != 500 {
				t.Errorf("Expected offset 500, got %f", a.Offset())
			}
		}
	}
}

func TestRandomNilSource(t *testing.T) {
	a := Random(nil, config.Default())
	if a == nil {
		t.Fatal("Random(nil) returned nil")
	}
}
