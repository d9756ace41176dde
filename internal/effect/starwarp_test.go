package effect

import (
	"math/rand"
	"testing"

	"github.com/iburimskiy/screensaver/internal/config"
)

func TestStarDepthStaysInRange(t *testing.T) {
	f := newStarField(800, 600, rand.New(rand.NewSource(11)))

	for tick := 0; tick < 2000; tick++ {
		f.Step(800, 600)
		for i, st := range f.stars {
			if st.z <= 0 || st.z > config.StarMaxDepth {
				t.Fatalf("tick %d: star %d depth %f out of (0, %f]", tick, i, st.z, config.StarMaxDepth)
			}
		}
	}
}

func TestStarRespawnsAtBackWithPaletteColour(t *testing.T) {
	f := newStarField(800, 600, rand.New(rand.NewSource(12)))
	f.stars = f.stars[:1]
	f.stars[0].z = 0.5

	f.Step(800, 600)

	st := f.stars[0]
	if st.z != config.StarMaxDepth {
		t.Errorf("Expected respawned star at depth %f, got %f", config.StarMaxDepth, st.z)
	}
	found := false
	for _, c := range palette {
		if c == st.color {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected respawned colour from palette, got %v", st.color)
	}
	if st.x*st.x+st.y*st.y > 400*400 {
		t.Errorf("Expected respawn radius within half the width, got (%f, %f)", st.x, st.y)
	}
}

func TestStarSpeedDependsOnDepth(t *testing.T) {
	f := newStarField(800, 600, rand.New(rand.NewSource(13)))
	f.stars = []star{{z: config.StarMaxDepth}, {z: config.StarMaxDepth / 2}}

	f.Step(800, 600)

	far := config.StarMaxDepth - f.stars[0].z
	near := config.StarMaxDepth/2 - f.stars[1].z
	if near <= far {
		t.Errorf("Expected nearer star to move faster, got near=%f far=%f", near, far)
	}
}

func TestStarFieldDrawsOneCirclePerStar(t *testing.T) {
	f := newStarField(320, 200, rand.New(rand.NewSource(14)))
	f.Step(320, 200)

	s := newRecordSurface(320, 200)
	f.Draw(s)
	if s.circles != config.StarCount {
		t.Errorf("Expected %d circles, got %d", config.StarCount, s.circles)
	}
}
