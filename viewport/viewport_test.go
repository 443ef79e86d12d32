package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

var logicalSizes = [][2]float64{
	{800, 600},
	{320, 240},
	{256, 224},
	{1920, 1080},
	{100, 300},
	{64.5, 48.25},
}

var physicalSizes = [][2]float64{
	{1600, 900},
	{400, 400},
	{1024, 768},
	{1, 1},
	{3840, 2160},
	{333, 1001},
	{800, 600},
	{2560, 1080},
}

func TestNew(t *testing.T) {
	m, err := New(800, 600)
	require.NoError(t, err)
	assert.Equal(t, 800.0, m.Width())
	assert.Equal(t, 600.0, m.Height())
	w, h := m.Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)
}

func TestNew_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 600},
		{"zero height", 800, 0},
		{"negative width", -1, 600},
		{"negative height", 800, -600},
		{"nan", math.NaN(), 600},
		{"inf", math.Inf(1), 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(0, 0) })
	assert.NotPanics(t, func() { MustNew(1, 1) })
}

func TestPlacement_Scenarios(t *testing.T) {
	tests := []struct {
		name                     string
		pw, ph                   float64
		scale                    float64
		width, height, left, top float64
	}{
		{"pillarbox", 1600, 900, 1.5, 1200, 900, 200, 0},
		{"letterbox", 400, 400, 0.5, 400, 300, 0, 50},
		{"exact fit", 800, 600, 1, 800, 600, 0, 0},
		{"integer upscale", 1600, 1200, 2, 1600, 1200, 0, 0},
	}

	m := MustNew(800, 600)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.scale, m.Scale(tt.pw, tt.ph), eps)

			w, h := m.ScaledSize(tt.pw, tt.ph)
			assert.InDelta(t, tt.width, w, eps)
			assert.InDelta(t, tt.height, h, eps)

			left, top := m.Padding(tt.pw, tt.ph)
			assert.InDelta(t, tt.left, left, eps)
			assert.InDelta(t, tt.top, top, eps)

			p := m.Placement(tt.pw, tt.ph)
			assert.Equal(t, Placement{Left: left, Top: top, Width: w, Height: h, Scale: m.Scale(tt.pw, tt.ph)}, p)
			assert.True(t, p.Visible())
		})
	}
}

func TestScaleFactors(t *testing.T) {
	m := MustNew(800, 600)
	sx, sy := m.ScaleFactors(1600, 900)
	assert.InDelta(t, 2.0, sx, eps)
	assert.InDelta(t, 1.5, sy, eps)
	assert.Equal(t, math.Min(sx, sy), m.Scale(1600, 900))
}

func TestPlacement_Properties(t *testing.T) {
	for _, ls := range logicalSizes {
		m := MustNew(ls[0], ls[1])
		for _, ps := range physicalSizes {
			pw, ph := ps[0], ps[1]
			p := m.Placement(pw, ph)

			// Fits on both axes and fills at least one.
			assert.LessOrEqual(t, p.Width, pw+eps, "%v in %v", ls, ps)
			assert.LessOrEqual(t, p.Height, ph+eps, "%v in %v", ls, ps)
			filled := math.Abs(p.Width-pw) < 1e-6 || math.Abs(p.Height-ph) < 1e-6
			assert.True(t, filled, "%v in %v: neither axis filled", ls, ps)

			// Aspect ratio is preserved.
			assert.InDelta(t, ls[0]/ls[1], p.Width/p.Height, 1e-9, "%v in %v", ls, ps)

			// Bars are symmetric and never negative.
			assert.Equal(t, (pw-p.Width)/2, p.Left)
			assert.Equal(t, (ph-p.Height)/2, p.Top)
			assert.GreaterOrEqual(t, p.Left, -eps)
			assert.GreaterOrEqual(t, p.Top, -eps)
			assert.InDelta(t, pw-p.Right(), p.Left, 1e-9)
			assert.InDelta(t, ph-p.Bottom(), p.Top, 1e-9)
		}
	}
}

func TestScale_Monotonic(t *testing.T) {
	m := MustNew(800, 600)
	prev := m.Scale(100, 600)
	for pw := 101.0; pw <= 3000; pw += 37 {
		s := m.Scale(pw, 600)
		assert.GreaterOrEqual(t, s, prev, "pw=%v", pw)
		prev = s
	}
	// Once height binds, widening no longer helps.
	assert.Equal(t, m.Scale(2000, 600), m.Scale(3000, 600))
}

func TestToLogical_RoundTrip(t *testing.T) {
	for _, ls := range logicalSizes {
		m := MustNew(ls[0], ls[1])
		for _, ps := range physicalSizes {
			pw, ph := ps[0], ps[1]
			for _, f := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
				lx := math.Floor(ls[0]*f) + 0.5
				ly := math.Floor(ls[1]*f) + 0.5

				px, py := m.ToPhysical(lx, ly, pw, ph)
				gx, gy := m.ToLogical(px, py, pw, ph)
				assert.Equal(t, math.Floor(lx), gx, "%v in %v at %v", ls, ps, f)
				assert.Equal(t, math.Floor(ly), gy, "%v in %v at %v", ls, ps, f)
			}
		}
	}
}

func TestToLogical_RoundTripWholePixels(t *testing.T) {
	for _, ls := range logicalSizes {
		m := MustNew(ls[0], ls[1])
		for _, ps := range physicalSizes {
			pw, ph := ps[0], ps[1]
			for lx := 0.0; lx <= ls[0]; lx++ {
				ly := math.Floor(lx * ls[1] / ls[0])
				px, py := m.ToPhysical(lx, ly, pw, ph)
				gx, gy := m.ToLogical(px, py, pw, ph)
				if gx != lx || gy != ly {
					t.Fatalf("%v in %v: (%v, %v) mapped back to (%v, %v)", ls, ps, lx, ly, gx, gy)
				}
			}
		}
	}
}

func TestToLogical_ExactPixelBoundaries(t *testing.T) {
	// 256x224 in 1920x1080: scale 135/28, left padding 2400/7. These cursor
	// pixels land exactly on logical pixel edges.
	m := MustNew(256, 224)
	tests := []struct {
		px   float64
		want float64
	}{
		{420, 16},
		{555, 44},
	}
	for _, tt := range tests {
		x, _ := m.ToLogical(tt.px, 540, 1920, 1080)
		assert.Equal(t, tt.want, x, "px=%v", tt.px)
	}

	// 800x600 in 1024x768 (scale 1.28): logical (29, 21) is exact.
	m = MustNew(800, 600)
	px, py := m.ToPhysical(29, 21, 1024, 768)
	x, y := m.ToLogical(px, py, 1024, 768)
	assert.Equal(t, 29.0, x)
	assert.Equal(t, 21.0, y)
}

func TestToLogical_Clamping(t *testing.T) {
	m := MustNew(800, 600)
	const pw, ph = 1600, 900

	tests := []struct {
		name   string
		px, py float64
		x, y   float64
	}{
		{"origin in left bar", 0, 0, 0, 0},
		{"far corner in right bar", 1600, 900, 800, 600},
		{"left edge of canvas", 200, 450, 0, 300},
		{"right edge of canvas", 1400, 450, 800, 300},
		{"inside right bar", 1500, 100, 800, 66},
		{"above surface", 800, -50, 400, 0},
		{"below surface", 800, 5000, 400, 600},
		{"center", 800, 450, 400, 300},
		{"fraction floors", 201.4, 1.4, 0, 0},
		{"just past one pixel", 201.6, 1.6, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := m.ToLogical(tt.px, tt.py, pw, ph)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}

func TestToLogical_Letterbox(t *testing.T) {
	m := MustNew(800, 600)
	// (0, 0) padding 50 on top, scale 0.5
	x, y := m.ToLogical(200, 10, 400, 400)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 0.0, y)

	x, y = m.ToLogical(200, 390, 400, 400)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 600.0, y)
}

func TestDegeneratePhysicalSize(t *testing.T) {
	m := MustNew(800, 600)

	tests := []struct {
		name   string
		pw, ph float64
	}{
		{"zero", 0, 0},
		{"zero width", 0, 600},
		{"zero height", 800, 0},
		{"negative", -100, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := m.Placement(tt.pw, tt.ph)
			assert.False(t, p.Visible())
			assert.LessOrEqual(t, m.Scale(tt.pw, tt.ph), 0.0)

			x, y := m.ToLogical(10, 10, tt.pw, tt.ph)
			assert.Equal(t, 0.0, x)
			assert.Equal(t, 0.0, y)
		})
	}
}

func TestPlacement_Contains(t *testing.T) {
	p := MustNew(800, 600).Placement(1600, 900)
	assert.False(t, p.Contains(199, 450))
	assert.True(t, p.Contains(200, 450))
	assert.True(t, p.Contains(1399, 899))
	assert.False(t, p.Contains(1400, 450))
	assert.False(t, p.Contains(800, 900))
}

func TestToPhysical(t *testing.T) {
	m := MustNew(800, 600)
	px, py := m.ToPhysical(0, 0, 1600, 900)
	assert.Equal(t, 200.0, px)
	assert.Equal(t, 0.0, py)

	px, py = m.ToPhysical(800, 600, 1600, 900)
	assert.InDelta(t, 1400.0, px, eps)
	assert.InDelta(t, 900.0, py, eps)
}
