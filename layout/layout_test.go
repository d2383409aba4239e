package layout

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestFit(t *testing.T) {
	tests := []struct {
		name      string
		src, dst  Size
		wantScale float64
		wantX     float64
		wantY     float64
		wantW     float64
		wantH     float64
	}{
		{"wide into landscape", Size{2000, 1000}, Size{1200, 630}, 0.6, 0, 15, 1200, 600},
		{"exact", Size{1200, 630}, Size{1200, 630}, 1, 0, 0, 1200, 630},
		{"tall into square", Size{500, 1000}, Size{1080, 1080}, 1.08, 270, 0, 540, 1080},
		{"upscale small", Size{100, 50}, Size{400, 400}, 4, 0, 100, 400, 200},
		{"zero source", Size{0, 100}, Size{1200, 630}, 0, 600, 315, 0, 0},
		{"zero canvas", Size{100, 100}, Size{0, 0}, 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Fit(tt.src, tt.dst)
			if !near(p.Scale, tt.wantScale) {
				t.Errorf("Scale = %v, want %v", p.Scale, tt.wantScale)
			}
			if !near(p.X, tt.wantX) || !near(p.Y, tt.wantY) {
				t.Errorf("offset = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if !near(p.Width, tt.wantW) || !near(p.Height, tt.wantH) {
				t.Errorf("size = %vx%v, want %vx%v", p.Width, p.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitNeverNaN(t *testing.T) {
	p := Fit(Size{0, 0}, Size{0, 0})
	for _, v := range []float64{p.Scale, p.X, p.Y, p.Width, p.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Fit of zero sizes produced %+v", p)
		}
	}
}

func TestPaddedContains(t *testing.T) {
	r := Padded(Pt(100, 100), 40, 20, 5)
	if r.X != 75 || r.Y != 85 || r.W != 50 || r.H != 30 {
		t.Fatalf("Padded = %+v", r)
	}

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(100, 100), true},
		{Pt(75, 85), true},   // top-left corner
		{Pt(125, 115), true}, // bottom-right corner
		{Pt(74.9, 100), false},
		{Pt(100, 115.1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPaddedEmptyText(t *testing.T) {
	r := Padded(Pt(10, 10), 0, 32, 5)
	if r.W != 10 {
		t.Errorf("W = %v, want 10 (padding only)", r.W)
	}
	if !r.Contains(Pt(14, 10)) || r.Contains(Pt(16, 10)) {
		t.Error("empty-text box should be grabbable only within the padding")
	}
}

func TestViewportToCanvas(t *testing.T) {
	v := Viewport{
		Raster:  Sz(1200, 630),
		Display: Rect{W: 600, H: 315},
	}
	got := v.ToCanvas(Pt(300, 157))
	if !near(got.X, 600) || !near(got.Y, 314) {
		t.Errorf("ToCanvas = %v, want (600, 314)", got)
	}

	v.Display.X, v.Display.Y = 20, 40
	got = v.ToCanvas(Pt(320, 197))
	if !near(got.X, 600) || !near(got.Y, 314) {
		t.Errorf("ToCanvas with offset = %v, want (600, 314)", got)
	}
}

func TestViewportIdentity(t *testing.T) {
	var v Viewport
	p := Pt(12.5, 7)
	if got := v.ToCanvas(p); got != p {
		t.Errorf("zero viewport ToCanvas = %v, want %v", got, p)
	}
}

func TestViewportClamp(t *testing.T) {
	v := Viewport{Raster: Sz(100, 50)}
	if got := v.Clamp(Pt(-5, 70)); got != Pt(0, 50) {
		t.Errorf("Clamp = %v, want (0, 50)", got)
	}
	if got := v.Clamp(Pt(30, 20)); got != Pt(30, 20) {
		t.Errorf("Clamp inside = %v", got)
	}
}
