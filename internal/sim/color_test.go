package sim

import "testing"

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    RGBA
	}{
		{"red", 0, 1, 1, RGBA{R: 255, A: 255}},
		{"green", 1.0 / 3.0, 1, 1, RGBA{G: 255, A: 255}},
		{"cyan wraps past one", 1.5, 1, 1, RGBA{G: 255, B: 255, A: 255}},
		{"negative hue wraps", -0.25, 1, 1, RGBA{R: 127, B: 255, A: 255}},
		{"grey when unsaturated", 0.42, 0, 0.5, RGBA{R: 127, G: 127, B: 127, A: 255}},
		{"black at zero value", 0.7, 0.8, 0, RGBA{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSVToRGB(tt.h, tt.s, tt.v); got != tt.want {
				t.Fatalf("HSVToRGB(%v,%v,%v) = %+v, want %+v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestHSVToRGBClampsOutOfRangeValue(t *testing.T) {
	got := HSVToRGB(0, 0, 2)
	if got != (RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("value above 1 should clamp to white, got %+v", got)
	}
}
