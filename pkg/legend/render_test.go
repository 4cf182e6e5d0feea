package legend

import (
	"image/color"
	"math"
	"testing"
)

var thermalStops = []Stop{
	{Offset: 0, R: 0, G: 0, B: 0},
	{Offset: 50, R: 255, G: 0, B: 0},
	{Offset: 100, R: 255, G: 255, B: 255},
}

func TestColorAtInterpolation(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  color.NRGBA
	}{
		{"start", 0, color.NRGBA{0, 0, 0, 255}},
		{"quarter is halfway black to red", 0.25, color.NRGBA{127, 0, 0, 255}},
		{"midpoint is exactly red", 0.5, color.NRGBA{255, 0, 0, 255}},
		{"end is exactly white", 1.0, color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ColorAt(thermalStops, tt.ratio)
			if !ok {
				t.Fatalf("ColorAt(%v) reported no match", tt.ratio)
			}
			if got != tt.want {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestColorAtNoMatch(t *testing.T) {
	tests := []struct {
		name  string
		stops []Stop
		ratio float64
	}{
		{"empty ramp", nil, 0.5},
		{"single stop", []Stop{{Offset: 50, R: 9}}, 0.5},
		{"below domain", []Stop{{Offset: 40}, {Offset: 60}}, 0.1},
		{"above domain", []Stop{{Offset: 40}, {Offset: 60}}, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ColorAt(tt.stops, tt.ratio); ok {
				t.Error("expected no match")
			}
		})
	}
}

func TestColorAtDegeneratePair(t *testing.T) {
	stops := []Stop{
		{Offset: 50, R: 10, G: 20, B: 30},
		{Offset: 50, R: 200, G: 200, B: 200},
	}
	got, ok := ColorAt(stops, 0.5)
	if !ok {
		t.Fatal("degenerate pair should still match at its offset")
	}
	// Zero-width pair blends at 0: the first stop's color wins.
	if got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("ColorAt = %v, want first stop color", got)
	}
}

func TestColorAtFirstMatchingPairWins(t *testing.T) {
	stops := []Stop{
		{Offset: 0, R: 0},
		{Offset: 50, R: 100},
		{Offset: 50, R: 200},
		{Offset: 100, R: 255},
	}
	got, _ := ColorAt(stops, 0.5)
	if got.R != 100 {
		t.Errorf("ratio 0.5 R = %d, want 100 (end of first matching pair)", got.R)
	}
}

func TestValuesExtraction(t *testing.T) {
	labels := []Label{
		{Y: 10, Text: "30.0"},
		{Y: 150, Text: "15°C"},
		{Y: 200, Text: "approx -2.5 deg"},
		{Y: 290, Text: "no number here"},
	}

	got := Values(labels)
	want := []float64{30.0, 15, -2.5}
	if len(got) != len(want) {
		t.Fatalf("Values = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("Values[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRenderPanelDimensions(t *testing.T) {
	ramp := &Ramp{
		Stops:  thermalStops,
		Labels: []Label{{Y: 10, Text: "30.0"}, {Y: 290, Text: "0.0"}},
	}

	out := Render(ramp, RenderOptions{Height: 400, BarWidth: 60, Caption: Caption{
		Title: "Temperature", Unit: "(degrees C)", Format: "%.1f°C",
	}})

	wantWidth := padding + 60 + padding + labelWidth + padding
	if got := out.Bounds().Dx(); got != wantWidth {
		t.Errorf("panel width = %d, want %d", got, wantWidth)
	}
	if got := out.Bounds().Dy(); got != 400 {
		t.Errorf("panel height = %d, want 400", got)
	}
}

func TestRenderEmptyRampDoesNotPaint(t *testing.T) {
	out := Render(&Ramp{}, RenderOptions{Height: 300})

	// A pixel in the middle of the bar interior must keep the background.
	x := padding + DefaultBarWidth/2
	y := 150
	got := out.NRGBAAt(x, y)
	if got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("bar interior pixel = %v, want unpainted white", got)
	}
}

func TestRenderPaintsBarInterior(t *testing.T) {
	ramp := &Ramp{Stops: thermalStops}
	out := Render(ramp, RenderOptions{Height: 300})

	// At mid bar height the ramp is near pure red.
	x := padding + DefaultBarWidth/2
	y := 300 / 2
	got := out.NRGBAAt(x, y)
	if got.R < 200 || got.G > 80 || got.B > 80 {
		t.Errorf("mid-bar pixel = %v, want a red-dominated color", got)
	}
}

func TestRenderNoNumericLabels(t *testing.T) {
	ramp := &Ramp{
		Stops:  thermalStops,
		Labels: []Label{{Y: 10, Text: "high"}, {Y: 290, Text: "low"}},
	}

	// Must not panic and must still produce a full-size panel.
	out := Render(ramp, RenderOptions{Height: 300, Caption: Caption{Title: "Velocity"}})
	if out.Bounds().Dy() != 300 {
		t.Errorf("panel height = %d, want 300", out.Bounds().Dy())
	}
}

func TestMidpointIsArithmeticMean(t *testing.T) {
	values := Values([]Label{
		{Y: 10, Text: "30.0"},
		{Y: 100, Text: "22.0"}, // not the midpoint of the range
		{Y: 290, Text: "0.0"},
	})

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if mid := (minVal + maxVal) / 2; mid != 15.0 {
		t.Errorf("midpoint = %v, want 15.0 (mean of extremes, not any label)", mid)
	}
}
