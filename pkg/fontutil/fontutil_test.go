package fontutil

import "testing"

func TestLoadAlwaysReturnsUsableFace(t *testing.T) {
	face := Load(nil, 14)
	if face.Face == nil {
		t.Fatal("Load returned a nil face")
	}
	// Either a system font or the bitmap fallback must produce metrics.
	if face.Metrics().Height == 0 {
		t.Error("face has zero line height")
	}
}

func TestLoadUnknownFontFallsBack(t *testing.T) {
	face := Load([]string{"definitely-not-a-real-font-name.ttf"}, 14)
	if face.Face == nil {
		t.Fatal("Load returned a nil face")
	}
	if !face.Fallback {
		t.Error("expected fallback face for unknown font name")
	}
}
