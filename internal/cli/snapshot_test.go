package cli

import (
	"strings"
	"testing"
	"time"
)

func TestOutputName(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 30, 45, 0, time.UTC)

	got := outputName("temperature", 6, now)
	want := "nz_temperature_z6_20260115_093045.png"
	if got != want {
		t.Errorf("outputName = %q, want %q", got, want)
	}
}

func TestLoadCatalogDefault(t *testing.T) {
	cat, err := loadCatalog("")
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if len(cat.Layers) == 0 || len(cat.Coverage) == 0 {
		t.Error("empty default catalogue")
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := loadCatalog("/does/not/exist.toml")
	if err == nil {
		t.Fatal("expected error for missing catalogue file")
	}
	if !strings.Contains(err.Error(), "exist.toml") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestTileMark(t *testing.T) {
	okMark := tileMark(nil)
	failMark := tileMark(errTest)

	if okMark == failMark {
		t.Error("success and failure markers should differ")
	}
	if !strings.Contains(okMark, iconSuccess) {
		t.Errorf("success marker %q missing %q", okMark, iconSuccess)
	}
	if !strings.Contains(failMark, iconError) {
		t.Errorf("failure marker %q missing %q", failMark, iconError)
	}
}

var errTest = &testError{}

type testError struct{}

func (*testError) Error() string { return "test failure" }
