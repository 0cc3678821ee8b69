package audio

import (
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"
	"testing"
)

func TestClampedVolume(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   float64
	}{
		{"default", 0.5, 0.5},
		{"full", 1, 1},
		{"too loud", 3.5, 1},
		{"muted", 0, 0},
		{"negative", -2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := (Config{Volume: tc.volume}).ClampedVolume(); got != tc.want {
				t.Errorf("ClampedVolume() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSilentDoesNothing(t *testing.T) {
	var d Device = Silent{}
	d.PlayLoop(TrackBackground)
	d.PlayOnce(TrackJump)
	d.Stop(TrackBackground)
	d.Close()
}

// The simulation imports this package; it must build without a sound device.
func TestNoBackendImports(t *testing.T) {
	entries, err := os.ReadDir(".")
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("ParseFile(%s) failed: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if strings.HasPrefix(path, "github.com/gopxl/") || strings.HasPrefix(path, "github.com/ebitengine/") {
				t.Errorf("%s imports %s", name, path)
			}
		}
	}
}
