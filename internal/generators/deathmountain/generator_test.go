package deathmountain

import (
	"testing"

	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/registry"
)

func TestGenerateIsDeterministic(t *testing.T) {
	opts := registry.Options{Width: 3, Height: 3, Seed: 42}

	a, err := registry.Generate(ID, opts)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := registry.Generate(ID, opts)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if level.Render(a) != level.Render(b) {
		t.Error("same seed produced different levels")
	}
	if a.Terrain.Width() != 36 || a.Terrain.Height() != 30 {
		t.Errorf("terrain = %dx%d, expected 36x30", a.Terrain.Width(), a.Terrain.Height())
	}
}

func TestGenerateRejectsSingleRoom(t *testing.T) {
	if _, err := (Generator{}).Generate(registry.Options{Width: 1, Height: 1}); err == nil {
		t.Error("a 1x1 map should be rejected")
	}
}
