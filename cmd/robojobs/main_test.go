package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/robojobs/internal/config"
	"github.com/vovakirdan/robojobs/internal/core"
	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/library"
	"github.com/vovakirdan/robojobs/internal/shell"
)

func TestCheckReachable(t *testing.T) {
	if err := checkReachable(level.Simple()); err != nil {
		t.Errorf("checkReachable(Simple) = %v, expected nil", err)
	}

	walled := level.Simple()
	walled.Actors[1] = level.NewActor(level.Heart, core.Pt(0, 0), core.South)
	if err := checkReachable(walled); err == nil {
		t.Error("expected an error for a heart outside the room")
	}

	empty := level.NewState(level.NewTerrain(3, 3))
	if err := checkReachable(empty); err == nil {
		t.Error("expected an error for a level without a hero")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		src  library.Source
		err  shell.CommandError
		want string
	}{
		{
			name: "body error in a text file",
			src:  library.Source{Name: "walk", Line: 5},
			err:  shell.CommandError{Site: shell.SiteJobBody, Message: "oops", Line: 2},
			want: "jobs.txt:8: oops",
		},
		{
			name: "body error from a library",
			src:  library.Source{Name: "walk", Line: -1},
			err:  shell.CommandError{Site: shell.SiteJobBody, Message: "oops", Line: 2},
			want: "oops",
		},
		{
			name: "name error",
			src:  library.Source{Name: "if", Line: 5},
			err:  shell.CommandError{Site: shell.SiteJobName, Message: "reserved", Line: -1},
			want: "reserved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describe("jobs.txt", tt.src, &tt.err); got != tt.want {
				t.Errorf("describe = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestReadJobFileText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.txt")
	if err := os.WriteFile(path, []byte("# mine\nwalk:\nforward\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sources, err := readJobFile(path)
	if err != nil {
		t.Fatalf("readJobFile: %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("len(sources) = %d, expected 1", len(sources))
	}
	if sources[0].Name != "walk" || sources[0].Text != "forward\n" || sources[0].Line != 2 {
		t.Errorf("source = %+v, expected walk at line 2", sources[0])
	}

	if _, err := readJobFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestCompileSources(t *testing.T) {
	jobs, errs := compileSources([]library.Source{
		{Name: "walk", Text: "forward\nforward\n"},
		{Name: "bad", Text: "gribble\n"},
	})
	if _, ok := jobs["walk"]; !ok {
		t.Error("walk did not build")
	}
	if _, ok := errs["walk"]; ok {
		t.Errorf("walk error = %v, expected none", errs["walk"])
	}
	if _, ok := errs["bad"]; !ok {
		t.Error("expected bad to fail")
	}
}

func TestApplyPlayFlags(t *testing.T) {
	t.Cleanup(func() {
		flagGenerator, flagDifficulty = "", ""
	})

	tests := []struct {
		name       string
		generator  string
		difficulty string
		wantErr    bool
	}{
		{name: "defaults"},
		{name: "known generator", generator: "simple"},
		{name: "unknown generator", generator: "nope", wantErr: true},
		{name: "easy", difficulty: "easy"},
		{name: "fixed", difficulty: "fixed"},
		{name: "unknown difficulty", difficulty: "brutal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagGenerator, flagDifficulty = tt.generator, tt.difficulty
			cfg := config.Default()
			err := applyPlayFlags(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("applyPlayFlags error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
