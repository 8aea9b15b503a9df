package library

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/robojobs/internal/robot"
)

const sample = `jobs:
  - name: hunt
    work:
      - kind: look
        prop: treasure
      - kind: if
        register: "no"
        subject:
          kind: right
      - kind: if
        register: "yes"
        subject:
          kind: do
          job: step
      - kind: repeat
  - name: step
    work:
      - kind: forward
`

func TestUnmarshal(t *testing.T) {
	jobs, err := Unmarshal([]byte(sample))
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	expected := map[string]robot.Job{
		"hunt": {Name: "hunt", Work: []robot.Instruction{
			robot.Look(robot.PropTreasure),
			robot.If(robot.No, robot.Right()),
			robot.If(robot.Yes, robot.Do("step")),
			robot.Repeat(),
		}},
		"step": {Name: "step", Work: []robot.Instruction{robot.Forward()}},
	}
	if !reflect.DeepEqual(jobs, expected) {
		t.Errorf("Unmarshal = %v, expected %v", jobs, expected)
	}
}

func TestMarshalReadsBack(t *testing.T) {
	jobs := map[string]robot.Job{
		"b": {Name: "b", Work: []robot.Instruction{robot.If(robot.Yes, robot.If(robot.No, robot.Touch(robot.PropWall)))}},
		"a": {Name: "a", Work: []robot.Instruction{robot.Setmark(), robot.Do("b"), robot.Finish()}},
		"e": {Name: "e", Work: []robot.Instruction{}},
	}

	data, err := Marshal(jobs)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if a, b := strings.Index(string(data), "name: a"), strings.Index(string(data), "name: b"); a < 0 || a > b {
		t.Errorf("jobs not sorted by name:\n%s", data)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal error: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(got, jobs) {
		t.Errorf("Unmarshal(Marshal) = %v, expected %v", got, jobs)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected error
	}{
		{"kind", "jobs:\n  - name: a\n    work:\n      - kind: dance\n", ErrUnknownKind},
		{"prop", "jobs:\n  - name: a\n    work:\n      - kind: look\n        prop: cake\n", ErrUnknownProp},
		{"register", "jobs:\n  - name: a\n    work:\n      - kind: if\n        register: maybe\n        subject:\n          kind: eat\n", ErrUnknownRegister},
		{"subject", "jobs:\n  - name: a\n    work:\n      - kind: if\n        register: \"yes\"\n", ErrMissingSubject},
		{"call", "jobs:\n  - name: a\n    work:\n      - kind: do\n        job: b\n", ErrUnknownJob},
		{"duplicate", "jobs:\n  - name: a\n    work: []\n  - name: a\n    work: []\n", ErrDuplicateJob},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			if !errors.Is(err, tt.expected) {
				t.Errorf("Unmarshal error = %v, expected %v", err, tt.expected)
			}
		})
	}

	if _, err := Unmarshal([]byte("jobs:\n  - name: forward\n    work: []\n")); err == nil {
		t.Error("reserved job name accepted")
	}
	if _, err := Unmarshal([]byte("jobs: [")); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestSplitText(t *testing.T) {
	text := "# my jobs\n\nwalk:\nforward\nforward\n\nturn:\nleft\n"

	got, err := SplitText(text)
	if err != nil {
		t.Fatalf("SplitText error: %v", err)
	}
	expected := []Source{
		{Name: "walk", Text: "forward\nforward\n", Line: 3},
		{Name: "turn", Text: "left\n", Line: 7},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("SplitText = %+v, expected %+v", got, expected)
	}

	again, err := SplitText(JoinText(got))
	if err != nil {
		t.Fatalf("SplitText(JoinText) error: %v", err)
	}
	if len(again) != 2 || again[0].Text != "forward\nforward\n" || again[1].Text != "left\n" {
		t.Errorf("SplitText(JoinText) = %+v", again)
	}

	if _, err := SplitText("forward\nwalk:\n"); err == nil {
		t.Error("body before header accepted")
	}

	_, err = SplitText("walk:\nforward\nwalk:\nleft\n")
	if !errors.Is(err, ErrDuplicateJob) {
		t.Errorf("repeated header error = %v, expected %v", err, ErrDuplicateJob)
	}
}
