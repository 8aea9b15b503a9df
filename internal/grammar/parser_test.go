package grammar

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/robojobs/internal/robot"
)

func TestParseInstructionSuccess(t *testing.T) {
	parser := New([]string{"jones"})

	tests := []struct {
		input    string
		expected robot.Instruction
	}{
		{"forward\n", robot.Forward()},
		{"backward\n", robot.Backward()},
		{"left\n", robot.Left()},
		{"right\n", robot.Right()},
		{"punch\n", robot.Punch()},
		{"eat\n", robot.Eat()},
		{"setmark\n", robot.Setmark()},
		{"erase\n", robot.Erase()},
		{"repeat\n", robot.Repeat()},
		{"finish\n", robot.Finish()},
		{"touch wall\n", robot.Touch(robot.PropWall)},
		{"look wall\n", robot.Look(robot.PropWall)},
		{"look  treasure \t\n", robot.Look(robot.PropTreasure)},
		{"do jones\n", robot.Do("jones")},
		{"if yes forward\n", robot.If(robot.Yes, robot.Forward())},
		{"if yes if no forward\n", robot.If(robot.Yes, robot.If(robot.No, robot.Forward()))},
		{"  \tleft\n", robot.Left()},
	}

	for _, tc := range tests {
		t.Run(strings.TrimSpace(tc.input), func(t *testing.T) {
			r := parser.ParseInstruction(tc.input)
			s, ok := r.(Success[robot.Instruction])
			if !ok {
				t.Fatalf("ParseInstruction(%q) = %#v, expected success", tc.input, r)
			}
			if !reflect.DeepEqual(s.Value, tc.expected) {
				t.Errorf("ParseInstruction(%q) = %v, expected %v", tc.input, s.Value, tc.expected)
			}
		})
	}
}

func TestParseInstructionFail(t *testing.T) {
	parser := New([]string{"jones"})

	tests := []struct {
		name    string
		input   string
		mention string
	}{
		{"no such prefix", "gribbl\n", "gribbl"},
		{"weird suffix", "punch left\n", "left"},
		{"weird prop", "look jones\n", "jones"},
		{"weird job", "do left\n", "left"},
		{"weird register name", "if wall backward\n", "yes"},
		{"missing prop", "touch\n", `"wall"`},
		{"missing job name", "do \n", `"jones"`},
		{"missing condition register", "if \n", `"yes"`},
		{"missing condition subject", "if yes \n", `"forward"`},
		{"case sensitive", "Forward\n", "Forward"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := parser.ParseInstruction(tc.input)
			f, ok := r.(Fail)
			if !ok {
				t.Fatalf("ParseInstruction(%q) = %#v, expected fail", tc.input, r)
			}
			if !strings.Contains(f.Message, tc.mention) {
				t.Errorf("message %q does not mention %q", f.Message, tc.mention)
			}
		})
	}
}

func TestParseInstructionContinue(t *testing.T) {
	tests := []struct {
		name     string
		jobs     []string
		input    string
		expected []string
	}{
		{"job prefix", []string{"jones"}, "do jo", []string{"do jones"}},
		{"empty input", []string{"dig"}, "", CommandWords},
		{"empty input without jobs", nil, "", []string{
			"eat", "forward", "backward", "left", "right", "punch", "setmark",
			"erase", "repeat", "finish", "touch", "look", "if",
		}},
		{"verb prefix", nil, "f", []string{"forward", "finish"}},
		{"complete verb", nil, "forward", []string{"forward\n"}},
		{"trailing blanks", nil, "forward  ", []string{"forward\n"}},
		{"prop", nil, "look t", []string{"look treasure"}},
		{"register", nil, "if ", []string{"if yes", "if no"}},
		{"conditional subject", nil, "if no l", []string{"if no left", "if no look"}},
		{"nested job", []string{"dig", "dance"}, "if yes do d", []string{"if yes do dance", "if yes do dig"}},
		{"exact and longer job", []string{"jo", "jones"}, "do jo", []string{"do jo", "do jones"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(tc.jobs).ParseInstruction(tc.input)
			c, ok := r.(Continue)
			if !ok {
				t.Fatalf("ParseInstruction(%q) = %#v, expected continue", tc.input, r)
			}
			if !reflect.DeepEqual(c.Completions, tc.expected) {
				t.Errorf("Completions = %q, expected %q", c.Completions, tc.expected)
			}
		})
	}
}

func TestExactJobWithLongerSibling(t *testing.T) {
	r := New([]string{"jones", "jo"}).ParseInstruction("do jo\n")
	s, ok := r.(Success[robot.Instruction])
	if !ok {
		t.Fatalf("ParseInstruction(\"do jo\\n\") = %#v, expected success", r)
	}
	if s.Value != robot.Do("jo") {
		t.Errorf("Value = %v, expected do jo", s.Value)
	}
}

func TestNoJobs(t *testing.T) {
	for _, input := range []string{"d", "do", "do ", "do x\n", "if yes do "} {
		r := New(nil).ParseInstruction(input)
		f, ok := r.(Fail)
		if !ok {
			t.Fatalf("ParseInstruction(%q) = %#v, expected fail", input, r)
		}
		if !strings.Contains(f.Message, "no jobs") {
			t.Errorf("message %q should say there are no jobs", f.Message)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	parser := New([]string{"dig", "home"})

	var all []robot.Instruction
	for _, verb := range robot.PlainVerbs {
		all = append(all, robot.Plain{Op: verb})
	}
	for _, prop := range robot.Props {
		all = append(all, robot.Look(prop), robot.Touch(prop))
	}
	all = append(all, robot.Do("dig"), robot.Do("home"))

	base := len(all)
	for _, reg := range robot.RegisterNames {
		for _, inst := range all[:base] {
			all = append(all, robot.If(reg, inst))
		}
	}
	all = append(all, robot.If(robot.No, robot.If(robot.Yes, robot.Touch(robot.PropMark))))

	for _, inst := range all {
		r := parser.ParseInstruction(inst.String() + "\n")
		s, ok := r.(Success[robot.Instruction])
		if !ok {
			t.Errorf("ParseInstruction(%q) = %#v, expected success", inst.String(), r)
			continue
		}
		if !reflect.DeepEqual(s.Value, inst) {
			t.Errorf("round trip of %q gave %v", inst.String(), s.Value)
		}
	}
}

// Every completion offered for a prefix must itself parse as continue or success.
func TestCompletionSoundness(t *testing.T) {
	parser := New([]string{"jo", "jones", "sweep"})

	inputs := []string{
		"", "e", "f", "fo", "forward", "look", "look ", "look m", "touch w",
		"do", "do ", "do j", "do jo", "if", "if ", "if y", "if yes ", "if yes if n",
		"if no do s", "r", "s", "  p",
	}

	checkCompletions(t, parser, inputs)

	// Without jobs nothing may lead into "do".
	checkCompletions(t, New(nil), []string{"", "e", "f", "if ", "if yes ", "if no if yes "})
}

func checkCompletions(t *testing.T, parser *Parser, inputs []string) {
	t.Helper()
	for _, input := range inputs {
		completions := Completions[robot.Instruction](parser.ParseInstruction(input))
		if len(completions) == 0 {
			t.Errorf("ParseInstruction(%q) offered no completions", input)
			continue
		}
		for _, c := range completions {
			if r, failed := parser.ParseInstruction(c).(Fail); failed {
				t.Errorf("completion %q of %q fails to parse: %s", c, input, r.Message)
			}
		}
	}
}

func TestParseInstructionList(t *testing.T) {
	parser := New([]string{"jones"})

	r := parser.ParseInstructionList("\npunch\ndo jones\n  eat\n")
	s, ok := r.(Success[[]robot.Instruction])
	if !ok {
		t.Fatalf("ParseInstructionList() = %#v, expected success", r)
	}
	expected := []robot.Instruction{robot.Punch(), robot.Do("jones"), robot.Eat()}
	if !reflect.DeepEqual(s.Value, expected) {
		t.Errorf("Value = %v, expected %v", s.Value, expected)
	}

	r = parser.ParseInstructionList("left; forward ;;\nright")
	s, ok = r.(Success[[]robot.Instruction])
	if !ok {
		t.Fatalf("semicolon list = %#v, expected success", r)
	}
	if len(s.Value) != 3 {
		t.Errorf("semicolon list parsed %d instructions, expected 3", len(s.Value))
	}

	r = parser.ParseInstructionList("   \n\t\n")
	if s, ok := r.(Success[[]robot.Instruction]); !ok || len(s.Value) != 0 {
		t.Errorf("blank body = %#v, expected empty success", r)
	}
}

func TestParseInstructionListReportsLine(t *testing.T) {
	parser := New(nil)

	tests := []struct {
		name  string
		input string
		line  int
		fail  bool
	}{
		{"fail on third line", "left\nright\ngribbl\n", 2, true},
		{"fail after semicolon", "left; gribbl\nright", 0, true},
		{"incomplete second line", "left\nlook\n", 1, true},
		{"incomplete prefix", "left\nfo", 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			switch r := parser.ParseInstructionList(tc.input).(type) {
			case Fail:
				if !tc.fail {
					t.Fatalf("got fail %q, expected continue", r.Message)
				}
				if r.Line != tc.line {
					t.Errorf("Line = %d, expected %d", r.Line, tc.line)
				}
			case Continue:
				if tc.fail {
					t.Fatalf("got continue %q, expected fail", r.Completions)
				}
				if r.Line != tc.line {
					t.Errorf("Line = %d, expected %d", r.Line, tc.line)
				}
			default:
				t.Fatalf("ParseInstructionList(%q) = %#v, expected an error", tc.input, r)
			}
		})
	}
}

func TestValidateJobName(t *testing.T) {
	tests := []struct {
		name    string
		valid   bool
		mention string
	}{
		{"newjob", true, ""},
		{"Dig2", true, ""},
		{"a_b", true, ""},
		{"2dig", false, "letter"},
		{"", false, "letter"},
		{"has space", false, "letter"},
		{"look", false, "see"},
		{"do", false, "perform"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateJobName(tc.name)
			if (err == nil) != tc.valid {
				t.Fatalf("ValidateJobName(%q) = %v, expected valid %v", tc.name, err, tc.valid)
			}
			if err != nil && !strings.Contains(err.Error(), tc.mention) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.mention)
			}
		})
	}
}
