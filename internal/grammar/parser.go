package grammar

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/robojobs/internal/robot"
)

// CommandWords are the words an instruction may start with, in menu order.
var CommandWords = []string{
	"eat", "forward", "backward", "left", "right", "punch", "setmark",
	"erase", "repeat", "finish", "touch", "look", "do", "if",
}

var (
	tokenPattern = regexp.MustCompile(`^[ \t]*(\S+)`)
	blankLine    = regexp.MustCompile(`^[ \t]*$`)
	endOfLine    = regexp.MustCompile(`^[ \t]*\n$`)
	onlySpace    = regexp.MustCompile(`^\s*$`)
)

// Parser parses instructions against a fixed set of job names.
type Parser struct {
	jobs  []string
	props []string
	regs  []string
}

// New creates a parser that accepts "do" for the given job names.
func New(jobNames []string) *Parser {
	jobs := slices.Clone(jobNames)
	slices.Sort(jobs)

	p := &Parser{jobs: slices.Compact(jobs)}
	for _, prop := range robot.Props {
		p.props = append(p.props, string(prop))
	}
	for _, reg := range robot.RegisterNames {
		p.regs = append(p.regs, string(reg))
	}
	return p
}

// JobNames returns the job names the parser accepts, sorted.
func (p *Parser) JobNames() []string {
	return slices.Clone(p.jobs)
}

// ParseInstruction parses one newline-terminated instruction.
func (p *Parser) ParseInstruction(text string) Result[robot.Instruction] {
	return p.ParseInstructionWithPrefix(text, "")
}

// ParseInstructionWithPrefix parses text as the tail of an instruction whose
// head, prefix, was already consumed. Completions include the prefix.
func (p *Parser) ParseInstructionWithPrefix(text, prefix string) Result[robot.Instruction] {
	return p.choose(text, p.verbs(), prefix,
		func(token string) Fail {
			if len(p.jobs) == 0 && strings.HasPrefix(string(robot.VerbDo), token) {
				return Fail{Message: gotext.Get(
					"There are no jobs to do yet. Create a job first, then try \"do\" with its name.")}
			}
			return Fail{Message: gotext.Get(
				`"%s" isn't a verb I know.  Try "forward", "left", or "right" to move the robot.`, token)}
		},
		func(token, rest, consumed string) Result[robot.Instruction] {
			verb := robot.Verb(token)
			switch {
			case verb == robot.VerbIf:
				return p.parseRegister(rest, consumed+" ")
			case verb == robot.VerbLook || verb == robot.VerbTouch:
				return p.parseProp(rest, verb, consumed+" ")
			case verb == robot.VerbDo:
				return p.parseJobName(rest, consumed+" ")
			default:
				return parseEnd(rest, robot.Plain{Op: verb}, consumed)
			}
		})
}

// verbs is CommandWords without "do" while there is no job to call.
func (p *Parser) verbs() []string {
	if len(p.jobs) > 0 {
		return CommandWords
	}
	return slices.DeleteFunc(slices.Clone(CommandWords), func(w string) bool {
		return w == string(robot.VerbDo)
	})
}

// ParseInstructionList compiles a job body. Instructions are separated by
// newlines or semicolons; blank pieces are skipped. The first Fail or
// Continue is returned with the zero-based line it came from.
func (p *Parser) ParseInstructionList(text string) Result[[]robot.Instruction] {
	work := []robot.Instruction{}
	for line, src := range strings.Split(text, "\n") {
		for _, piece := range strings.Split(src, ";") {
			if onlySpace.MatchString(piece) {
				continue
			}
			switch r := p.ParseInstruction(piece + "\n").(type) {
			case Success[robot.Instruction]:
				work = append(work, r.Value)
			case Continue:
				r.Line = line
				return r
			case Fail:
				r.Line = line
				return r
			}
		}
	}
	return Success[[]robot.Instruction]{Value: work}
}

// choose is the single decision point of the grammar. It reads the next
// token of text and filters accept by prefix: no match calls onUnknown, an
// exact match descends through onExact, anything else offers completions.
// An exact match with other candidates sharing its prefix still descends
// once more input follows it.
func (p *Parser) choose(
	text string,
	accept []string,
	prefix string,
	onUnknown func(token string) Fail,
	onExact func(token, rest, consumed string) Result[robot.Instruction],
) Result[robot.Instruction] {
	m := tokenPattern.FindStringSubmatch(text)
	if m == nil {
		if blankLine.MatchString(text) {
			return Continue{Completions: prefixed(prefix, accept)}
		}
		return Fail{Message: gotext.Get(
			"It looks like your command ends too early. Try putting one of these words before the new line: %s",
			quoted(accept))}
	}

	token, rest := m[1], text[len(m[0]):]

	var matches []string
	for _, word := range accept {
		if strings.HasPrefix(word, token) {
			matches = append(matches, word)
		}
	}

	if len(matches) == 0 {
		return onUnknown(token)
	}
	if slices.Contains(matches, token) && (len(matches) == 1 || rest != "") {
		return onExact(token, rest, prefix+token)
	}
	return Continue{Completions: prefixed(prefix, matches)}
}

func (p *Parser) parseProp(text string, verb robot.Verb, prefix string) Result[robot.Instruction] {
	return p.choose(text, p.props, prefix,
		func(token string) Fail {
			return Fail{Message: gotext.Get(
				`"%s" isn't a thing that can be looked at or touched.  Try %s`, token, strings.Join(p.props, ", "))}
		},
		func(token, rest, consumed string) Result[robot.Instruction] {
			return parseEnd(rest, robot.Sense{Op: verb, Prop: robot.Prop(token)}, consumed)
		})
}

func (p *Parser) parseJobName(text, prefix string) Result[robot.Instruction] {
	return p.choose(text, p.jobs, prefix,
		func(token string) Fail {
			examples := make([]string, len(p.jobs))
			for i, name := range p.jobs {
				examples[i] = "do " + name
			}
			return Fail{Message: gotext.Get(
				"%s isn't the name of a job. try something like %s", token, strings.Join(examples, ", "))}
		},
		func(token, rest, consumed string) Result[robot.Instruction] {
			return parseEnd(rest, robot.Call{Job: token}, consumed)
		})
}

func (p *Parser) parseRegister(text, prefix string) Result[robot.Instruction] {
	return p.choose(text, p.regs, prefix,
		func(string) Fail {
			examples := make([]string, len(p.regs))
			for i, reg := range p.regs {
				examples[i] = fmt.Sprintf(`"if %s"`, reg)
			}
			return Fail{Message: gotext.Get(
				"conditional instructions need a register name before the instruction. Try something like %s",
				strings.Join(examples, ", "))}
		},
		func(token, rest, consumed string) Result[robot.Instruction] {
			r := p.ParseInstructionWithPrefix(rest, consumed+" ")
			if s, ok := r.(Success[robot.Instruction]); ok {
				return Success[robot.Instruction]{Value: robot.Conditional{
					Condition: robot.Register(token),
					Subject:   s.Value,
				}}
			}
			return r
		})
}

// parseEnd accepts a finished instruction followed by a newline.
func parseEnd(rest string, inst robot.Instruction, consumed string) Result[robot.Instruction] {
	if endOfLine.MatchString(rest) {
		return Success[robot.Instruction]{Value: inst}
	}
	if blankLine.MatchString(rest) {
		return Continue{Completions: []string{consumed + "\n"}}
	}

	extra := []rune(strings.TrimLeft(rest, " \t"))
	if len(extra) > 10 {
		extra = extra[:10]
	}
	return Fail{Message: gotext.Get(
		`Found some extra stuff after the command. Try adding a line break before "...%s"`, string(extra))}
}

func prefixed(prefix string, words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = prefix + w
	}
	return out
}

func quoted(words []string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fmt.Sprintf("%q", w)
	}
	return strings.Join(out, ", ")
}
