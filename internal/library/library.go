// Package library reads and writes collections of jobs. Jobs are stored as
// YAML with one tagged mapping per instruction, or as plain text with a
// "name:" header above each job body.
package library

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/robojobs/internal/grammar"
	"github.com/vovakirdan/robojobs/internal/robot"
)

var (
	ErrUnknownKind     = errors.New("unknown instruction kind")
	ErrUnknownProp     = errors.New("unknown prop")
	ErrUnknownRegister = errors.New("unknown register")
	ErrUnknownJob      = errors.New("call to undefined job")
	ErrDuplicateJob    = errors.New("job defined twice")
	ErrMissingSubject  = errors.New("if without subject")
)

type node struct {
	Kind     string `yaml:"kind"`
	Prop     string `yaml:"prop,omitempty"`
	Job      string `yaml:"job,omitempty"`
	Register string `yaml:"register,omitempty"`
	Subject  *node  `yaml:"subject,omitempty"`
}

type entry struct {
	Name string `yaml:"name"`
	Work []node `yaml:"work"`
}

type document struct {
	Jobs []entry `yaml:"jobs"`
}

// Marshal encodes jobs sorted by name.
func Marshal(jobs map[string]robot.Job) ([]byte, error) {
	names := make([]string, 0, len(jobs))
	for name := range jobs {
		names = append(names, name)
	}
	slices.Sort(names)

	doc := document{Jobs: make([]entry, 0, len(names))}
	for _, name := range names {
		work := make([]node, 0, len(jobs[name].Work))
		for _, inst := range jobs[name].Work {
			work = append(work, encode(inst))
		}
		doc.Jobs = append(doc.Jobs, entry{Name: name, Work: work})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("library: marshal: %w", err)
	}
	return data, nil
}

func encode(inst robot.Instruction) node {
	switch in := inst.(type) {
	case robot.Plain:
		return node{Kind: string(in.Op)}
	case robot.Sense:
		return node{Kind: string(in.Op), Prop: string(in.Prop)}
	case robot.Call:
		return node{Kind: string(robot.VerbDo), Job: in.Job}
	case robot.Conditional:
		subject := encode(in.Subject)
		return node{Kind: string(robot.VerbIf), Register: string(in.Condition), Subject: &subject}
	}
	return node{Kind: inst.String()}
}

// Unmarshal decodes a job collection. Names, kinds, props and registers are
// validated and every do must name a job in the same collection.
func Unmarshal(data []byte) (map[string]robot.Job, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("library: unmarshal: %w", err)
	}

	jobs := make(map[string]robot.Job, len(doc.Jobs))
	for _, e := range doc.Jobs {
		if err := grammar.ValidateJobName(e.Name); err != nil {
			return nil, fmt.Errorf("library: job %q: %w", e.Name, err)
		}
		if _, dup := jobs[e.Name]; dup {
			return nil, fmt.Errorf("library: job %q: %w", e.Name, ErrDuplicateJob)
		}
		work := make([]robot.Instruction, 0, len(e.Work))
		for i, n := range e.Work {
			inst, err := decode(n)
			if err != nil {
				return nil, fmt.Errorf("library: job %q instruction %d: %w", e.Name, i+1, err)
			}
			work = append(work, inst)
		}
		jobs[e.Name] = robot.Job{Name: e.Name, Work: work}
	}

	for _, job := range jobs {
		for i, inst := range job.Work {
			if target, ok := callTarget(inst); ok {
				if _, defined := jobs[target]; !defined {
					return nil, fmt.Errorf("library: job %q instruction %d: %w %q", job.Name, i+1, ErrUnknownJob, target)
				}
			}
		}
	}
	return jobs, nil
}

func decode(n node) (robot.Instruction, error) {
	verb := robot.Verb(n.Kind)
	switch {
	case verb.IsPlain():
		return robot.Plain{Op: verb}, nil
	case verb == robot.VerbLook || verb == robot.VerbTouch:
		prop := robot.Prop(n.Prop)
		if !slices.Contains(robot.Props, prop) {
			return nil, fmt.Errorf("%w %q", ErrUnknownProp, n.Prop)
		}
		return robot.Sense{Op: verb, Prop: prop}, nil
	case verb == robot.VerbDo:
		if err := grammar.ValidateJobName(n.Job); err != nil {
			return nil, err
		}
		return robot.Do(n.Job), nil
	case verb == robot.VerbIf:
		reg := robot.Register(n.Register)
		if !slices.Contains(robot.RegisterNames, reg) {
			return nil, fmt.Errorf("%w %q", ErrUnknownRegister, n.Register)
		}
		if n.Subject == nil {
			return nil, ErrMissingSubject
		}
		subject, err := decode(*n.Subject)
		if err != nil {
			return nil, err
		}
		return robot.If(reg, subject), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, n.Kind)
}

func callTarget(inst robot.Instruction) (string, bool) {
	for {
		switch in := inst.(type) {
		case robot.Call:
			return in.Job, true
		case robot.Conditional:
			inst = in.Subject
		default:
			return "", false
		}
	}
}
