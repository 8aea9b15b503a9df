// Package robot implements the robot's stack-machine processor: the
// instruction set, jobs, frames and the single-step Cycle.
package robot

import "fmt"

// Verb names an instruction kind.
type Verb string

const (
	VerbEat      Verb = "eat"
	VerbLook     Verb = "look"
	VerbTouch    Verb = "touch"
	VerbSetmark  Verb = "setmark"
	VerbForward  Verb = "forward"
	VerbBackward Verb = "backward"
	VerbLeft     Verb = "left"
	VerbRight    Verb = "right"
	VerbPunch    Verb = "punch"
	VerbErase    Verb = "erase"
	VerbRepeat   Verb = "repeat"
	VerbFinish   Verb = "finish"
	VerbDo       Verb = "do"
	VerbIf       Verb = "if"
)

// PlainVerbs are the verbs that take no argument.
var PlainVerbs = []Verb{
	VerbEat, VerbForward, VerbBackward, VerbLeft, VerbRight,
	VerbPunch, VerbSetmark, VerbErase, VerbRepeat, VerbFinish,
}

// IsPlain reports whether v takes no argument.
func (v Verb) IsPlain() bool {
	for _, p := range PlainVerbs {
		if p == v {
			return true
		}
	}
	return false
}

// Prop is a kind of thing the robot can sense.
type Prop string

const (
	PropHero     Prop = "hero"
	PropWall     Prop = "wall"
	PropMonster  Prop = "monster"
	PropTreasure Prop = "treasure"
	PropMark     Prop = "mark"
)

// Props lists every prop in grammar order.
var Props = []Prop{PropHero, PropWall, PropMonster, PropTreasure, PropMark}

// Register names one of the two condition registers.
type Register string

const (
	Yes Register = "yes"
	No  Register = "no"
)

// RegisterNames lists both registers in grammar order.
var RegisterNames = []Register{Yes, No}

// Instruction is one statement of the robot language.
// The set of implementations is closed: Plain, Sense, Call and Conditional.
type Instruction interface {
	Verb() Verb
	// String returns the canonical source text, which parses back to an
	// equal instruction.
	String() string
	instruction()
}

// Plain is a verb that takes no argument, such as forward or repeat.
type Plain struct {
	Op Verb
}

func (p Plain) Verb() Verb     { return p.Op }
func (p Plain) String() string { return string(p.Op) }
func (Plain) instruction()     {}

// Sense is look or touch aimed at a prop.
type Sense struct {
	Op   Verb
	Prop Prop
}

func (s Sense) Verb() Verb     { return s.Op }
func (s Sense) String() string { return fmt.Sprintf("%s %s", s.Op, s.Prop) }
func (Sense) instruction()     {}

// Call runs another job and then resumes the caller.
type Call struct {
	Job string
}

func (Call) Verb() Verb       { return VerbDo }
func (c Call) String() string { return fmt.Sprintf("do %s", c.Job) }
func (Call) instruction()     {}

// Conditional runs Subject only while Condition is set.
type Conditional struct {
	Condition Register
	Subject   Instruction
}

func (Conditional) Verb() Verb { return VerbIf }
func (c Conditional) String() string {
	return fmt.Sprintf("if %s %s", c.Condition, c.Subject)
}
func (Conditional) instruction() {}

func Eat() Instruction      { return Plain{Op: VerbEat} }
func Forward() Instruction  { return Plain{Op: VerbForward} }
func Backward() Instruction { return Plain{Op: VerbBackward} }
func Left() Instruction     { return Plain{Op: VerbLeft} }
func Right() Instruction    { return Plain{Op: VerbRight} }
func Punch() Instruction    { return Plain{Op: VerbPunch} }
func Setmark() Instruction  { return Plain{Op: VerbSetmark} }
func Erase() Instruction    { return Plain{Op: VerbErase} }
func Repeat() Instruction   { return Plain{Op: VerbRepeat} }
func Finish() Instruction   { return Plain{Op: VerbFinish} }

func Look(p Prop) Instruction  { return Sense{Op: VerbLook, Prop: p} }
func Touch(p Prop) Instruction { return Sense{Op: VerbTouch, Prop: p} }

func Do(job string) Instruction { return Call{Job: job} }

func If(r Register, subject Instruction) Instruction {
	return Conditional{Condition: r, Subject: subject}
}

// Job is a named, ordered list of instructions.
type Job struct {
	Name string
	Work []Instruction
}

// Source renders the job body one instruction per line.
func (j Job) Source() string {
	var out string
	for _, inst := range j.Work {
		out += inst.String() + "\n"
	}
	return out
}
