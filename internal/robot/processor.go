package robot

import (
	"errors"
	"fmt"
	"maps"

	"github.com/vovakirdan/robojobs/internal/core"
)

// ErrStackUnderflow is the panic value of Cycle on an idle processor.
var ErrStackUnderflow = errors.New("robot: stack underflow")

// InternalError is the panic value of Cycle when the processor state names
// something that cannot exist, such as a frame for an unregistered job.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "robot: internal error: " + e.Reason
}

// Frame is one entry of the execution stack: Immediate or JobFrame.
type Frame interface {
	frame()
}

// Immediate runs a single typed instruction once.
type Immediate struct {
	Instruction Instruction
}

func (Immediate) frame() {}

// JobFrame is a position inside a job.
type JobFrame struct {
	Job   string
	Index int
}

func (JobFrame) frame() {}

// Registers holds the result of the last sensing instruction.
// Exactly one of Yes and No is set.
type Registers struct {
	Yes bool
	No  bool
}

// Get returns the value of the named register.
func (r Registers) Get(name Register) bool {
	if name == Yes {
		return r.Yes
	}
	return r.No
}

func sensed(ok bool) Registers {
	return Registers{Yes: ok, No: !ok}
}

// Sighting is what the robot saw and how many tiles away.
// Distance 0 is the tile directly ahead.
type Sighting struct {
	What     Prop
	Distance int
}

// Senses lets the processor observe the world.
type Senses interface {
	Orientation() core.Orientation
	// Look walks from the tile ahead along delta and reports the first prop seen.
	Look(delta core.Point) (Sighting, bool)
}

// Actuators let the processor act on the world.
type Actuators interface {
	Eat(delta core.Point)
	Punch(delta core.Point)
	Go(delta core.Point)
	Turn(o core.Orientation)
	Setmark()
	Erase()
}

// Processor is the robot's interpreter state. It is a value: every method
// returns a new Processor and leaves the receiver untouched.
type Processor struct {
	Registers Registers
	Jobs      map[string]Job
	Stack     []Frame
}

// NewProcessor returns an idle processor with no jobs and the no register set.
func NewProcessor() Processor {
	return Processor{
		Registers: Registers{Yes: false, No: true},
		Jobs:      map[string]Job{},
	}
}

// Running reports whether the stack holds any frame.
func (p Processor) Running() bool {
	return len(p.Stack) > 0
}

// Idle reports whether the stack is empty.
func (p Processor) Idle() bool {
	return len(p.Stack) == 0
}

// JobNames returns the names of the registered jobs.
func (p Processor) JobNames() []string {
	names := make([]string, 0, len(p.Jobs))
	for name := range p.Jobs {
		names = append(names, name)
	}
	return names
}

// AddJob inserts or replaces a job. Frames already on the stack see the new
// body on their next lookup.
func (p Processor) AddJob(job Job) Processor {
	jobs := maps.Clone(p.Jobs)
	if jobs == nil {
		jobs = map[string]Job{}
	}
	jobs[job.Name] = job
	p.Jobs = jobs
	return p
}

// PushInstruction pushes an immediate frame.
func (p Processor) PushInstruction(inst Instruction) Processor {
	return p.push(Immediate{Instruction: inst})
}

// PushJob pushes a frame at the start of the named job.
func (p Processor) PushJob(name string) Processor {
	return p.push(JobFrame{Job: name})
}

// Halt clears the stack. Registers and jobs are kept.
func (p Processor) Halt() Processor {
	p.Stack = nil
	return p
}

func (p Processor) push(frames ...Frame) Processor {
	stack := make([]Frame, len(p.Stack), len(p.Stack)+len(frames))
	copy(stack, p.Stack)
	p.Stack = append(stack, frames...)
	return p
}

// Current returns the instruction the next Cycle will fetch.
func (p Processor) Current() (Instruction, bool) {
	if p.Idle() {
		return nil, false
	}
	switch f := p.Stack[len(p.Stack)-1].(type) {
	case Immediate:
		return f.Instruction, true
	case JobFrame:
		job, ok := p.Jobs[f.Job]
		if !ok || f.Index >= len(job.Work) {
			return nil, false
		}
		return job.Work[f.Index], true
	}
	return nil, false
}

// Cycle executes exactly one instruction from the top frame.
//
// It panics with ErrStackUnderflow when the processor is idle and with an
// *InternalError when the top frame names an unknown job or the fetched
// instruction is of an unknown kind.
func (p Processor) Cycle(senses Senses, actuators Actuators) Processor {
	if p.Idle() {
		panic(ErrStackUnderflow)
	}

	n := len(p.Stack) - 1
	top := p.Stack[n]
	p.Stack = p.Stack[:n:n]

	var (
		inst Instruction
		next Frame
	)
	switch f := top.(type) {
	case Immediate:
		inst = f.Instruction
	case JobFrame:
		job, ok := p.Jobs[f.Job]
		if !ok {
			panic(&InternalError{Reason: fmt.Sprintf("frame for unknown job %q", f.Job)})
		}
		if f.Index >= len(job.Work) {
			return p
		}
		inst = job.Work[f.Index]
		if f.Index+1 < len(job.Work) {
			next = JobFrame{Job: f.Job, Index: f.Index + 1}
		}
	default:
		panic(&InternalError{Reason: fmt.Sprintf("unknown frame %T", top)})
	}

	for {
		cond, ok := inst.(Conditional)
		if !ok {
			break
		}
		if !p.Registers.Get(cond.Condition) {
			return p.resume(next)
		}
		inst = cond.Subject
	}

	switch in := inst.(type) {
	case Call:
		return p.resume(next).push(JobFrame{Job: in.Job})

	case Sense:
		saw, ok := senses.Look(senses.Orientation().Delta())
		hit := ok && saw.What == in.Prop
		switch in.Op {
		case VerbLook:
		case VerbTouch:
			hit = hit && saw.Distance == 0
		default:
			panic(&InternalError{Reason: fmt.Sprintf("unknown sense %q", in.Op)})
		}
		p.Registers = sensed(hit)
		return p.resume(next)

	case Plain:
		facing := senses.Orientation()
		switch in.Op {
		case VerbRepeat:
			if f, ok := top.(JobFrame); ok {
				return p.push(JobFrame{Job: f.Job})
			}
			return p
		case VerbFinish:
			return p
		case VerbEat:
			actuators.Eat(facing.Delta())
		case VerbPunch:
			actuators.Punch(facing.Delta())
		case VerbForward:
			actuators.Go(facing.Delta())
		case VerbBackward:
			actuators.Go(facing.Reverse().Delta())
		case VerbLeft:
			actuators.Turn(facing.Counterclockwise())
		case VerbRight:
			actuators.Turn(facing.Clockwise())
		case VerbSetmark:
			actuators.Setmark()
		case VerbErase:
			actuators.Erase()
		default:
			panic(&InternalError{Reason: fmt.Sprintf("unknown instruction %q", in.Op)})
		}
		return p.resume(next)
	}

	panic(&InternalError{Reason: fmt.Sprintf("unknown instruction %T", inst)})
}

func (p Processor) resume(next Frame) Processor {
	if next == nil {
		return p
	}
	return p.push(next)
}
