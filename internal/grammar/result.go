// Package grammar parses the robot language. The same code path validates
// input and produces completions, so autocomplete and the compiler can never
// disagree about what is legal.
package grammar

// Result is the outcome of a parse: Success, Continue or Fail.
type Result[T any] interface {
	result()
}

// Success carries the parsed value.
type Success[T any] struct {
	Value T
}

func (Success[T]) result() {}

// Continue means the input is a valid prefix of something longer.
// Each completion is the whole input rewritten with one more word.
type Continue struct {
	Completions []string
	Line        int
}

func (Continue) result() {}

// Fail means no legal input starts with the text.
type Fail struct {
	Message string
	Line    int
}

func (Fail) result() {}

func (f Fail) Error() string {
	return f.Message
}

// Completions returns the suggestions of a Continue result, or nil.
func Completions[T any](r Result[T]) []string {
	if c, ok := r.(Continue); ok {
		return c.Completions
	}
	return nil
}
