package grammar

import (
	"errors"
	"regexp"

	"github.com/leonelquinteros/gotext"
)

// ReservedWords cannot name a job. Each maps to a suggested alternative.
var ReservedWords = map[string]string{
	"backward": "behind",
	"create":   "make",
	"do":       "perform",
	"eat":      "munch",
	"end":      "terminate",
	"erase":    "remove",
	"finish":   "complete",
	"forward":  "ahead",
	"if":       "on",
	"left":     "sinister",
	"look":     "see",
	"mark":     "spot",
	"monster":  "beast",
	"no":       "false",
	"punch":    "hit",
	"repeat":   "again",
	"right":    "correct",
	"setmark":  "makemark",
	"touch":    "tap",
	"treasure": "goal",
	"wall":     "barrier",
	"yes":      "true",
}

var jobNamePattern = regexp.MustCompile(`^[A-Za-z]\w*$`)

// ValidateJobName checks the identifier pattern and the reserved words.
// The error message is meant for the player.
func ValidateJobName(name string) error {
	if !jobNamePattern.MatchString(name) {
		return errors.New(gotext.Get(
			"job names should begin with a capital or lowercase letter, and only contain letters and numbers after that."))
	}
	if alt, reserved := ReservedWords[name]; reserved {
		return errors.New(gotext.Get(`"%s" can't be used for a job name. Would "%s" work instead?`, name, alt))
	}
	return nil
}
