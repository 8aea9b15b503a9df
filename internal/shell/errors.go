package shell

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// ErrorSite says which input a CommandError refers to.
type ErrorSite string

const (
	SiteJobName ErrorSite = "jobName"
	SiteJobBody ErrorSite = "jobBody"
	SiteCommand ErrorSite = "command"
)

// CommandError is a player-facing rejection of a job or command.
// Line is zero-based within the job body, 0 for commands and -1 for names.
type CommandError struct {
	Site    ErrorSite
	Message string
	Line    int
}

func (e *CommandError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("%s: %s", e.Site, e.Message)
	}
	return fmt.Sprintf("%s line %d: %s", e.Site, e.Line+1, e.Message)
}

func incomplete(completions []string) string {
	quoted := make([]string, len(completions))
	for i, c := range completions {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return gotext.Get("it looks like one of your instructions is incomplete. Try adding %s",
		strings.Join(quoted, ", "))
}
