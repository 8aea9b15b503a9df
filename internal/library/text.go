package library

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var headerPattern = regexp.MustCompile(`^(\w+):\s*$`)

// Source is one job body taken from a text file.
type Source struct {
	Name string
	Text string
	Line int // zero-based line of the first body line in the file
}

// SplitText splits a job file into bodies. Each job starts with a "name:"
// line; blank lines and lines starting with # before the first header are
// ignored.
func SplitText(text string) ([]Source, error) {
	var (
		sources []Source
		body    []string
	)
	flush := func() {
		if len(sources) > 0 {
			sources[len(sources)-1].Text = strings.Join(body, "\n")
		}
		body = nil
	}

	for i, line := range strings.Split(text, "\n") {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			if slices.ContainsFunc(sources, func(src Source) bool { return src.Name == m[1] }) {
				return nil, fmt.Errorf("library: line %d: job %q: %w", i+1, m[1], ErrDuplicateJob)
			}
			flush()
			sources = append(sources, Source{Name: m[1], Line: i + 1})
			continue
		}
		if len(sources) == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			return nil, fmt.Errorf("library: line %d: instruction before any job header", i+1)
		}
		body = append(body, line)
	}
	flush()
	return sources, nil
}

// JoinText renders bodies in the format SplitText reads.
func JoinText(sources []Source) string {
	var b strings.Builder
	for i, src := range sources {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s:\n", src.Name)
		b.WriteString(src.Text)
		if !strings.HasSuffix(src.Text, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}
