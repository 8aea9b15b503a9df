package game

import (
	"slices"

	"github.com/vovakirdan/robojobs/internal/shell"
)

// LoadSources creates every job and then builds each body, so bodies may call
// each other in any order. A body that does not build stays as a dirty
// source with an empty job; its error is returned by name.
func (r *Reducer) LoadSources(w World, sources map[string]string) (World, map[string]*shell.CommandError) {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	slices.Sort(names)

	errs := map[string]*shell.CommandError{}
	for _, name := range names {
		w = r.Reduce(w, CreateNewJob{Name: name})
		if w.CommandError != nil {
			errs[name] = w.CommandError
		}
	}
	for _, name := range names {
		if _, bad := errs[name]; bad {
			continue
		}
		w = r.Reduce(w, BuildJob{Name: name, Text: sources[name]})
		if w.CommandError != nil {
			errs[name] = w.CommandError
			w = r.Reduce(w, EditJob{Name: name, Text: sources[name]})
		}
	}

	w.CommandError = nil
	w.EditJob = ""
	return w, errs
}
