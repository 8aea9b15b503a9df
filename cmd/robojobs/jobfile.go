package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/robojobs/internal/library"
)

// readJobFile loads job sources from a YAML library or a text file with a
// "name:" header above each body. Text sources keep their file line.
func readJobFile(path string) ([]library.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		jobs, err := library.Unmarshal(data)
		if err != nil {
			return nil, err
		}
		sources := make([]library.Source, 0, len(jobs))
		for name, job := range jobs {
			sources = append(sources, library.Source{Name: name, Text: job.Source(), Line: -1})
		}
		return sources, nil
	}
	return library.SplitText(string(data))
}

func sourceMap(sources []library.Source) map[string]string {
	out := make(map[string]string, len(sources))
	for _, src := range sources {
		out[src.Name] = src.Text
	}
	return out
}
