package fs

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/Maikl76/legislativa"
)

// Ensure SourceList implements legislativa.SourceLoader at compile time.
var _ legislativa.SourceLoader = (*SourceList)(nil)

// SourceList reads source URLs from a newline-delimited text file.
type SourceList struct {
	path string
}

// NewSourceList creates a new SourceList for the file at path.
func NewSourceList(path string) *SourceList {
	return &SourceList{path: path}
}

// LoadSources returns the trimmed, non-blank lines of the file in order.
// A missing file yields an empty list.
func (l *SourceList) LoadSources(ctx context.Context) ([]string, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sources := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sources = append(sources, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sources, nil
}
