// Package fs provides file-based storage for legislativa: the per-document
// history snapshots and the source list.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Maikl76/legislativa"
	"github.com/cespare/xxhash/v2"
)

const (
	// maxFileName is the longest file name common filesystems accept, in bytes.
	maxFileName = 255

	snapshotExt = ".txt"
)

// Ensure HistoryStore implements legislativa.HistoryStore at compile time.
var _ legislativa.HistoryStore = (*HistoryStore)(nil)

// HistoryStore keeps one text file per document name in a directory.
// Each file holds only the most recent snapshot.
type HistoryStore struct {
	dir string
}

// NewHistoryStore creates a new HistoryStore rooted at dir.
func NewHistoryStore(dir string) *HistoryStore {
	return &HistoryStore{dir: dir}
}

// Open creates the history directory if it does not exist.
func (s *HistoryStore) Open() error {
	return os.MkdirAll(s.dir, 0755)
}

// Path returns the snapshot file path for a document name.
func (s *HistoryStore) Path(name string) string {
	return filepath.Join(s.dir, FileName(name))
}

// FileName maps a document name to its snapshot file name.
//
// Names are stored as-is, so existing history directories keep working.
// Only path separators, NUL and '%' are percent-escaped, and the names
// "." and ".." are escaped entirely. A name whose file name would exceed
// 255 bytes is cut at a character boundary and suffixed with "~" and the
// xxHash of the full name.
func FileName(name string) string {
	if name == "." || name == ".." {
		return strings.Repeat("%2E", len(name)) + snapshotExt
	}

	// Bytes of escaped name that still leave room for "~<hash>.txt".
	budget := maxFileName - len(snapshotExt) - 1 - 16

	var b strings.Builder
	cut := 0
	for i := 0; i < len(name); {
		_, size := utf8.DecodeRuneInString(name[i:])
		piece := name[i : i+size]
		switch piece {
		case "%", "/", `\`, "\x00":
			piece = fmt.Sprintf("%%%02X", piece[0])
		}
		if b.Len()+len(piece) <= budget {
			cut = b.Len() + len(piece)
		}
		b.WriteString(piece)
		i += size
	}

	escaped := b.String()
	if len(escaped)+len(snapshotExt) <= maxFileName {
		return escaped + snapshotExt
	}
	return fmt.Sprintf("%s~%016x%s", escaped[:cut], xxhash.Sum64String(name), snapshotExt)
}

// Load returns the stored snapshot for name, or "" if there is none.
func (s *HistoryStore) Load(ctx context.Context, name string) (string, error) {
	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Save replaces the stored snapshot for name.
func (s *HistoryStore) Save(ctx context.Context, name, text string) error {
	return os.WriteFile(s.Path(name), []byte(text), 0644)
}
