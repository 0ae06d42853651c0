package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Maikl76/legislativa/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Document History
// Each document name keeps exactly one snapshot file

func TestHistoryStore_OpenCreatesDirectory(t *testing.T) {
	t.Parallel()

	// Given a history directory that does not exist yet
	dir := filepath.Join(t.TempDir(), "historie_pdfs")
	store := fs.NewHistoryStore(dir)

	// When I open the store
	err := store.Open()

	// Then the directory exists
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestHistoryStore_LoadMissingReturnsEmpty(t *testing.T) {
	t.Parallel()

	// Given an empty store
	store := fs.NewHistoryStore(t.TempDir())

	// When I load a document that was never saved
	text, err := store.Load(context.Background(), "report.pdf")

	// Then I get empty text and no error
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestHistoryStore_SaveThenLoad(t *testing.T) {
	t.Parallel()

	// Given a store with a saved snapshot
	dir := t.TempDir()
	store := fs.NewHistoryStore(dir)
	require.NoError(t, store.Save(context.Background(), "report.pdf", "Law A"))

	// When I load it back
	text, err := store.Load(context.Background(), "report.pdf")

	// Then the text round-trips
	require.NoError(t, err)
	assert.Equal(t, "Law A", text)

	// And it lives in <name>.txt
	content, err := os.ReadFile(filepath.Join(dir, "report.pdf.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Law A", string(content))
}

func TestHistoryStore_SaveOverwrites(t *testing.T) {
	t.Parallel()

	// Given a store with a snapshot
	store := fs.NewHistoryStore(t.TempDir())
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "report.pdf", "Law A"))

	// When I save a new version
	require.NoError(t, store.Save(ctx, "report.pdf", "Law B"))

	// Then only the latest text is kept
	text, err := store.Load(ctx, "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Law B", text)
}

func TestHistoryStore_SaveEmptyText(t *testing.T) {
	t.Parallel()

	store := fs.NewHistoryStore(t.TempDir())
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "report.pdf", "Law A"))

	require.NoError(t, store.Save(ctx, "report.pdf", ""))

	text, err := store.Load(ctx, "report.pdf")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestHistoryStore_EscapesPathSeparators(t *testing.T) {
	t.Parallel()

	// Given a store inside a parent directory
	parent := t.TempDir()
	dir := filepath.Join(parent, "history")
	store := fs.NewHistoryStore(dir)
	require.NoError(t, store.Open())

	// When I save a document whose name tries to escape the directory
	err := store.Save(context.Background(), "../../etc/passwd", "bad content")
	require.NoError(t, err)

	// Then the snapshot stays inside the history directory
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "..%2F..%2Fetc%2Fpasswd.txt", entries[0].Name())

	// And nothing was written next to it
	_, err = os.Stat(filepath.Join(parent, "etc"))
	assert.True(t, os.IsNotExist(err))

	// And the same name loads back
	text, err := store.Load(context.Background(), "../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "bad content", text)
}

func TestHistoryStore_EmptyNameIsValidKey(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewHistoryStore(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "", "unnamed"))

	text, err := store.Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "unnamed", text)
	assert.FileExists(t, filepath.Join(dir, ".txt"))
}

func TestHistoryStore_SaveFailsWithoutDirectory(t *testing.T) {
	t.Parallel()

	store := fs.NewHistoryStore(filepath.Join(t.TempDir(), "missing"))

	err := store.Save(context.Background(), "report.pdf", "Law A")

	require.Error(t, err)
}

func TestHistoryStore_LongCzechTitle(t *testing.T) {
	t.Parallel()

	// Given a document named after a long regulation title
	dir := t.TempDir()
	store := fs.NewHistoryStore(dir)
	ctx := context.Background()
	name := "Nařízení vlády č. 361/2007 Sb., kterým se stanoví podmínky ochrany zdraví při práci, ve znění pozdějších předpisů a o změně"

	// When I save and load its snapshot
	require.NoError(t, store.Save(ctx, name, "Law A"))
	text, err := store.Load(ctx, name)

	// Then it round-trips and keeps a readable file name
	require.NoError(t, err)
	assert.Equal(t, "Law A", text)
	assert.FileExists(t, filepath.Join(dir, "Nařízení vlády č. 361%2F2007 Sb., kterým se stanoví podmínky ochrany zdraví při práci, ve znění pozdějších předpisů a o změně.txt"))
}

func TestHistoryStore_OverlongNamesStayDistinct(t *testing.T) {
	t.Parallel()

	// Given two names longer than any file name, differing only at the end
	store := fs.NewHistoryStore(t.TempDir())
	ctx := context.Background()
	prefix := strings.Repeat("Zákon o veřejných zakázkách, ", 20)
	first, second := prefix+"část první", prefix+"část druhá"

	// When I save both
	require.NoError(t, store.Save(ctx, first, "first"))
	require.NoError(t, store.Save(ctx, second, "second"))

	// Then each keeps its own snapshot
	text, err := store.Load(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "first", text)
	text, err = store.Load(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "second", text)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{name: "report.pdf", want: "report.pdf.txt"},
		{name: "Zákon o daních", want: "Zákon o daních.txt"},
		{name: "a/b", want: "a%2Fb.txt"},
		{name: `a\b`, want: "a%5Cb.txt"},
		{name: "100%", want: "100%25.txt"},
		{name: "a\x00b", want: "a%00b.txt"},
		{name: ".", want: "%2E.txt"},
		{name: "..", want: "%2E%2E.txt"},
		{name: "...", want: "....txt"},
		{name: "", want: ".txt"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.FileName(tt.name))
		})
	}
}

func TestFileName_Overlong(t *testing.T) {
	t.Parallel()

	name := strings.Repeat("Vyhláška ministerstva vnitra ", 15)

	got := fs.FileName(name)

	assert.LessOrEqual(t, len(got), 255)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasPrefix(got, "Vyhláška ministerstva vnitra "))
	assert.Regexp(t, `~[0-9a-f]{16}\.txt$`, got)
	assert.Equal(t, got, fs.FileName(name))
	assert.NotEqual(t, got, fs.FileName(name+"x"))
}
