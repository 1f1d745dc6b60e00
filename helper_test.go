package ironring

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// newTestStore writes files into a temporary data folder and returns a
// Store over it. files maps a file name to its content.
func newTestStore(t *testing.T, files map[string]string) *Store {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("cannot write %s: %v", name, err)
		}
	}
	return NewStore(dir, Files{})
}

// readFile returns the content of a file of the store's data folder.
func readFile(t *testing.T, s *Store, name string) string {
	t.Helper()
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		t.Fatalf("cannot read %s: %v", name, err)
	}
	return string(data)
}

// scriptedReader answers prompts from a fixed list of lines, then io.EOF.
type scriptedReader struct {
	lines   []string
	prompts []string
}

func (r *scriptedReader) next(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	l := r.lines[0]
	r.lines = r.lines[1:]
	return l, nil
}

func (r *scriptedReader) Line(_ context.Context, prompt string) (string, error) {
	return r.next(prompt)
}

func (r *scriptedReader) Password(_ context.Context, prompt string) (string, error) {
	return r.next(prompt)
}

// failingBalances loads from a real store but fails every save.
type failingBalances struct {
	*Store
	err error
}

func (f failingBalances) SaveBalances(Balances) error { return f.err }

// station is the data folder shared by most tests.
var station = map[string]string{
	"users.txt": `alice:wonderland:captain
bob:builder:engineer
guest:guest:guest
`,
	"permissions.txt": `captain:1,2,3,4,5,6,7
engineer:1,5,6,7
guest:2,3,7
`,
	"user_holos.txt": `alice:1000
bob:250
`,
	"user_inventory.txt": `alice:Wrench|Heavy duty|1
bob:Helmet|Pressure rated|2
alice:Rations|Dried|3
`,
	"food_menu.txt": `Noodle Bowl|12
Algae Bar|3
`,
}

// warnings replaces the default logger with one that only records warnings
// and errors, the level used on the console.
func warnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}
