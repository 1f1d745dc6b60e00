package terminal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/ironring"
)

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
	"news.txt": `Docking Delay|Bay 3 is closed for repairs.
`,
	"maintenance_notes.txt": `Hatch A-7|Seal is leaking.
`,
}

// newTestStore writes files into a temporary data folder and returns a
// Store over it.
func newTestStore(t *testing.T, files map[string]string) *ironring.Store {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("cannot write %s: %v", name, err)
		}
	}
	return ironring.NewStore(dir, ironring.Files{})
}

// readFile returns the content of a file of the store's data folder.
func readFile(t *testing.T, s *ironring.Store, name string) string {
	t.Helper()
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		t.Fatalf("cannot read %s: %v", name, err)
	}
	return string(data)
}

// script is a Prompter answering from a fixed list of inputs. Once they are
// consumed every call fails with end, io.EOF by default.
type script struct {
	inputs  []string
	prompts []string
	end     error
}

func newScript(inputs ...string) *script {
	return &script{inputs: inputs, end: io.EOF}
}

func (s *script) next(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.inputs) == 0 {
		return "", s.end
	}
	in := s.inputs[0]
	s.inputs = s.inputs[1:]
	return in, nil
}

func (s *script) Line(_ context.Context, prompt string) (string, error) {
	return s.next(prompt)
}

func (s *script) Password(_ context.Context, prompt string) (string, error) {
	return s.next(prompt)
}

func (s *script) Confirm(_ context.Context, prompt string) (bool, error) {
	in, err := s.next(prompt)
	if err != nil {
		return false, err
	}
	yes, ok := parseYesNo(in)
	if !ok {
		return false, fmt.Errorf("script: %q is not a yes/no answer to %q", in, prompt)
	}
	return yes, nil
}

// recorder is a Display that keeps everything shown.
type recorder struct {
	lines  []string
	errors []error
}

func (r *recorder) add(kind, s string) { r.lines = append(r.lines, kind+": "+s) }

func (r *recorder) Clear() {}
func (r *recorder) Banner() { r.add("banner", "IRON RING") }
func (r *recorder) Title(title string) { r.add("title", title) }
func (r *recorder) Markdown(md string) { r.add("markdown", md) }
func (r *recorder) Info(msg string) { r.add("info", msg) }
func (r *recorder) Success(msg string) { r.add("success", msg) }
func (r *recorder) Error(err error) {
	r.errors = append(r.errors, err)
	r.add("error", err.Error())
}

// shown reports whether s is part of anything displayed.
func (r *recorder) shown(s string) bool {
	for _, l := range r.lines {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

func (r *recorder) String() string { return strings.Join(r.lines, "\n") }

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
