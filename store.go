package ironring

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Files names the record files inside the data folder.
type Files struct {
	Credentials string `yaml:"credentials"`
	Permissions string `yaml:"permissions"`
	Balances    string `yaml:"balances"`
	Inventory   string `yaml:"inventory"`
	Menu        string `yaml:"menu"`
	News        string `yaml:"news"`
	Notes       string `yaml:"notes"`
}

// DefaultFiles returns the historical file names of the terminal.
func DefaultFiles() Files {
	return Files{
		Credentials: "users.txt",
		Permissions: "permissions.txt",
		Balances:    "user_holos.txt",
		Inventory:   "user_inventory.txt",
		Menu:        "food_menu.txt",
		News:        "news.txt",
		Notes:       "maintenance_notes.txt",
	}
}

// Store reads and writes the record files of a data folder.
//
// There is no cache: every Load reads the whole file again, and every
// mutation is a full read-then-write. Rewrites go to a temporary file that
// replaces the original, so a reader never sees a partial file.
type Store struct {
	dir   string
	files Files
}

// NewStore returns a Store over the files of dir. Empty names in files fall
// back to DefaultFiles.
func NewStore(dir string, files Files) *Store {
	def := DefaultFiles()
	orDefault(&files.Credentials, def.Credentials)
	orDefault(&files.Permissions, def.Permissions)
	orDefault(&files.Balances, def.Balances)
	orDefault(&files.Inventory, def.Inventory)
	orDefault(&files.Menu, def.Menu)
	orDefault(&files.News, def.News)
	orDefault(&files.Notes, def.Notes)
	return &Store{dir: dir, files: files}
}

func orDefault(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

// Dir returns the data folder.
func (s *Store) Dir() string { return s.dir }

// Files returns the record file names.
func (s *Store) Files() Files { return s.files }

// Path returns the full path of a record file name.
func (s *Store) Path(name string) string { return filepath.Join(s.dir, name) }

// line is a line of a record file, with its position for error messages.
type line struct {
	filename string
	i        int
	txt      string
}

func (l line) blank() bool { return strings.TrimSpace(l.txt) == "" }

func (l line) errorf(err error) error {
	return fmt.Errorf("%w: parse error %s:%d: %w", ErrStoreUnavailable, l.filename, l.i, err)
}

// readLines reads all lines of filename. A missing file returns an error
// wrapping fs.ErrNotExist.
func readLines(filename string) ([]line, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var list []line
	scanner := bufio.NewScanner(f)
	i := 0
	for scanner.Scan() {
		i++
		list = append(list, line{filename, i, strings.TrimRight(scanner.Text(), "\r")})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return list, nil
}

// readOptional is readLines where a missing file reads as empty.
func readOptional(filename string) ([]line, error) {
	lines, err := readLines(filename)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("missing-file", "name", filename)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return lines, nil
}

// LoadCredentials reads the credential file. A missing or empty file is
// ErrStoreUnavailable. When a username appears twice the last line wins.
func (s *Store) LoadCredentials() (map[string]Credential, error) {
	filename := s.Path(s.files.Credentials)
	lines, err := readLines(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: credentials: %w", ErrStoreUnavailable, err)
	}
	creds := make(map[string]Credential)
	for _, l := range lines {
		if l.blank() {
			continue
		}
		c, err := parseCredential(strings.TrimSpace(l.txt))
		if err != nil {
			return nil, l.errorf(err)
		}
		creds[c.Username] = c
	}
	if len(creds) == 0 {
		return nil, fmt.Errorf("%w: no credentials in %q", ErrStoreUnavailable, filename)
	}
	return creds, nil
}

// LoadPermissions reads the role permission file. A missing or empty file
// is ErrStoreUnavailable.
func (s *Store) LoadPermissions() (Permissions, error) {
	filename := s.Path(s.files.Permissions)
	lines, err := readLines(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: permissions: %w", ErrStoreUnavailable, err)
	}
	perms := make(Permissions)
	for _, l := range lines {
		if l.blank() {
			continue
		}
		role, set, err := parsePermission(strings.TrimSpace(l.txt))
		if err != nil {
			return nil, l.errorf(err)
		}
		perms[role] = set
	}
	if len(perms) == 0 {
		return nil, fmt.Errorf("%w: no permissions in %q", ErrStoreUnavailable, filename)
	}
	return perms, nil
}

// LoadBalances reads the balance file. A missing file is an empty set.
func (s *Store) LoadBalances() (Balances, error) {
	lines, err := readOptional(s.Path(s.files.Balances))
	if err != nil {
		return nil, err
	}
	b := make(Balances, len(lines))
	for _, l := range lines {
		if l.blank() {
			continue
		}
		user, amount, err := parseBalance(strings.TrimSpace(l.txt))
		if err != nil {
			return nil, l.errorf(err)
		}
		b[user] = amount
	}
	return b, nil
}

// SaveBalances replaces the balance file with b, one line per user sorted
// by username.
func (s *Store) SaveBalances(b Balances) error {
	users := make([]string, 0, len(b))
	for u := range b {
		users = append(users, u)
	}
	slices.Sort(users)

	return s.rewrite(s.files.Balances, func(w io.Writer) error {
		for _, u := range users {
			if err := formatBalance(w, u, b[u]); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadInventory reads every inventory record in file order. A missing file
// is an empty inventory.
func (s *Store) LoadInventory() ([]Item, error) {
	lines, err := readOptional(s.Path(s.files.Inventory))
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		if l.blank() {
			continue
		}
		it, err := parseItem(strings.TrimSpace(l.txt))
		if err != nil {
			return nil, l.errorf(err)
		}
		items = append(items, it)
	}
	return items, nil
}

// AppendItem appends a single record to the inventory file, creating it if
// needed.
func (s *Store) AppendItem(it Item) error {
	filename := s.Path(s.files.Inventory)
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("%w: cannot open %q: %w", ErrWrite, filename, err)
	}
	defer f.Close()

	// Never glue the new record to a last line missing its line break.
	if fi, err := f.Stat(); err == nil && fi.Size() > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, fi.Size()-1); err == nil && last[0] != '\n' {
			if _, err := f.WriteString("\n"); err != nil {
				return fmt.Errorf("%w: cannot write to %q: %w", ErrWrite, filename, err)
			}
		}
	}
	if err := formatItem(f, it); err != nil {
		return fmt.Errorf("%w: cannot write to %q: %w", ErrWrite, filename, err)
	}
	slog.Debug("append-file", "name", filename)
	return nil
}

// RewriteInventory replaces the inventory file with items.
func (s *Store) RewriteInventory(items []Item) error {
	return s.rewrite(s.files.Inventory, func(w io.Writer) error {
		for _, it := range items {
			if err := formatItem(w, it); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadMenu reads the food delivery menu. Lines without a price are skipped.
func (s *Store) LoadMenu() ([]MenuItem, error) {
	lines, err := readOptional(s.Path(s.files.Menu))
	if err != nil {
		return nil, err
	}
	var menu []MenuItem
	for _, l := range lines {
		if l.blank() {
			continue
		}
		it, err := parseMenuItem(strings.TrimSpace(l.txt))
		if err != nil {
			slog.Warn("skip-line", "name", l.filename, "line", l.i, "error", err)
			continue
		}
		menu = append(menu, it)
	}
	return menu, nil
}

// LoadNews reads the station news articles.
func (s *Store) LoadNews() ([]Article, error) {
	var news []Article
	err := s.loadEntries(s.files.News, func(head, text string) {
		news = append(news, Article{Title: head, Body: text})
	})
	return news, err
}

// LoadNotes reads the maintenance notes.
func (s *Store) LoadNotes() ([]Note, error) {
	var notes []Note
	err := s.loadEntries(s.files.Notes, func(head, text string) {
		notes = append(notes, Note{Hatch: head, Text: text})
	})
	return notes, err
}

func (s *Store) loadEntries(name string, add func(head, text string)) error {
	lines, err := readOptional(s.Path(name))
	if err != nil {
		return err
	}
	for _, l := range lines {
		if l.blank() {
			continue
		}
		head, text, err := parseEntry(strings.TrimSpace(l.txt))
		if err != nil {
			slog.Warn("skip-line", "name", l.filename, "line", l.i, "error", err)
			continue
		}
		add(head, text)
	}
	return nil
}

// rewrite replaces the file name with the content produced by write. The
// content goes to a temporary file in the same folder first, then replaces
// the original in a single rename.
func (s *Store) rewrite(name string, write func(io.Writer) error) error {
	filename := s.Path(name)
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("%w: cannot create temporary file for %q: %w", ErrWrite, filename, err)
	}
	// After a successful rename this is a no-op.
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := write(w); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: cannot write %q: %w", ErrWrite, filename, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: cannot write %q: %w", ErrWrite, filename, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: cannot write %q: %w", ErrWrite, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: cannot write %q: %w", ErrWrite, filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("%w: cannot replace %q: %w", ErrWrite, filename, err)
	}
	slog.Debug("rewrite-file", "name", filename)
	return nil
}
