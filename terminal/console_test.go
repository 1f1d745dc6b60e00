package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func newTestConsole(t *testing.T, in io.Reader) (*Console, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c, err := NewConsole(in, &out)
	if err != nil {
		t.Fatalf("NewConsole() error = %v", err)
	}
	return c, &out
}

func TestConsole_Line(t *testing.T) {
	c, out := newTestConsole(t, strings.NewReader("alice\r\nsecret\nlast"))
	ctx := context.Background()

	got, err := c.Line(ctx, "USERNAME")
	if err != nil || got != "alice" {
		t.Errorf("Line() = %q, %v; want %q", got, err, "alice")
	}
	got, err = c.Password(ctx, "PASSWORD")
	if err != nil || got != "secret" {
		t.Errorf("Password() = %q, %v; want %q", got, err, "secret")
	}
	got, err = c.Line(ctx, "MORE")
	if err != nil || got != "last" {
		t.Errorf("Line() = %q, %v; want %q", got, err, "last")
	}
	if _, err := c.Line(ctx, "END"); !errors.Is(err, io.EOF) {
		t.Errorf("Line() error = %v, want io.EOF", err)
	}
	if !strings.Contains(out.String(), "USERNAME: ") {
		t.Errorf("prompt not written, got %q", out.String())
	}
}

func TestConsole_PasswordTypedAhead(t *testing.T) {
	c, _ := newTestConsole(t, strings.NewReader("alice\nsecret\n"))
	c.inTTY = true
	ctx := context.Background()

	if got, err := c.Line(ctx, "USERNAME"); err != nil || got != "alice" {
		t.Fatalf("Line() = %q, %v; want %q", got, err, "alice")
	}
	if c.hidden() {
		t.Fatal("hidden() = true with buffered input")
	}
	got, err := c.Password(ctx, "PASSWORD")
	if err != nil || got != "secret" {
		t.Errorf("Password() = %q, %v; want %q", got, err, "secret")
	}
}

func TestConsole_Confirm(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr error
	}{
		{"y\n", true, nil},
		{"YES\n", true, nil},
		{"no\n", false, nil},
		{"maybe\n\nn\n", false, nil},
		{"maybe\n", false, io.EOF},
	}
	for _, tt := range tests {
		c, _ := newTestConsole(t, strings.NewReader(tt.in))
		got, err := c.Confirm(context.Background(), "Sure?")
		if !errors.Is(err, tt.wantErr) || got != tt.want {
			t.Errorf("Confirm() with %q = %v, %v; want %v, %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestConsole_Cancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c, _ := newTestConsole(t, pr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Line(ctx, "USERNAME"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Line() error = %v, want context.Canceled", err)
	}

	// The abandoned read is served to the next prompt.
	go pw.Write([]byte("alice\n"))
	got, err := c.Line(context.Background(), "USERNAME")
	if err != nil || got != "alice" {
		t.Errorf("Line() = %q, %v; want %q", got, err, "alice")
	}
}

func TestConsole_Display(t *testing.T) {
	c, out := newTestConsole(t, strings.NewReader(""))
	c.Clear()
	c.Banner()
	c.Title("BANK TERMINAL")
	c.Markdown("# Station News\n\nBay 3 is closed.\n")
	c.Info("Transfer cancelled.")
	c.Success("TRANSFER SUCCESSFUL!")
	c.Error(errors.New("insufficient funds"))

	got := out.String()
	for _, want := range []string{"SPACE STATION TERMINAL", "BANK TERMINAL", "Station News", "Bay 3 is closed.", "Transfer cancelled.", "TRANSFER SUCCESSFUL!", "ERROR: insufficient funds"} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q, got:\n%s", want, got)
		}
	}
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		in       string
		want, ok bool
	}{
		{"y", true, true},
		{" Yes ", true, true},
		{"N", false, true},
		{"no", false, true},
		{"", false, false},
		{"nope", false, false},
	}
	for _, tt := range tests {
		got, ok := parseYesNo(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseYesNo(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
