package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const banner = `
╔════════════════════════════════════════════════════════════════════╗
║                                                                    ║
║    ██╗██████╗  ██████╗ ███╗   ██╗    ██████╗ ██╗███╗  ██╗ ██████╗  ║
║    ██║██╔══██╗██╔═══██╗████╗  ██║    ██╔══██╗██║████╗ ██║██╔════╝  ║
║    ██║██████╔╝██║   ██║██╔██╗ ██║    ██████╔╝██║██╔██╗██║██║  ███╗ ║
║    ██║██╔══██╗██║   ██║██║╚██╗██║    ██╔══██╗██║██║╚████║██║   ██║ ║
║    ██║██║  ██║╚██████╔╝██║ ╚████║    ██║  ██║██║██║ ╚███║╚██████╔╝ ║
║    ╚═╝╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝    ╚═╝  ╚═╝╚═╝╚═╝  ╚══╝ ╚═════╝  ║
║                                                                    ║
║                    SPACE STATION TERMINAL                          ║
║                    [IRON RING DOS v1.0]                            ║
║                                                                    ║
╚════════════════════════════════════════════════════════════════════╝`

// fileDescriptor is implemented by *os.File.
type fileDescriptor interface {
	Fd() uintptr
}

// terminalFd returns the file descriptor behind v if it is a terminal.
func terminalFd(v any) (int, bool) {
	f, ok := v.(fileDescriptor)
	if !ok {
		return -1, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

type readResult struct {
	text string
	err  error
}

type styles struct {
	banner, title, prompt, info, success, failure lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		banner: r.NewStyle().Foreground(lipgloss.Color("14")),
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Padding(0, 2),
		prompt:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		info:    r.NewStyle().Foreground(lipgloss.Color("11")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Console is a Prompter and a Display on a character terminal.
//
// Reads happen in a helper goroutine so that a pending prompt returns as soon
// as its context is done. A read abandoned that way is handed to the next
// prompt, so no input is lost.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	inFd    int  // valid when inTTY
	inTTY   bool // password input is hidden only on a terminal
	outTTY  bool
	output  *termenv.Output
	styles  styles
	md      *glamour.TermRenderer
	pending chan readResult
}

// NewConsole returns a Console reading from in and writing to out. Colors,
// screen clearing and hidden password input are enabled when they are
// terminals.
func NewConsole(in io.Reader, out io.Writer) (*Console, error) {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		output: termenv.NewOutput(out),
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
	c.inFd, c.inTTY = terminalFd(in)
	_, c.outTTY = terminalFd(out)

	style := "notty"
	if c.outTTY {
		style = "dark"
		if !c.output.HasDarkBackground() {
			style = "light"
		}
	}
	md, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(80))
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	c.md = md
	return c, nil
}

// await waits for the pending read, started by read if there is none.
func (c *Console) await(ctx context.Context, read func() (string, error)) (string, error) {
	if c.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			text, err := read()
			ch <- readResult{text, err}
		}()
		c.pending = ch
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-c.pending:
		c.pending = nil
		return r.text, r.err
	}
}

// readLine reads a line from the buffered input. A last line without line
// ending is returned as is, io.EOF only comes with no text.
func (c *Console) readLine() (string, error) {
	s, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// hidden reports whether the next read can bypass the buffered input to
// read from the terminal without echo.
func (c *Console) hidden() bool {
	return c.inTTY && c.pending == nil && c.in.Buffered() == 0
}

func (c *Console) ask(prompt string) {
	fmt.Fprintf(c.out, "%s: ", c.styles.prompt.Render(prompt))
}

// Line implements Prompter.
func (c *Console) Line(ctx context.Context, prompt string) (string, error) {
	c.ask(prompt)
	return c.await(ctx, c.readLine)
}

// Password implements Prompter. The typed text is not echoed when the input is
// a terminal. Text typed ahead of the prompt was echoed already and is read
// as a plain line.
func (c *Console) Password(ctx context.Context, prompt string) (string, error) {
	c.ask(prompt)
	if !c.hidden() {
		return c.await(ctx, c.readLine)
	}
	state, err := term.GetState(c.inFd)
	if err != nil {
		return "", fmt.Errorf("terminal state: %w", err)
	}
	s, err := c.await(ctx, func() (string, error) {
		b, err := term.ReadPassword(c.inFd)
		return string(b), err
	})
	fmt.Fprintln(c.out)
	if ctx.Err() != nil {
		// The abandoned read leaves echo off.
		if rerr := term.Restore(c.inFd, state); rerr != nil {
			slog.Warn("restore-terminal", "error", rerr)
		}
	}
	return s, err
}

// Confirm implements Prompter. It asks again until the answer is yes or no.
func (c *Console) Confirm(ctx context.Context, prompt string) (bool, error) {
	for {
		s, err := c.Line(ctx, prompt+" [y/n]")
		if err != nil {
			return false, err
		}
		if yes, ok := parseYesNo(s); ok {
			return yes, nil
		}
		fmt.Fprintln(c.out, c.styles.failure.Render("Please enter y or n."))
	}
}

// Clear implements Display.
func (c *Console) Clear() {
	if c.outTTY {
		c.output.ClearScreen()
	}
}

// Banner implements Display.
func (c *Console) Banner() {
	fmt.Fprintln(c.out, c.styles.banner.Render(banner))
}

// Title implements Display.
func (c *Console) Title(title string) {
	fmt.Fprintln(c.out, c.styles.title.Render(title))
}

// Markdown implements Display.
func (c *Console) Markdown(md string) {
	out, err := c.md.Render(md)
	if err != nil {
		slog.Debug("render-markdown", "error", err)
		out = md
	}
	fmt.Fprint(c.out, out)
}

// Info implements Display.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, c.styles.info.Render(msg))
}

// Success implements Display.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, c.styles.success.Render(msg))
}

// Error implements Display.
func (c *Console) Error(err error) {
	fmt.Fprintln(c.out, c.styles.failure.Render("ERROR: "+err.Error()))
}
