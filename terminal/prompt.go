package terminal

import (
	"context"
	"fmt"
	"strings"
)

// Prompter reads user input. Every call blocks until a line is entered, the
// input ends (io.EOF) or ctx is done (ctx.Err()).
type Prompter interface {
	// Line reads a line of text, without its line ending.
	Line(ctx context.Context, prompt string) (string, error)
	// Password reads a line of text without echoing it.
	Password(ctx context.Context, prompt string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Display presents the terminal screens.
type Display interface {
	Clear()
	Banner()
	Title(title string)
	// Markdown renders a markdown document, as produced by the renderer
	// package.
	Markdown(md string)
	Info(msg string)
	Success(msg string)
	Error(err error)
}

// parseYesNo parses a Confirm answer.
func parseYesNo(s string) (answer bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

// pause waits for the user to acknowledge the screen.
func pause(ctx context.Context, in Prompter, where string) error {
	_, err := in.Line(ctx, fmt.Sprintf("Press ENTER to return to %s", where))
	return err
}
