package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/etnz/ironring"
)

var bootSteps = []string{
	"BOOTING CORE SYSTEMS",
	"INITIALIZING NEURAL NETWORKS",
	"LOADING DATABASE CONNECTIONS",
	"ESTABLISHING SECURE CHANNELS",
	"SYNCING WITH STATION NETWORK",
	"READY FOR USER INPUT",
}

// Terminal is the station terminal process: it loops over login, menus and
// the exit question.
type Terminal struct {
	Store  *ironring.Store
	Config ironring.Config
	In     Prompter
	Out    Display
}

// Run serves users until one of them exits the terminal.
//
// It returns nil on a normal exit, when the input ends, or when ctx is
// cancelled by an interrupt; the shutdown sequence is shown in every case.
// After too many failed logins it returns an error wrapping
// ironring.ErrLockedOut. Unreadable account records abort with an error
// wrapping ironring.ErrStoreUnavailable.
func (t *Terminal) Run(ctx context.Context) error {
	err := t.loop(ctx)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		t.shutdown()
		return nil
	case errors.Is(err, context.Canceled):
		t.Out.Error(errors.New("TERMINAL INTERRUPTED BY USER"))
		t.shutdown()
		return nil
	case errors.Is(err, ironring.ErrLockedOut):
		t.Out.Error(errors.New("TERMINAL LOCKED. EXITING."))
	}
	return err
}

func (t *Terminal) loop(ctx context.Context) error {
	ledger := ironring.NewLedger(t.Store)
	inventory := ironring.NewInventory(t.Store)
	for {
		t.Out.Clear()
		t.Out.Banner()
		if err := t.intro(ctx); err != nil {
			return err
		}

		s, err := t.login(ctx)
		if err != nil {
			return err
		}
		nav := NewNavigator(ledger, inventory, t.Store, t.In, t.Out)
		if err := nav.Run(ctx, s); err != nil {
			return err
		}

		exit, err := t.In.Confirm(ctx, "Exit terminal completely?")
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

// intro shows the boot sequence, paced by Config.IntroDelay.
func (t *Terminal) intro(ctx context.Context) error {
	t.Out.Info("INITIALIZING SYSTEM...")
	for _, step := range bootSteps {
		if err := sleep(ctx, t.Config.IntroDelay); err != nil {
			return err
		}
		t.Out.Info(">> " + step)
	}
	t.Out.Success("SYSTEM READY!")
	return nil
}

func (t *Terminal) login(ctx context.Context) (*ironring.Session, error) {
	t.Out.Title("IRON RING STATION ACCESS TERMINAL")
	t.Out.Info("Please enter your credentials")
	auth := &ironring.Authenticator{
		Accounts:    t.Store,
		MaxAttempts: t.Config.MaxAttempts,
		OnFailure: func(remaining int) {
			if remaining > 0 {
				t.Out.Error(fmt.Errorf("ACCESS DENIED! %d attempts remaining", remaining))
				return
			}
			t.Out.Error(errors.New("ACCESS DENIED! Maximum attempts exceeded"))
		},
	}
	s, err := auth.Authenticate(ctx, t.In)
	if err != nil {
		return nil, err
	}
	t.Out.Success(fmt.Sprintf("ACCESS GRANTED! Welcome, %s.", strings.ToUpper(s.Username)))
	t.Out.Info(fmt.Sprintf("Role: %s | Security Level: %d", s.Role, s.SecurityLevel()))
	return s, nil
}

// sleep waits for d, or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// shutdown shows the goodbye sequence.
func (t *Terminal) shutdown() {
	t.Out.Info("INITIATING SHUTDOWN SEQUENCE...")
	t.Out.Info("Logging out user...")
	t.Out.Info("Closing all connections...")
	t.Out.Success("Goodbye, user. Iron Ring terminal signing off.")
}
