package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/etnz/ironring"
	"github.com/etnz/ironring/renderer"
)

// State is a screen of the terminal menus.
type State int

const (
	StateMain State = iota
	StatePersonal
	StateInventory
	StateManage
	StateAddItem
	StateDeleteItem
	StateNews
	StateShuttle
	StateFood
	StateBank
	StateBalance
	StateTransfer
	StateMaintenance
	StateHatch
	StateNotes
	StateLoggedOut
)

var stateNames = [...]string{
	StateMain:        "main",
	StatePersonal:    "personal",
	StateInventory:   "inventory",
	StateManage:      "manage",
	StateAddItem:     "add-item",
	StateDeleteItem:  "delete-item",
	StateNews:        "news",
	StateShuttle:     "shuttle",
	StateFood:        "food",
	StateBank:        "bank",
	StateBalance:     "balance",
	StateTransfer:    "transfer",
	StateMaintenance: "maintenance",
	StateHatch:       "hatch",
	StateNotes:       "notes",
	StateLoggedOut:   "logged-out",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Catalog provides the read-only station listings.
type Catalog interface {
	LoadMenu() ([]ironring.MenuItem, error)
	LoadNews() ([]ironring.Article, error)
	LoadNotes() ([]ironring.Note, error)
}

// route is an entry of the main menu.
type route struct {
	state State
	run   func(ctx context.Context) error
}

// choice is an entry of a sub-menu.
type choice struct {
	label string
	state State
	run   func(ctx context.Context) error
}

// Navigator drives the menus of one logged in Session.
type Navigator struct {
	ledger    *ironring.Ledger
	inventory *ironring.Inventory
	catalog   Catalog
	in        Prompter
	out       Display

	routes  map[ironring.Option]route
	session *ironring.Session
	state   State
}

// NewNavigator returns a Navigator serving the terminal menus with in and out.
func NewNavigator(l *ironring.Ledger, inv *ironring.Inventory, c Catalog, in Prompter, out Display) *Navigator {
	n := &Navigator{ledger: l, inventory: inv, catalog: c, in: in, out: out, state: StateLoggedOut}
	n.routes = map[ironring.Option]route{
		ironring.OptionPersonal:    {StatePersonal, n.personal},
		ironring.OptionNews:        {StateNews, n.leaf("main menu", n.news)},
		ironring.OptionShuttle:     {StateShuttle, n.leaf("main menu", n.shuttle)},
		ironring.OptionFood:        {StateFood, n.leaf("main menu", n.food)},
		ironring.OptionBank:        {StateBank, n.bank},
		ironring.OptionMaintenance: {StateMaintenance, n.maintenance},
		ironring.OptionLogout:      {StateMain, n.logout},
	}
	return n
}

// State returns the current screen.
func (n *Navigator) State() State { return n.state }

// Session returns the active session, nil once logged out.
func (n *Navigator) Session() *ironring.Session { return n.session }

// Run serves the main menu to s until the user logs out.
//
// Errors of an operation are shown to the user, who then returns to the
// enclosing menu. Only input errors (io.EOF or the ctx error) end Run early.
func (n *Navigator) Run(ctx context.Context, s *ironring.Session) error {
	n.session = s
	for {
		n.enter(StateMain)
		n.out.Clear()
		n.out.Markdown(renderer.RenderMainMenu(renderer.NewMainMenu(n.session)))

		opt, err := n.selectOption(ctx)
		if err != nil {
			return err
		}
		r := n.routes[opt]
		n.enter(r.state)
		if err := r.run(ctx); err != nil {
			return err
		}
		if n.state == StateLoggedOut {
			return nil
		}
	}
}

func (n *Navigator) enter(s State) {
	if n.state != s {
		slog.Debug("navigate", "from", n.state, "to", s)
	}
	n.state = s
}

// selectOption reads main menu selections until an allowed one is entered.
func (n *Navigator) selectOption(ctx context.Context) (ironring.Option, error) {
	for {
		s, err := n.in.Line(ctx, "Select option")
		if err != nil {
			return 0, err
		}
		i, err := strconv.Atoi(strings.TrimSpace(s))
		opt := ironring.Option(i)
		if err != nil || !opt.Valid() {
			n.out.Error(fmt.Errorf("%w: invalid selection %q", ironring.ErrValidation, s))
			continue
		}
		if err := ironring.Authorize(n.session, opt); err != nil {
			slog.Info("unauthorized", "user", n.session.Username, "option", opt)
			n.out.Error(err)
			continue
		}
		return opt, nil
	}
}

// subMenu serves choices in state until the user selects the extra last
// choice that returns to parent.
func (n *Navigator) subMenu(ctx context.Context, state State, title, parent string, choices ...choice) error {
	labels := make([]string, 0, len(choices)+1)
	for _, c := range choices {
		labels = append(labels, c.label)
	}
	labels = append(labels, "Return to "+parent)

	for {
		n.enter(state)
		n.out.Clear()
		n.out.Title(title)
		if state == StatePersonal {
			if balance, err := n.ledger.Balance(n.session.Username); err == nil {
				n.out.Info("Current Balance: " + balance.String())
			}
		}
		n.out.Markdown(renderer.RenderSubMenu(title+" OPTIONS", labels))

		s, err := n.in.Line(ctx, "Select option")
		if err != nil {
			return err
		}
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || i < 1 || i > len(labels) {
			n.out.Error(fmt.Errorf("%w: invalid selection %q", ironring.ErrValidation, s))
			continue
		}
		if i == len(labels) {
			return nil
		}
		c := choices[i-1]
		n.enter(c.state)
		if err := c.run(ctx); err != nil {
			return err
		}
	}
}

// inputError reports whether err ends the input, rather than an operation.
func inputError(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// leaf wraps a screen: its errors are shown, then the user acknowledges before
// going back.
func (n *Navigator) leaf(back string, run func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		n.out.Clear()
		if err := run(ctx); err != nil {
			if inputError(err) {
				return err
			}
			slog.Info("operation-failed", "user", n.session.Username, "state", n.state, "error", err)
			n.out.Error(err)
		}
		return pause(ctx, n.in, back)
	}
}

func (n *Navigator) personal(ctx context.Context) error {
	return n.subMenu(ctx, StatePersonal, "PERSONAL MENU", "Main Menu",
		choice{"View Inventory", StateInventory, n.leaf("personal menu", n.characterSheet)},
		choice{"Manage Inventory", StateManage, n.manage},
	)
}

func (n *Navigator) manage(ctx context.Context) error {
	return n.subMenu(ctx, StateManage, "INVENTORY MANAGEMENT", "Personal Menu",
		choice{"Add Item", StateAddItem, n.leaf("inventory management", n.addItem)},
		choice{"Delete Item", StateDeleteItem, n.leaf("inventory management", n.deleteItem)},
	)
}

func (n *Navigator) bank(ctx context.Context) error {
	return n.subMenu(ctx, StateBank, "BANK TERMINAL", "Main Menu",
		choice{"Check Balance", StateBalance, n.leaf("bank menu", n.balance)},
		choice{"Transfer Holos", StateTransfer, n.leaf("bank menu", n.transfer)},
	)
}

func (n *Navigator) maintenance(ctx context.Context) error {
	return n.subMenu(ctx, StateMaintenance, "MAINTENANCE SYSTEMS", "Main Menu",
		choice{"Open Maintenance Hatch", StateHatch, n.leaf("maintenance menu", n.hatch)},
		choice{"View Maintenance Notes", StateNotes, n.leaf("maintenance menu", n.notes)},
	)
}

// logout destroys the session once confirmed.
func (n *Navigator) logout(ctx context.Context) error {
	ok, err := n.in.Confirm(ctx, "CONFIRM LOGOUT?")
	if err != nil || !ok {
		return err
	}
	n.out.Info(fmt.Sprintf("Logging out %s...", n.session.Username))
	slog.Info("logout", "user", n.session.Username)
	n.session = nil
	n.enter(StateLoggedOut)
	n.out.Success("User session terminated successfully.")
	return nil
}
