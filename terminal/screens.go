package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/ironring"
	"github.com/etnz/ironring/renderer"
)

// readNumber reads a positive integer. Blank input returns def, if def is
// positive.
func (n *Navigator) readNumber(ctx context.Context, prompt string, def int) (int, error) {
	s, err := n.in.Line(ctx, prompt)
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	if s == "" && def > 0 {
		return def, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 {
		return 0, fmt.Errorf("%w: %q is not a positive number", ironring.ErrValidation, s)
	}
	return i, nil
}

func (n *Navigator) characterSheet(ctx context.Context) error {
	user := n.session.Username
	balance, err := n.ledger.Balance(user)
	if err != nil {
		return err
	}
	items, err := n.inventory.List(user)
	if err != nil {
		return err
	}
	n.out.Title("PERSONAL INVENTORY")
	n.out.Markdown(renderer.RenderCharacterSheet(&renderer.CharacterSheet{
		Session: n.session,
		Balance: balance,
		Items:   items,
	}))
	return nil
}

func (n *Navigator) addItem(ctx context.Context) error {
	n.out.Title("ADD INVENTORY ITEM")
	name, err := n.in.Line(ctx, "Item Name")
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: item name cannot be empty", ironring.ErrValidation)
	}
	desc, err := n.in.Line(ctx, "Item Description")
	if err != nil {
		return err
	}
	if strings.TrimSpace(desc) == "" {
		return fmt.Errorf("%w: item description cannot be empty", ironring.ErrValidation)
	}
	qty, err := n.readNumber(ctx, "Quantity (default 1)", 1)
	if err != nil {
		return err
	}
	it, err := n.inventory.Add(n.session.Username, name, desc, qty)
	if err != nil {
		return err
	}
	n.out.Success(fmt.Sprintf("Item '%s' added to inventory.", it.Name))
	return nil
}

func (n *Navigator) deleteItem(ctx context.Context) error {
	n.out.Title("DELETE INVENTORY ITEM")
	items, err := n.inventory.List(n.session.Username)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		n.out.Info("No items in inventory to delete.")
		return nil
	}
	n.out.Markdown(renderer.RenderInventory(items))

	i, err := n.readNumber(ctx, "Select item number to delete", 0)
	if err != nil {
		return err
	}
	if i > len(items) {
		return fmt.Errorf("%w: no item number %d", ironring.ErrNotFound, i)
	}
	ok, err := n.in.Confirm(ctx, fmt.Sprintf("Confirm deletion of '%s'?", items[i-1].Name))
	if err != nil {
		return err
	}
	if !ok {
		n.out.Info("Deletion cancelled.")
		return nil
	}
	it, err := n.inventory.Delete(n.session.Username, i)
	if err != nil {
		return err
	}
	n.out.Success(fmt.Sprintf("Item '%s' deleted from inventory.", it.Name))
	return nil
}

func (n *Navigator) news(ctx context.Context) error {
	n.out.Title("STATION NEWS")
	news, err := n.catalog.LoadNews()
	if err != nil {
		return err
	}
	n.out.Markdown(renderer.RenderNews(news))
	return nil
}

func (n *Navigator) shuttle(ctx context.Context) error {
	n.out.Title("SHUTTLE STATUS")
	n.out.Markdown(renderer.RenderShuttleStatus())
	return nil
}

func (n *Navigator) food(ctx context.Context) error {
	n.out.Title("FOOD DELIVERY SYSTEM")
	user := n.session.Username
	menu, err := n.catalog.LoadMenu()
	if err != nil {
		return err
	}
	balance, err := n.ledger.Balance(user)
	if err != nil {
		return err
	}
	n.out.Markdown(renderer.RenderFoodMenu(menu, balance))
	if len(menu) == 0 {
		return nil
	}

	i, err := n.readNumber(ctx, "Select item number to order", 0)
	if err != nil {
		return err
	}
	if i > len(menu) {
		return fmt.Errorf("%w: no item number %d", ironring.ErrNotFound, i)
	}
	qty, err := n.readNumber(ctx, "How many would you like to order?", 1)
	if err != nil {
		return err
	}

	o, err := ironring.PlaceOrder(n.ledger, n.inventory, user, menu[i-1], qty)
	if o.Quantity > 0 {
		n.out.Markdown(renderer.RenderOrder(o))
	}
	return err
}

func (n *Navigator) balance(ctx context.Context) error {
	n.out.Title("ACCOUNT BALANCE")
	b, err := n.ledger.Balance(n.session.Username)
	if err != nil {
		return err
	}
	n.out.Markdown(renderer.RenderBalance(b))
	return nil
}

func (n *Navigator) transfer(ctx context.Context) error {
	n.out.Title("HOLO TRANSFER")
	user := n.session.Username
	b, err := n.ledger.Balance(user)
	if err != nil {
		return err
	}
	n.out.Info("Your current balance: " + b.String())

	recipient, err := n.in.Line(ctx, "Enter recipient username")
	if err != nil {
		return err
	}
	recipient = strings.TrimSpace(recipient)
	ok, err := n.ledger.Exists(recipient)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", ironring.ErrUnknownRecipient, recipient)
	}

	s, err := n.in.Line(ctx, "Enter amount to transfer")
	if err != nil {
		return err
	}
	amount, err := ironring.ParseHolos(s)
	if err != nil {
		return err
	}

	ok, err = n.in.Confirm(ctx, fmt.Sprintf("Confirm transfer of %v to %s?", amount, recipient))
	if err != nil {
		return err
	}
	if !ok {
		n.out.Info("Transfer cancelled.")
		return nil
	}
	t, err := n.ledger.Transfer(user, recipient, amount)
	if err != nil {
		return err
	}
	n.out.Markdown(renderer.RenderTransfer(t))
	return nil
}

func (n *Navigator) hatch(ctx context.Context) error {
	n.out.Title("MAINTENANCE HATCH ACCESS")
	n.out.Info("Enter maintenance hatch number to access:")
	s, err := n.in.Line(ctx, "Hatch Number")
	if err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("%w: invalid hatch number", ironring.ErrValidation)
	}
	n.out.Info(fmt.Sprintf("Accessing Hatch-%s...", s))
	n.out.Success(fmt.Sprintf("HATCH-%s OPENED SUCCESSFULLY", s))
	n.out.Info("Maintenance access granted.")
	return nil
}

func (n *Navigator) notes(ctx context.Context) error {
	n.out.Title("MAINTENANCE NOTES")
	notes, err := n.catalog.LoadNotes()
	if err != nil {
		return err
	}
	n.out.Markdown(renderer.RenderNotes(notes))
	return nil
}
