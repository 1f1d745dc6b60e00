package ironring

import (
	"fmt"
	"log/slog"
	"strings"
)

// ItemStore provides the inventory records.
type ItemStore interface {
	LoadInventory() ([]Item, error)
	AppendItem(Item) error
	RewriteInventory([]Item) error
}

// Inventory manages the per-user item lists.
type Inventory struct {
	store ItemStore
}

// NewInventory returns an Inventory over store.
func NewInventory(store ItemStore) *Inventory {
	return &Inventory{store: store}
}

// List returns the items of user in the order they were added.
func (inv *Inventory) List(user string) ([]Item, error) {
	all, err := inv.store.LoadInventory()
	if err != nil {
		return nil, err
	}
	var items []Item
	for _, it := range all {
		if it.Owner == user {
			items = append(items, it)
		}
	}
	return items, nil
}

// Add appends a new item for user. Name and description are required; a
// zero quantity means 1.
func (inv *Inventory) Add(user, name, description string, quantity int) (Item, error) {
	if quantity == 0 {
		quantity = 1
	}
	it := Item{
		Owner:       user,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Quantity:    quantity,
	}
	if err := it.validate(); err != nil {
		return Item{}, err
	}
	if err := inv.store.AppendItem(it); err != nil {
		return Item{}, err
	}
	slog.Info("add-item", "user", user, "item", it.Name, "quantity", it.Quantity)
	return it, nil
}

// Delete removes the item at the 1-based index of List(user).
//
// Records are matched by owner and name only: the first stored record with
// the selected name is removed. With same-named duplicates this may not be
// the physical record that was selected, but exactly one record goes.
func (inv *Inventory) Delete(user string, index int) (Item, error) {
	all, err := inv.store.LoadInventory()
	if err != nil {
		return Item{}, err
	}

	var selected *Item
	n := 0
	for i := range all {
		if all[i].Owner != user {
			continue
		}
		n++
		if n == index {
			selected = &all[i]
			break
		}
	}
	if selected == nil {
		return Item{}, fmt.Errorf("%w: %s has no item #%d", ErrNotFound, user, index)
	}
	name := selected.Name

	for i, it := range all {
		if it.Owner == user && it.Name == name {
			removed := it
			kept := append(all[:i:i], all[i+1:]...)
			if err := inv.store.RewriteInventory(kept); err != nil {
				return Item{}, err
			}
			slog.Info("delete-item", "user", user, "item", name)
			return removed, nil
		}
	}
	// unreachable: selected itself matches.
	return Item{}, fmt.Errorf("%w: %s has no item %q", ErrNotFound, user, name)
}

// validate checks the fields of an item to be stored.
func (it Item) validate() error {
	if it.Name == "" {
		return fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	}
	if it.Description == "" {
		return fmt.Errorf("%w: item description cannot be empty", ErrValidation)
	}
	for _, f := range []string{it.Name, it.Description} {
		if strings.ContainsAny(f, keyDelimiter+fieldDelimiter+"\r\n") {
			return fmt.Errorf("%w: %q cannot contain %q, %q or line breaks", ErrValidation, f, keyDelimiter, fieldDelimiter)
		}
	}
	if it.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1, got %d", ErrValidation, it.Quantity)
	}
	return nil
}
