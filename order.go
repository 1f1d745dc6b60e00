package ironring

import "fmt"

// Order is a completed food delivery.
type Order struct {
	Item     MenuItem
	Quantity int
	Cost     Holos
	Balance  Holos // after the purchase
}

// PlaceOrder charges user for quantity units of item and delivers them to the
// user's inventory.
//
// The debit is committed first. If the delivery cannot be recorded the
// debit stands, and the returned Order comes with the delivery error.
func PlaceOrder(l *Ledger, inv *Inventory, user string, item MenuItem, quantity int) (Order, error) {
	balance, err := l.Purchase(user, item.Price, quantity)
	if err != nil {
		return Order{}, err
	}
	o := Order{Item: item, Quantity: quantity, Cost: item.Price * Holos(quantity), Balance: balance}
	if _, err := inv.Add(user, item.Name, item.Name, quantity); err != nil {
		return o, fmt.Errorf("paid %v but could not deliver %q: %w", o.Cost, item.Name, err)
	}
	return o, nil
}
