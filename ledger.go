package ironring

import (
	"fmt"
	"log/slog"
)

// BalanceStore provides the balance records.
type BalanceStore interface {
	LoadBalances() (Balances, error)
	SaveBalances(Balances) error
}

// Ledger reads and mutates Holo balances.
//
// Every call is a read-modify-write of the whole balance set: balances are
// loaded, checked, changed in memory and saved at once. A rejected operation
// never writes, and a failed save leaves the previous balances in place.
type Ledger struct {
	store BalanceStore
}

// NewLedger returns a Ledger over store.
func NewLedger(store BalanceStore) *Ledger {
	return &Ledger{store: store}
}

// Transfer is the outcome of a successful transfer.
type Transfer struct {
	Sender    string
	Recipient string
	Amount    Holos
	// Balances after the transfer.
	SenderBalance    Holos
	RecipientBalance Holos
}

// Balance returns the balance of user. Unknown users have an implicit zero
// balance.
func (l *Ledger) Balance(user string) (Holos, error) {
	b, err := l.store.LoadBalances()
	if err != nil {
		return 0, err
	}
	return b[user], nil
}

// Exists reports whether user has an entry in the balance set.
func (l *Ledger) Exists(user string) (bool, error) {
	b, err := l.store.LoadBalances()
	if err != nil {
		return false, err
	}
	_, ok := b[user]
	return ok, nil
}

// Purchase debits unitPrice*quantity from user and returns the new balance.
// The debit is rejected with ErrInsufficientFunds when the balance does not
// cover it.
func (l *Ledger) Purchase(user string, unitPrice Holos, quantity int) (Holos, error) {
	if unitPrice < 0 {
		return 0, fmt.Errorf("%w: negative price %v", ErrInvalidAmount, unitPrice)
	}
	if quantity < 1 {
		return 0, fmt.Errorf("%w: quantity must be at least 1, got %d", ErrInvalidAmount, quantity)
	}
	total, err := cost(unitPrice, quantity)
	if err != nil {
		return 0, err
	}

	b, err := l.store.LoadBalances()
	if err != nil {
		return 0, err
	}
	if b[user] < total {
		return 0, fmt.Errorf("%w: costs %v, %s only has %v", ErrInsufficientFunds, total, user, b[user])
	}
	b[user] -= total
	if err := l.store.SaveBalances(b); err != nil {
		return 0, fmt.Errorf("%w: purchase of %v by %s: %w", ErrPersist, total, user, err)
	}
	slog.Info("purchase", "user", user, "cost", int64(total), "balance", int64(b[user]))
	return b[user], nil
}

// Transfer moves amount from sender to recipient.
//
// The recipient must already have a balance entry. A transfer to oneself is
// a deposit: it credits amount without checking the balance. Any other
// transfer requires amount to be covered by the sender's balance.
// A credit that would overflow the recipient balance is ErrInvalidAmount.
func (l *Ledger) Transfer(sender, recipient string, amount Holos) (Transfer, error) {
	if amount < 0 {
		return Transfer{}, fmt.Errorf("%w: cannot transfer %v", ErrInvalidAmount, amount)
	}

	b, err := l.store.LoadBalances()
	if err != nil {
		return Transfer{}, err
	}
	if _, ok := b[recipient]; !ok {
		return Transfer{}, fmt.Errorf("%w: %q has no account", ErrUnknownRecipient, recipient)
	}

	if sender != recipient && amount > b[sender] {
		return Transfer{}, fmt.Errorf("%w: %s only has %v", ErrInsufficientFunds, sender, b[sender])
	}
	credited, err := credit(b[recipient], amount)
	if err != nil {
		return Transfer{}, fmt.Errorf("cannot credit %s: %w", recipient, err)
	}
	if sender != recipient {
		b[sender] -= amount
	}
	b[recipient] = credited

	if err := l.store.SaveBalances(b); err != nil {
		return Transfer{}, fmt.Errorf("%w: transfer from %s to %s: %w", ErrPersist, sender, recipient, err)
	}
	slog.Info("transfer", "from", sender, "to", recipient, "amount", int64(amount))
	return Transfer{
		Sender:           sender,
		Recipient:        recipient,
		Amount:           amount,
		SenderBalance:    b[sender],
		RecipientBalance: b[recipient],
	}, nil
}
