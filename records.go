package ironring

import (
	"crypto/subtle"
	"maps"
	"slices"
)

// Credential is a provisioned user account. It is read-only to the terminal.
type Credential struct {
	Username string
	Password string
	Role     string
}

// Matches reports whether password is the credential's password.
func (c Credential) Matches(password string) bool {
	return subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
}

// Option identifies a main menu entry. Role permissions are sets of Options.
type Option int

const (
	OptionPersonal Option = iota + 1
	OptionNews
	OptionShuttle
	OptionFood
	OptionBank
	OptionMaintenance
	OptionLogout
)

// Options lists every main menu entry in display order.
var Options = []Option{
	OptionPersonal,
	OptionNews,
	OptionShuttle,
	OptionFood,
	OptionBank,
	OptionMaintenance,
	OptionLogout,
}

func (o Option) String() string {
	switch o {
	case OptionPersonal:
		return "PERSONAL"
	case OptionNews:
		return "STATION NEWS"
	case OptionShuttle:
		return "SHUTTLE STATUS"
	case OptionFood:
		return "FOOD DELIVERY"
	case OptionBank:
		return "BANK"
	case OptionMaintenance:
		return "MAINTENANCE"
	case OptionLogout:
		return "LOGOUT"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether o is one of the main menu entries.
func (o Option) Valid() bool { return o >= OptionPersonal && o <= OptionLogout }

// PermissionSet is the set of Options a role may enter.
type PermissionSet map[Option]struct{}

// NewPermissionSet returns a set containing opts.
func NewPermissionSet(opts ...Option) PermissionSet {
	s := make(PermissionSet, len(opts))
	for _, o := range opts {
		s[o] = struct{}{}
	}
	return s
}

// Has reports whether o is in the set.
func (s PermissionSet) Has(o Option) bool {
	_, ok := s[o]
	return ok
}

// Sorted returns the options of the set in ascending order.
func (s PermissionSet) Sorted() []Option {
	return slices.Sorted(maps.Keys(s))
}

// Permissions maps a role to its permission set.
type Permissions map[string]PermissionSet

// Session is the identity logged in at the terminal. There is at most one
// live Session, held by the menu navigator until logout.
type Session struct {
	Username    string
	Role        string
	Permissions PermissionSet
}

// SecurityLevel is the number of options the session may enter.
func (s *Session) SecurityLevel() int { return len(s.Permissions) }

// Balances maps a username to its Holo balance.
type Balances map[string]Holos

// Item is one physical inventory record. Items are never updated in place.
type Item struct {
	Owner       string
	Name        string
	Description string
	Quantity    int
}

// MenuItem is an entry of the food delivery menu.
type MenuItem struct {
	Name  string
	Price Holos
}

// Article is a station news entry.
type Article struct {
	Title string
	Body  string
}

// Note is a maintenance note attached to a hatch.
type Note struct {
	Hatch string
	Text  string
}
