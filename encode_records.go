package ironring

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Every record set is a flat text file, one record per line:
//
//	credentials  user:password:role
//	permissions  role:1,2,3
//	balances     user:amount
//	inventory    owner:name|description|quantity
//	food menu    item|price
//	news         title|body
//	notes        hatch|note
//
// Blank lines are ignored everywhere.

const (
	keyDelimiter   = ":"
	fieldDelimiter = "|"
	listDelimiter  = ","
)

func parseCredential(txt string) (Credential, error) {
	fields := strings.Split(txt, keyDelimiter)
	if len(fields) != 3 {
		return Credential{}, fmt.Errorf("want user:password:role, got %d fields", len(fields))
	}
	if fields[0] == "" {
		return Credential{}, fmt.Errorf("empty username")
	}
	return Credential{Username: fields[0], Password: fields[1], Role: fields[2]}, nil
}

func parsePermission(txt string) (role string, set PermissionSet, err error) {
	fields := strings.Split(txt, keyDelimiter)
	if len(fields) != 2 {
		return "", nil, fmt.Errorf("want role:options, got %d fields", len(fields))
	}
	role, set = fields[0], NewPermissionSet()
	if strings.TrimSpace(fields[1]) == "" {
		return role, set, nil
	}
	for _, v := range strings.Split(fields[1], listDelimiter) {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return "", nil, fmt.Errorf("option %q is not a number", v)
		}
		if o := Option(n); !o.Valid() {
			return "", nil, fmt.Errorf("option %d does not exist", n)
		}
		set[Option(n)] = struct{}{}
	}
	return role, set, nil
}

func parseBalance(txt string) (user string, amount Holos, err error) {
	fields := strings.Split(txt, keyDelimiter)
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("want user:amount, got %d fields", len(fields))
	}
	n, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("amount %q is not a whole number", fields[1])
	}
	if n < 0 {
		return "", 0, fmt.Errorf("amount %d is negative", n)
	}
	return fields[0], Holos(n), nil
}

func formatBalance(w io.Writer, user string, amount Holos) error {
	_, err := fmt.Fprintf(w, "%s%s%d\n", user, keyDelimiter, int64(amount))
	return err
}

func parseItem(txt string) (Item, error) {
	owner, info, ok := strings.Cut(txt, keyDelimiter)
	if !ok {
		return Item{}, fmt.Errorf("want owner:name|description|quantity")
	}
	fields := strings.Split(info, fieldDelimiter)
	if len(fields) != 3 {
		return Item{}, fmt.Errorf("want name|description|quantity, got %d fields", len(fields))
	}
	qty, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return Item{}, fmt.Errorf("quantity %q is not a number", fields[2])
	}
	return Item{Owner: owner, Name: fields[0], Description: fields[1], Quantity: qty}, nil
}

func formatItem(w io.Writer, it Item) error {
	_, err := fmt.Fprintf(w, "%s%s%s%s%s%s%d\n", it.Owner, keyDelimiter, it.Name, fieldDelimiter, it.Description, fieldDelimiter, it.Quantity)
	return err
}

func parseMenuItem(txt string) (MenuItem, error) {
	fields := strings.Split(txt, fieldDelimiter)
	if len(fields) != 2 {
		return MenuItem{}, fmt.Errorf("want item|price, got %d fields", len(fields))
	}
	price, err := ParseHolos(fields[1])
	if err != nil {
		return MenuItem{}, err
	}
	return MenuItem{Name: fields[0], Price: price}, nil
}

// parseEntry splits a "head|text" catalog line, text may contain the delimiter.
func parseEntry(txt string) (head, text string, err error) {
	head, text, ok := strings.Cut(txt, fieldDelimiter)
	if !ok {
		return "", "", fmt.Errorf("want title|text")
	}
	return head, text, nil
}
