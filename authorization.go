package ironring

import "fmt"

// IsAllowed reports whether the session may enter the menu option.
//
// Logout is a structural exit and is allowed for every live session. A nil
// session is allowed nothing.
func IsAllowed(s *Session, opt Option) bool {
	if s == nil {
		return false
	}
	if opt == OptionLogout {
		return true
	}
	return s.Permissions.Has(opt)
}

// Authorize returns ErrUnauthorized when IsAllowed is false.
func Authorize(s *Session, opt Option) error {
	if IsAllowed(s, opt) {
		return nil
	}
	role := ""
	if s != nil {
		role = s.Role
	}
	return fmt.Errorf("%w: role %q may not enter option %d (%v)", ErrUnauthorized, role, int(opt), opt)
}

// Selectable returns the options the session may choose, in menu order.
func Selectable(s *Session) []Option {
	var opts []Option
	for _, o := range Options {
		if IsAllowed(s, o) {
			opts = append(opts, o)
		}
	}
	return opts
}
