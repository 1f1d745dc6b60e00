// Package ironring implements the records and services behind the Iron Ring
// station terminal: a single user logs in, is granted the menu options of
// their role, and spends or transfers Holos and manages a personal inventory.
//
// The core pieces are:
//   - Store: the only component touching the data folder. It reads and writes
//     small colon and pipe delimited text files and never caches them, so
//     every operation starts from the current on-disk truth.
//   - Authenticator: turns a username and password into a Session, locking
//     the terminal after a bounded number of failed attempts.
//   - Authorization: IsAllowed is a membership test of a menu Option in the
//     Session's permission set.
//   - Ledger: balance reads, purchases and transfers. Balances are never
//     negative after a committed operation.
//   - Inventory: per-user item lists with append, list and delete.
//
// This package serves as the foundational logic for the `ironring` terminal
// binary; presentation lives in the terminal and renderer packages.
package ironring
