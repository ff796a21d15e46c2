// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Ledger is the predicate function for ledger builders.
type Ledger func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// TickEvent is the predicate function for tickevent builders.
type TickEvent func(*sql.Selector)
