// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Provider is the predicate function for provider builders.
type Provider func(*sql.Selector)

// Record is the predicate function for record builders.
type Record func(*sql.Selector)
