package destination

import (
	"errors"
	"sync"
)

var (
	// ErrEmptyID indicates a destination record with an empty identifier.
	ErrEmptyID = errors.New("destination: identifier is empty")

	// ErrNegativePrice indicates a destination record with a price below zero.
	ErrNegativePrice = errors.New("destination: price must be non-negative")

	// ErrSealed indicates an Add after the load phase ended.
	ErrSealed = errors.New("destination: table is sealed")
)

// Record is one priced destination.
type Record struct {
	// ID is the canonical short identifier (e.g. "A", "W3").
	ID string

	// Name is the display name with underscores already turned into spaces.
	Name string

	// Price is the entry price of the destination.
	Price int64
}

// Table maps canonical identifiers to records.
type Table struct {
	mu      sync.RWMutex
	records map[string]Record
	sealed  bool
}

// NewTable returns an empty, unsealed Table.
func NewTable() *Table {
	return &Table{records: make(map[string]Record)}
}
