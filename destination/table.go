package destination

import (
	"fmt"
	"sort"
	"strings"
)

// Add stores a record for id. Underscores in rawName become spaces.
// A later Add for the same id overwrites the earlier record.
func (t *Table) Add(id, rawName string, price int64) error {
	if id == "" {
		return ErrEmptyID
	}
	if price < 0 {
		return fmt.Errorf("%w: %s price=%d", ErrNegativePrice, id, price)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sealed {
		return fmt.Errorf("%w: cannot add %q", ErrSealed, id)
	}
	t.records[id] = Record{
		ID:    id,
		Name:  strings.ReplaceAll(rawName, "_", " "),
		Price: price,
	}

	return nil
}

// Lookup returns the record for id; ok is false when there is none.
func (t *Table) Lookup(id string) (rec Record, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok = t.records[id]

	return rec, ok
}

// Seal ends the load phase. Subsequent Add calls return ErrSealed.
func (t *Table) Seal() {
	t.mu.Lock()
	t.sealed = true
	t.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (t *Table) Sealed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.sealed
}

// Len returns the number of records.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.records)
}

// IDs returns all identifiers sorted lexicographically.
func (t *Table) IDs() []string {
	t.mu.RLock()
	ids := make([]string, 0, len(t.records))
	for id := range t.records {
		ids = append(ids, id)
	}
	t.mu.RUnlock()
	sort.Strings(ids)

	return ids
}
