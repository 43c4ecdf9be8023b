package dict

import (
	"errors"
	"fmt"
	"unique"
)

// Unset is the reserved sentinel id.
const Unset = 0

// ErrUnknownID is returned by Name for ids that were never assigned.
var ErrUnknownID = errors.New("unknown id")

// Dict maps names to dense ids and back.
type Dict struct {
	ids   map[unique.Handle[string]]int
	names []unique.Handle[string]
}

// New creates an empty dictionary with the sentinel slot already occupied.
func New() *Dict {
	return &Dict{
		ids:   make(map[unique.Handle[string]]int),
		names: make([]unique.Handle[string], 1), // slot 0: sentinel, zero handle
	}
}

// Add returns the id of name, assigning the next free id if name is new.
// added reports whether a new id was assigned.
func (d *Dict) Add(name string) (id int, added bool) {
	h := unique.Make(name)
	if id, ok := d.ids[h]; ok {
		return id, false
	}
	id = len(d.names)
	d.names = append(d.names, h)
	d.ids[h] = id
	return id, true
}

// Lookup returns the id of name without inserting it.
func (d *Dict) Lookup(name string) (int, bool) {
	id, ok := d.ids[unique.Make(name)]
	return id, ok
}

// Name returns the name registered under id.
func (d *Dict) Name(id int) (string, error) {
	if id <= Unset || id >= len(d.names) {
		return "", fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	return d.names[id].Value(), nil
}

// Len returns the number of slots, including the sentinel.
func (d *Dict) Len() int {
	return len(d.names)
}
