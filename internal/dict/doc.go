// Package dict provides a deduplicating name dictionary.
//
// Every distinct name is assigned a dense, stable integer id in insertion
// order. Id 0 is reserved at construction as the "unset" sentinel: it has no
// name, is never returned by Add, and reverse lookups on it fail. Callers can
// therefore use 0 in their own records to mean "not known" without colliding
// with a real entry.
//
// A Dict is not safe for concurrent mutation.
package dict
