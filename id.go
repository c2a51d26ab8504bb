package vlist

import "hash/fnv"

// ID uniquely identifies an entry in a Store.
// IDs derived from the same name are stable across passes.
type ID uint64

// KeyID hashes a string name into a stable ID.
func KeyID(name string) ID {
	h := fnv.New64a()
	h.Write([]byte(name))
	return ID(h.Sum64())
}
