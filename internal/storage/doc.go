// Package storage keeps an event book in a single JSON file.
//
// A FileStore is bound to a default file path at construction and every
// operation may name another path instead. Loading a path with no file is
// not an error; the caller gets "not found" and decides what an empty book
// means. The JSON document is decoded into an intermediate representation
// whose string fields are validated while converting to the event model,
// so a hand-edited file with an illegal value is rejected as a whole.
//
// Writes overwrite the file in place. There is no locking, no backup and
// no atomic rename; concurrent writers to one path will race.
package storage
