package db

import "errors"

// Sentinel errors for store operations.
var (
	ErrDocumentNotFound = errors.New("db: document not found")
	ErrInvalidID        = errors.New("db: invalid document id")
	ErrKeyNotFound      = errors.New("db: key not found")
)

// Op constants name store operations for error context.
const (
	OpPing            = "ping"
	OpInsertOne       = "insert-one"
	OpFind            = "find"
	OpCount           = "count"
	OpFindByID        = "find-by-id"
	OpListCollections = "list-collections"
	OpGet             = "get"
	OpSet             = "set"
)

// Error wraps an underlying driver error with the operation name for
// diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
