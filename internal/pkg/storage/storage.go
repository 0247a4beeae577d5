package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Read when a slot has never been written.
	ErrNotFound = errors.New("storage slot not found")

	// ErrNotPersisted marks a change that was applied in memory but whose slot
	// write failed.
	ErrNotPersisted = errors.New("change kept in memory but not persisted")
)

// Storage is a set of named durable-storage slots. Each slot holds one
// serialized payload that is replaced wholesale on every write.
type Storage interface {
	// Read returns the payload of a slot, or ErrNotFound
	Read(ctx context.Context, key string) ([]byte, error)

	// Write replaces the payload of a slot
	Write(ctx context.Context, key string, data []byte) error

	// Exists checks if a slot has been written
	Exists(ctx context.Context, key string) (bool, error)

	// Close releases backend resources
	Close() error
}
