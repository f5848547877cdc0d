package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a key has no stored object.
var ErrNotFound = errors.New("object not found")

// Object describes a stored blob.
type Object struct {
	Key       string
	SizeBytes int64
	MimeType  string
}

// Store saves and reads binary objects by key.
type Store interface {
	Put(ctx context.Context, namespace, fileName string, r io.Reader) (Object, error)
	Read(ctx context.Context, key string) ([]byte, error)
}
