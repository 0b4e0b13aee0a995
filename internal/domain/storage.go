package domain

import "io"

// ImageStore persists uploaded image bytes and returns a public reference
// path. Stored files are never cleaned up when the record referencing them
// is later updated or deleted.
type ImageStore interface {
	Save(originalName string, r io.Reader) (path string, err error)
}
