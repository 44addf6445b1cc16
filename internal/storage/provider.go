// Package storage defines the drafts file-system abstraction.
package storage

import "os"

// Provider is the interface for file operations under the drafts directory.
type Provider interface {
	// MkdirAll creates dir and any missing parents (relative to the drafts root).
	MkdirAll(dir string) error
	// CreateEmpty creates an empty file at path. It returns apperr.ErrAlreadyExists
	// when the file is already there and leaves it untouched.
	CreateEmpty(path string) error
	// Write atomically replaces the file at path with content.
	Write(path string, content []byte) error
	// Stat returns file info for path (relative to the drafts root).
	Stat(path string) (os.FileInfo, error)
}
