// Package storage abstracts where generated export artifacts live. The
// local implementation is the default; the interface keeps an object-store
// backend possible without touching the export pipeline.
package storage

import (
	"io"
	"time"
)

// FileInfo describes one stored artifact.
type FileInfo struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Storage is the artifact store used by the export pipeline and the
// download endpoint.
type Storage interface {
	// Create opens a writer for a new artifact, replacing any existing one
	// with the same name.
	Create(name string) (io.WriteCloser, error)

	// Open returns a reader for an existing artifact.
	Open(name string) (io.ReadCloser, error)

	// Remove deletes an artifact.
	Remove(name string) error

	// List enumerates all stored artifacts.
	List() ([]FileInfo, error)
}
