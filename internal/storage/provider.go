// Package storage defines the documentation corpus file-system abstraction.
package storage

import "github.com/mtovey/docindex/internal/models"

// Provider is the interface for corpus file operations.
type Provider interface {
	// List returns metadata for every Markdown file under dir (relative to
	// the corpus root). Unreadable entries are skipped, not fatal.
	List(dir string) ([]models.DocMetadata, error)
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the root).
	Write(path string, content []byte) error
	// Delete removes the file at path (relative to the root).
	Delete(path string) error
}
