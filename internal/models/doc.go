// Package models defines the domain types for the documentation indexer.
package models

import "time"

// Doc represents a Markdown file in the documentation corpus.
type Doc struct {
	Path      string    `json:"path"`
	Content   []byte    `json:"-"`
	Title     string    `json:"title,omitempty"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocMetadata is a lightweight representation returned by list operations.
type DocMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Mention records that a term or acronym occurs in a file.
type Mention struct {
	Term string `json:"term"`
	Kind string `json:"kind"` // "term" or "acronym"
	Path string `json:"path"`
}
