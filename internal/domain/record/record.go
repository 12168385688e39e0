package record

import (
	"time"

	"github.com/google/uuid"
)

// StorageVersion is the schema tag stamped on every record at creation.
// There is no migration logic; the tag exists so a future one can tell
// old records apart.
const StorageVersion = "1.0"

// Meta is the metadata shared by every stored record. It is embedded in
// each entity struct and serialized inline.
type Meta struct {
	ID           string     `json:"id"`
	Timestamp    time.Time  `json:"timestamp"`
	LastModified *time.Time `json:"lastModified,omitempty"`
	Version      string     `json:"version"`
}

// NewMeta stamps fresh metadata for a record being created.
// POST: ID is a new UUID, Timestamp is now (UTC), Version is StorageVersion
func NewMeta(now time.Time) Meta {
	return Meta{
		ID:        uuid.New().String(),
		Timestamp: now.UTC(),
		Version:   StorageVersion,
	}
}

// Touch records a modification instant.
// POST: LastModified is set to now (UTC)
func (m *Meta) Touch(now time.Time) {
	t := now.UTC()
	m.LastModified = &t
}
