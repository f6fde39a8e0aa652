// Package store persists the session ledger between runs
package store

import (
	"github.com/ayoisaiah/worktime/internal/ledger"
)

// Backend identifies a storage implementation.
type Backend string

const (
	BackendText Backend = "text"
	BackendBolt Backend = "bolt"
)

// Store reads and writes a ledger.
type Store interface {
	// Load returns the persisted ledger. Missing or damaged data never
	// fails the load: the result degrades to whatever could be recovered,
	// down to an empty ledger.
	Load() *ledger.Ledger
	// Save replaces the persisted ledger with l.
	Save(l *ledger.Ledger) error
	// Path reports where the ledger lives.
	Path() string
	Close() error
}

// Open returns the store for the given backend rooted at path.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendText, "":
		return NewFile(path), nil
	case BackendBolt:
		return OpenBolt(path)
	default:
		return nil, errUnknownBackend.Fmt(backend)
	}
}
