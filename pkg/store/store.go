// Package store owns the canonical document: the folder/word/template/
// card tree. Every structural mutation flows through a single
// choke-point that snapshots the pre-mutation state into a one-slot
// undo buffer, re-normalizes, and schedules a coalescing background
// write. In-memory state is authoritative; a failed write is logged
// and retried by whatever mutation comes next.
package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/tagdeck/tagdeck-cli/pkg/files"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/normalize"
)

// WriteFunc persists a document snapshot.
type WriteFunc func(models.DataStore) error

// Store is the document store and history. All methods are safe for
// concurrent use; invariants (id uniqueness, cascade completeness)
// rely on mutations never interleaving.
type Store struct {
	mu   sync.Mutex
	data models.DataStore
	undo *models.DataStore

	write  WriteFunc
	logger *zap.Logger

	notify chan struct{}
	done   chan struct{}
	wg     sync.WaitGroup
}

// Open loads the document from the .tagdeck directory and starts the
// background writer.
func Open(logger *zap.Logger) *Store {
	return New(files.ReadDocument(), files.WriteDocument, logger)
}

// New builds a store around an initial document and a write function.
func New(initial models.DataStore, write WriteFunc, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		data:   normalize.Document(initial),
		write:  write,
		logger: logger,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.runWriter()
	return s
}

// Data returns a deep copy of the current document.
func (s *Store) Data() models.DataStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// SetData replaces the whole document. Import goes through here so
// normalization and undo-snapshotting still apply.
func (s *Store) SetData(d models.DataStore) {
	_ = s.mutate(func(doc *models.DataStore) error {
		*doc = d
		return nil
	})
}

// Undo restores the single-slot snapshot taken before the most recent
// mutation and clears it. It reports whether anything was restored; a
// second call without an intervening mutation is a no-op.
func (s *Store) Undo() bool {
	s.mu.Lock()
	if s.undo == nil {
		s.mu.Unlock()
		return false
	}
	s.data = *s.undo
	s.undo = nil
	s.mu.Unlock()
	s.markDirty()
	return true
}

// CanUndo reports whether an undo snapshot is available.
func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undo != nil
}

// mutate is the choke-point: snapshot, apply, normalize, mark dirty.
// A failing mutation leaves both the document and the undo slot
// untouched.
func (s *Store) mutate(fn func(*models.DataStore) error) error {
	s.mu.Lock()
	snapshot := s.data.Clone()
	if err := fn(&s.data); err != nil {
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	s.undo = &snapshot
	s.data = normalize.Document(s.data)
	s.mu.Unlock()
	s.markDirty()
	return nil
}

// markDirty nudges the writer. The channel holds at most one pending
// notification, so rapid mutations coalesce into a single write of
// whatever state is current when the writer wakes.
func (s *Store) markDirty() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *Store) runWriter() {
	defer s.wg.Done()
	for {
		select {
		case <-s.notify:
			if err := s.write(s.Data()); err != nil {
				s.logger.Warn("document write failed; in-memory state remains authoritative",
					zap.Error(err))
			}
		case <-s.done:
			return
		}
	}
}

// Flush writes the current state synchronously. Callers that need a
// durability guarantee (CLI commands before exit) use this; the
// boolean-style error reports failure without retrying.
func (s *Store) Flush() error {
	return s.write(s.Data())
}

// Close stops the background writer and flushes once.
func (s *Store) Close() error {
	close(s.done)
	s.wg.Wait()
	return s.Flush()
}
