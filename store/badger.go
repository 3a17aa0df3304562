package store

import (
	"encoding/json"
	"errors"
	"log/slog"

	"chatboard/domain"

	"github.com/dgraph-io/badger/v4"
)

// documentKey is the single well-known slot holding the whole state.
const documentKey = "document:state"

// BadgerStore keeps the document as one indented JSON blob under a fixed
// key. Badger is used as an opaque key-value slot, not as an entity store.
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

func (s *BadgerStore) Load() domain.Document {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(documentKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})

	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return s.initialize("no persisted document, starting empty")
	case err != nil:
		s.log.Error("document read failed, falling back to empty state", "error", err)
		return domain.EmptyDocument()
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		// Silent data loss would be invisible otherwise.
		s.log.Warn("persisted document is corrupt, reinitializing", "error", err)
		return s.initialize("corrupt document replaced by empty state")
	}
	return doc
}

func (s *BadgerStore) Save(doc domain.Document) error {
	raw, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(documentKey), raw)
	})
}

func (s *BadgerStore) initialize(reason string) domain.Document {
	doc := domain.EmptyDocument()
	if err := s.Save(doc); err != nil {
		s.log.Error("initializing empty document failed", "error", err)
	} else {
		s.log.Info(reason)
	}
	return doc
}

// encodeDocument renders the document as indented JSON so the persisted
// blob stays human-readable, matching the historical data file.
func encodeDocument(doc domain.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func decodeDocument(raw []byte) (domain.Document, error) {
	doc := domain.EmptyDocument()
	if len(raw) == 0 {
		return doc, errEmptyDocument
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.EmptyDocument(), err
	}
	// A hand-edited blob may carry null collections.
	if doc.Users == nil {
		doc.Users = []domain.User{}
	}
	if doc.Channels == nil {
		doc.Channels = []domain.Channel{}
	}
	return doc, nil
}
