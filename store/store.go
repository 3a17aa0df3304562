//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_document_store.go -package=mocks

// Package store persists the whole document as one opaque blob.
// Backends only know how to load and save the full state; all
// entity-level logic lives in the services layer.
package store

import "chatboard/domain"

// DocumentStore is the opaque load/save slot for the persisted state.
//
// Load never fails outward: a missing, empty, or corrupt blob self-heals
// to the empty document (logged, then re-persisted). Save fully overwrites
// the previous state; a failed Save must be surfaced as a server fault.
type DocumentStore interface {
	Load() domain.Document
	Save(doc domain.Document) error
}
