package store

import (
	"sync"

	"chatboard/domain"
)

// Gate serializes every load-modify-save cycle through one mutex, so two
// concurrent mutations cannot overwrite each other's saved document
// (the lost-update race of a whole-document store). Reads take the same
// lock to always observe a fully saved snapshot.
type Gate struct {
	mu    sync.Mutex
	store DocumentStore
}

func NewGate(store DocumentStore) *Gate {
	return &Gate{store: store}
}

// Update runs fn against the freshly loaded document and persists the
// result. If fn returns an error nothing is saved, so a rejected
// operation leaves no partial mutation behind.
func (g *Gate) Update(fn func(doc *domain.Document) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.store.Load()
	if err := fn(&doc); err != nil {
		return err
	}
	return g.store.Save(doc)
}

// View runs fn against a loaded snapshot without saving.
func (g *Gate) View(fn func(doc domain.Document) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(g.store.Load())
}
